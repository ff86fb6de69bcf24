package article

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	readability "github.com/go-shiori/go-readability"
)

// ----------------------------------------------------------------------
// 依存性の定義 (DIP)
// ----------------------------------------------------------------------

// Fetcher は、HTMLドキュメントの生バイト配列を取得する機能のインターフェースを定義します。
// Parser は、この抽象に依存します。
type Fetcher interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// ----------------------------------------------------------------------
// 記事の取得と解析
// ----------------------------------------------------------------------

// Handle は、1回の評価内でのみ利用される、取得済み記事の一時的な表現です。
// 評価の完了後は破棄され、呼び出しをまたいで保持されることはありません。
type Handle struct {
	Title       string
	Text        string
	PublishedAt *time.Time
}

// Parser は、Fetcher を使って記事の取得・解析プロセスを管理します。
type Parser struct {
	fetcher Fetcher
}

// NewParser は、新しいParserのインスタンスを生成します。
func NewParser(fetcher Fetcher) (*Parser, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("article.NewParser: Fetcher cannot be nil")
	}
	return &Parser{
		fetcher: fetcher,
	}, nil
}

// FetchAndParse は指定されたURLから記事を取得し、本文・タイトル・公開日時を抽出します。
// 取得にも解析にも readability を用いるため、本文の無いページはエラーになります。
func (p *Parser) FetchAndParse(ctx context.Context, rawURL string) (*Handle, error) {
	// 1. Fetcherから生のバイト配列を取得 (通信の責務)
	htmlBytes, err := p.fetcher.FetchBytes(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("記事の取得に失敗しました (URL: %s): %w", rawURL, err)
	}

	// 2. readability で記事本文を抽出 (解析の責務)
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("URLのパースエラー: %w", err)
	}

	art, err := readability.FromReader(bytes.NewReader(htmlBytes), pageURL)
	if err != nil {
		return nil, fmt.Errorf("記事の解析に失敗しました (URL: %s): %w", rawURL, err)
	}

	return &Handle{
		Title:       art.Title,
		Text:        art.TextContent,
		PublishedAt: art.PublishedTime,
	}, nil
}

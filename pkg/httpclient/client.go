package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// HTTPクライアント関連の定数
	DefaultHTTPTimeout = 30 * time.Second
	MaxBodySize        = int64(10 * 1024 * 1024) // 10MB: レスポンスボディの最大読み込みサイズ

	// サイトからのブロックを避けるためのUser-Agent
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/118.0.0.0 Safari/537.36"

	// MaxRedirects はリダイレクト追従の上限です。net/http の標準の上限と同じ値です。
	MaxRedirects = 10
)

// HTTPStatusError は、2xx以外のステータスコードで完了したリクエストを示すカスタムエラー型です。
type HTTPStatusError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPStatusError) Error() string {
	if len(e.Body) > 0 {
		return fmt.Sprintf("HTTPステータスコードエラー: ステータスコード %d, ボディ: %s", e.StatusCode, strings.TrimSpace(string(e.Body)))
	}
	return fmt.Sprintf("HTTPステータスコードエラー: ステータスコード %d, ボディなし", e.StatusCode)
}

// IsHTTPStatusError は与えられたエラーがHTTPステータスコード起因のエラーであるかを判断します。
func IsHTTPStatusError(err error) bool {
	if err == nil {
		return false
	}
	var statusErr *HTTPStatusError
	return errors.As(err, &statusErr)
}

// ----------------------------------------------------------------------
// 定数とインターフェース
// ----------------------------------------------------------------------

// Doer は、標準の *http.Client.Do() と互換性のあるHTTPクライアントのインターフェースを定義します。
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client はブラウザ相当のUser-Agentを付与したHTTP GETリクエストを管理します。
// リトライやレート制限は行いません。1回の呼び出しは1回のリクエストに対応します。
type Client struct {
	httpClient Doer
	timeout    time.Duration
}

// ClientOption はClientの設定を行うための関数型です。
type ClientOption func(*Client)

// WithHTTPClient はカスタムのDoerを設定します。テストでのモック注入に利用します。
func WithHTTPClient(doer Doer) ClientOption {
	return func(c *Client) {
		c.httpClient = doer
	}
}

// New は、新しいClientを生成します。
func New(timeout time.Duration, options ...ClientOption) *Client {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

// addCommonHeaders は共通のHTTPヘッダーを設定します。
func (c *Client) addCommonHeaders(req *http.Request) {
	req.Header.Set("User-Agent", UserAgent)
}

// ----------------------------------------------------------------------
// フェッチ機能
// ----------------------------------------------------------------------

// FetchBytes はURLからコンテンツを取得し、生のバイト配列として返します。
func (c *Client) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("GETリクエスト作成に失敗しました: %w", err)
	}
	c.addCommonHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTPリクエストに失敗しました (ネットワーク/接続エラー): %w", err)
	}
	defer resp.Body.Close()

	if err := checkResponseStatus(resp); err != nil {
		return nil, err
	}

	limitedReader := io.LimitReader(resp.Body, MaxBodySize)
	bodyBytes, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("レスポンスボディの読み込みに失敗しました: %w", err)
	}

	if resp.ContentLength > 0 && resp.ContentLength > MaxBodySize {
		return nil, fmt.Errorf("レスポンスボディが最大サイズ (%dバイト) を超えました", MaxBodySize)
	}

	return bodyBytes, nil
}

// FetchDocument はURLからHTMLを取得し、goquery.Documentを返します。
func (c *Client) FetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	bodyBytes, err := c.FetchBytes(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("HTML解析に失敗しました: %w", err)
	}

	return doc, nil
}

// ----------------------------------------------------------------------
// リダイレクト計測
// ----------------------------------------------------------------------

// CountRedirects は素のGETリクエストを発行し、最終レスポンスに到達するまでの
// リダイレクト回数を返します。User-Agentの偽装は行わず、標準クライアントの
// デフォルトのリダイレクト追従動作（最大10回）に従います。
// 計測用のカウンタは呼び出しごとにローカルな http.Client に閉じ込めており、
// Client 本体に共有状態を持ちません。
func (c *Client) CountRedirects(ctx context.Context, url string) (int, error) {
	count := 0

	// CheckRedirect は中間レスポンスごとに呼ばれるため、呼び出し回数がそのまま
	// リダイレクトチェーンの長さになります。カスタムのCheckRedirectを設定すると
	// 標準の上限チェックが無効になるため、同じ上限をここで適用します。
	probe := &http.Client{
		Timeout: c.timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			count = len(via)
			if len(via) >= MaxRedirects {
				return fmt.Errorf("リダイレクトが%d回を超えました", MaxRedirects)
			}
			return nil
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("GETリクエスト作成に失敗しました: %w", err)
	}

	resp, err := probe.Do(req)
	if err != nil {
		return 0, fmt.Errorf("リダイレクト計測のリクエストに失敗しました: %w", err)
	}
	defer resp.Body.Close()

	// ボディは利用しないため読み捨てる（コネクション再利用のため）
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, MaxBodySize))

	return count, nil
}

// checkResponseStatus はHTTPレスポンスのステータスコードを評価し、
// 2xx以外の場合は HTTPStatusError を返します。
func checkResponseStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}

	// 注意: この関数はレスポンスボディを読み込みますが、閉じる責務は持ちません。
	// 呼び出し元が resp.Body.Close() を実行する必要があります。
	limitedReader := io.LimitReader(resp.Body, MaxBodySize)
	bodyBytes, readErr := io.ReadAll(limitedReader)
	if readErr != nil {
		return &HTTPStatusError{
			StatusCode: resp.StatusCode,
		}
	}
	return &HTTPStatusError{
		StatusCode: resp.StatusCode,
		Body:       bodyBytes,
	}
}

package feed

import (
	"context"
	"fmt"

	"github.com/mmcdole/gofeed"
)

// フィードを分析対象URLのリストへ適合させるためのアダプター

// FeedAdapter は gofeed.Feed から記事URLのリストを取り出すアダプターです。
// gofeed.Feed の具体的な構造への依存を内部に閉じ込めます。
type FeedAdapter struct {
	*gofeed.Feed
}

// NewFeedAdapter は gofeed.Feed から新しいアダプターを作成します。
func NewFeedAdapter(feed *gofeed.Feed) *FeedAdapter {
	return &FeedAdapter{Feed: feed}
}

// GetLinks は gofeed.Feed から記事リンクをフィードの掲載順で抽出します。
func (a *FeedAdapter) GetLinks() []string {
	// nil またはアイテムがない場合は、すぐに空のスライスを返します。
	if a.Feed == nil || len(a.Items) == 0 {
		return []string{}
	}

	// 抽出ロジック
	urls := make([]string, 0, len(a.Items))
	for _, item := range a.Items {
		// リンクが存在し、空文字列ではないことを確認
		if item.Link != "" {
			urls = append(urls, item.Link)
		}
	}
	return urls
}

// ----------------------------------------------------------------------
// report.Source への適合
// ----------------------------------------------------------------------

// Source は、フィードURLをバッチドライバの入力ソースに適合させます。
// URLs の呼び出し時にフィードを取得・パースし、記事リンクの一覧を返します。
type Source struct {
	parser  *Parser
	feedURL string
}

// NewSource は、新しいSourceのインスタンスを生成します。
func NewSource(parser *Parser, feedURL string) (*Source, error) {
	if parser == nil {
		return nil, fmt.Errorf("feed.NewSource: Parser cannot be nil")
	}
	if feedURL == "" {
		return nil, fmt.Errorf("feed.NewSource: feedURL cannot be empty")
	}
	return &Source{
		parser:  parser,
		feedURL: feedURL,
	}, nil
}

// URLs は、フィードの記事リンクを掲載順で返します。
func (s *Source) URLs(ctx context.Context) ([]string, error) {
	parsedFeed, err := s.parser.FetchAndParse(ctx, s.feedURL)
	if err != nil {
		return nil, err
	}
	return NewFeedAdapter(parsedFeed).GetLinks(), nil
}

package article_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shouni/go-article-insight/pkg/article"
)

// MockFetcher はテスト用の article.Fetcher インターフェースの実装です。
type MockFetcher struct {
	htmlContent string
	fetchError  error
}

// FetchBytes はモックされたHTMLをバイト配列として返すか、エラーを返します。
func (m *MockFetcher) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	if m.fetchError != nil {
		return nil, m.fetchError
	}
	return []byte(m.htmlContent), nil
}

func TestNewParser(t *testing.T) {
	t.Run("success_with_valid_fetcher", func(t *testing.T) {
		fetcher := &MockFetcher{}
		parser, err := article.NewParser(fetcher)
		assert.NoError(t, err)
		assert.NotNil(t, parser)
	})

	t.Run("error_with_nil_fetcher", func(t *testing.T) {
		parser, err := article.NewParser(nil)
		assert.Error(t, err)
		assert.Nil(t, parser)
		assert.Contains(t, err.Error(), "Fetcher cannot be nil")
	})
}

// TestFetchAndParse は Parser の主要なメソッドをテストします。
func TestFetchAndParse(t *testing.T) {
	ctx := context.Background()

	// readability が本文と判定するのに十分な長さの段落
	longParagraph := "This is a long paragraph with more than enough characters for the readability " +
		"algorithm to treat it as genuine article content. It keeps going for a while to make sure " +
		"the scoring heuristics see a real body of text rather than boilerplate navigation."

	articleHTML := fmt.Sprintf(`<html>
<head><title>Test Article Title</title></head>
<body>
  <article>
    <h1>Test Article Title</h1>
    <p>%s</p>
    <p>%s</p>
    <p>%s</p>
  </article>
</body>
</html>`, longParagraph, longParagraph, longParagraph)

	t.Run("successful_fetch_and_parse", func(t *testing.T) {
		fetcher := &MockFetcher{htmlContent: articleHTML}
		parser, err := article.NewParser(fetcher)
		assert.NoError(t, err)

		handle, err := parser.FetchAndParse(ctx, "https://example.com/article")
		assert.NoError(t, err)
		assert.NotNil(t, handle)
		assert.Equal(t, "Test Article Title", handle.Title)
		assert.Contains(t, handle.Text, "readability")
	})

	t.Run("fetch_error_is_fatal", func(t *testing.T) {
		fetcher := &MockFetcher{fetchError: errors.New("network timeout")}
		parser, err := article.NewParser(fetcher)
		assert.NoError(t, err)

		handle, err := parser.FetchAndParse(ctx, "https://example.com/article")
		assert.Error(t, err)
		assert.Nil(t, handle)
		assert.Contains(t, err.Error(), "記事の取得に失敗しました")
	})

	t.Run("invalid_url_error", func(t *testing.T) {
		fetcher := &MockFetcher{htmlContent: articleHTML}
		parser, err := article.NewParser(fetcher)
		assert.NoError(t, err)

		handle, err := parser.FetchAndParse(ctx, "http://exa mple.com/article")
		assert.Error(t, err)
		assert.Nil(t, handle)
	})
}

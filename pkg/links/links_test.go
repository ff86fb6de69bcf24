package links_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"

	"github.com/shouni/go-article-insight/pkg/links"
)

// MockFetcher はテスト用の links.Fetcher インターフェースの実装です。
type MockFetcher struct {
	htmlContent string
	fetchError  error
}

func (m *MockFetcher) FetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	if m.fetchError != nil {
		return nil, m.fetchError
	}
	return goquery.NewDocumentFromReader(strings.NewReader(m.htmlContent))
}

func TestNewCollector(t *testing.T) {
	t.Run("error_with_nil_fetcher", func(t *testing.T) {
		collector, err := links.NewCollector(nil)
		assert.Error(t, err)
		assert.Nil(t, collector)
		assert.Contains(t, err.Error(), "Fetcher cannot be nil")
	})
}

func TestExtractHrefs(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected []string
	}{
		{
			name: "document_order_is_preserved",
			html: `<html><body>
				<a href="https://example.com/first">1</a>
				<p><a href="/second">2</a></p>
				<a href="#third">3</a>
			</body></html>`,
			expected: []string{"https://example.com/first", "/second", "#third"},
		},
		{
			name: "duplicates_are_kept",
			html: `<html><body>
				<a href="/same">a</a>
				<a href="/same">b</a>
			</body></html>`,
			expected: []string{"/same", "/same"},
		},
		{
			name: "raw_values_pass_through_unnormalized",
			html: `<html><body>
				<a href="mailto:someone@example.com">mail</a>
				<a href="javascript:void(0)">js</a>
				<a href="../relative/path">rel</a>
				<a href="">empty</a>
			</body></html>`,
			expected: []string{"mailto:someone@example.com", "javascript:void(0)", "../relative/path", ""},
		},
		{
			name: "anchors_without_href_are_skipped",
			html: `<html><body>
				<a name="top">no href</a>
				<a href="/real">real</a>
			</body></html>`,
			expected: []string{"/real"},
		},
		{
			name:     "page_without_anchors_yields_empty_slice",
			html:     `<html><body><p>no links here</p></body></html>`,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(tt.html))
			assert.NoError(t, err)

			actual := links.ExtractHrefs(doc)
			assert.NotNil(t, actual)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestCollectOutbound(t *testing.T) {
	ctx := context.Background()

	t.Run("successful_collection", func(t *testing.T) {
		fetcher := &MockFetcher{
			htmlContent: `<html><body><a href="/a">a</a><a href="/b">b</a><a href="/a">a again</a></body></html>`,
		}
		collector, err := links.NewCollector(fetcher)
		assert.NoError(t, err)

		hrefs, err := collector.CollectOutbound(ctx, "https://example.com")
		assert.NoError(t, err)
		assert.Equal(t, []string{"/a", "/b", "/a"}, hrefs)
	})

	t.Run("fetch_error_is_propagated", func(t *testing.T) {
		fetcher := &MockFetcher{fetchError: errors.New("blocked by robots")}
		collector, err := links.NewCollector(fetcher)
		assert.NoError(t, err)

		hrefs, err := collector.CollectOutbound(ctx, "https://example.com")
		assert.Error(t, err)
		assert.Nil(t, hrefs)
		assert.Contains(t, err.Error(), "発リンク抽出用ページの取得に失敗しました")
	})
}

package links

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// ----------------------------------------------------------------------
// 依存性の定義 (DIP)
// ----------------------------------------------------------------------

// Fetcher は、HTMLドキュメントを取得する機能のインターフェースを定義します。
// Collector は、この抽象に依存します。
type Fetcher interface {
	FetchDocument(ctx context.Context, url string) (*goquery.Document, error)
}

// ----------------------------------------------------------------------
// 発リンクの抽出
// ----------------------------------------------------------------------

// Collector は、Fetcher を使ってページ内の発リンク抽出プロセスを管理します。
type Collector struct {
	fetcher Fetcher
}

// NewCollector は、新しいCollectorのインスタンスを生成します。
func NewCollector(fetcher Fetcher) (*Collector, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("links.NewCollector: Fetcher cannot be nil")
	}
	return &Collector{
		fetcher: fetcher,
	}, nil
}

// CollectOutbound は指定されたURLのHTMLを取得し、href属性を持つ全アンカー要素の
// href値をドキュメントの出現順で返します。重複は排除せず、相対パス・フラグメント・
// 非HTTPスキームもそのまま（正規化せずに）通します。
// リンクが1件も無いページでは、nilではなく空スライスを返します。
func (c *Collector) CollectOutbound(ctx context.Context, url string) ([]string, error) {
	doc, err := c.fetcher.FetchDocument(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("発リンク抽出用ページの取得に失敗しました (URL: %s): %w", url, err)
	}

	return ExtractHrefs(doc), nil
}

// ExtractHrefs は goquery.Document からアンカーのhref値を出現順に抽出します。
// goqueryのFindはDOMの深さ優先探索順で要素を走査するため、
// 返り値の順序はドキュメント内の出現順と一致します。
func ExtractHrefs(doc *goquery.Document) []string {
	hrefs := make([]string, 0)
	doc.Find("a[href]").Each(func(i int, s *goquery.Selection) {
		if href, exists := s.Attr("href"); exists {
			hrefs = append(hrefs, href)
		}
	})
	return hrefs
}

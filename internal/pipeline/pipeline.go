package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/shouni/go-article-insight/pkg/analyzer"
	"github.com/shouni/go-article-insight/pkg/article"
	"github.com/shouni/go-article-insight/pkg/domaininfo"
	"github.com/shouni/go-article-insight/pkg/httpclient"
	"github.com/shouni/go-article-insight/pkg/links"
	"github.com/shouni/go-article-insight/pkg/sentiment"
	"github.com/shouni/go-article-insight/pkg/types"
)

// BuildAnalyzer は、共有HTTPクライアントから標準構成の Analyzer を組み立てます。
// 記事取得・発リンク抽出・リダイレクト計測はすべて同じクライアント設定を共有します。
func BuildAnalyzer(client *httpclient.Client) (*analyzer.Analyzer, error) {
	articles, err := article.NewParser(client)
	if err != nil {
		return nil, fmt.Errorf("記事パーサの初期化エラー: %w", err)
	}

	inspector, err := domaininfo.NewInspector(domaininfo.NewWhoisClient())
	if err != nil {
		return nil, fmt.Errorf("ドメイン分析の初期化エラー: %w", err)
	}

	collector, err := links.NewCollector(client)
	if err != nil {
		return nil, fmt.Errorf("発リンク抽出の初期化エラー: %w", err)
	}

	a, err := analyzer.NewAnalyzer(articles, sentiment.NewRater(), inspector, client, collector)
	if err != nil {
		return nil, fmt.Errorf("Analyzerの初期化エラー: %w", err)
	}
	return a, nil
}

// AnalyzeURL は、URLの分析を実行するメインの処理パイプラインです。
// 依存の組み立てから分析の実行までを1回の呼び出しにまとめた簡易APIです。
func AnalyzeURL(rawURL string, clientTimeout time.Duration) (types.AnalysisRecord, error) {
	// 1. 外部依存の初期化
	client := httpclient.New(clientTimeout)

	a, err := BuildAnalyzer(client)
	if err != nil {
		return types.AnalysisRecord{}, err
	}

	// 2. 全体処理のコンテキストを設定
	// 1つのURLにつき最大3回のネットワーク呼び出しが発生するため、
	// クライアントタイムアウトより長めの全体タイムアウトを確保します。
	ctx, cancel := context.WithTimeout(context.Background(), clientTimeout*4)
	defer cancel()

	// 3. 分析の実行（Evaluate はエラーを返さない契約）
	return a.Evaluate(ctx, rawURL), nil
}

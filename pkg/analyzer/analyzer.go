package analyzer

import (
	"context"
	"fmt"
	"log"

	"github.com/shouni/go-article-insight/pkg/article"
	"github.com/shouni/go-article-insight/pkg/types"
)

// ----------------------------------------------------------------------
// 依存性の定義 (DIP)
// ----------------------------------------------------------------------

// ArticleFetcher は、記事の取得と解析機能のインターフェースを定義します。
type ArticleFetcher interface {
	FetchAndParse(ctx context.Context, rawURL string) (*article.Handle, error)
}

// SentimentRater は、テキストの感情スコア算出機能のインターフェースを定義します。
type SentimentRater interface {
	Rate(text string) (types.SentimentScore, error)
}

// DomainInspector は、登録可能ドメインの抽出とWHOIS照会機能のインターフェースを定義します。
type DomainInspector interface {
	Inspect(rawURL string) (string, error)
}

// RedirectCounter は、リダイレクトチェーンの長さ計測機能のインターフェースを定義します。
type RedirectCounter interface {
	CountRedirects(ctx context.Context, url string) (int, error)
}

// LinkCollector は、ページ内の発リンク抽出機能のインターフェースを定義します。
type LinkCollector interface {
	CollectOutbound(ctx context.Context, url string) ([]string, error)
}

// ----------------------------------------------------------------------
// Analyzer 本体
// ----------------------------------------------------------------------

// Analyzer は、1つのURLに対する6種類の分析を実行し、AnalysisRecord に組み立てます。
// 呼び出しをまたぐ共有状態は持たず、各分析の中間データは Evaluate の呼び出し内に
// 閉じています。
type Analyzer struct {
	articles  ArticleFetcher
	rater     SentimentRater
	domains   DomainInspector
	redirects RedirectCounter
	links     LinkCollector
}

// NewAnalyzer は、新しいAnalyzerのインスタンスを生成します。
// すべての依存は必須です。
func NewAnalyzer(
	articles ArticleFetcher,
	rater SentimentRater,
	domains DomainInspector,
	redirects RedirectCounter,
	links LinkCollector,
) (*Analyzer, error) {
	if articles == nil {
		return nil, fmt.Errorf("analyzer.NewAnalyzer: ArticleFetcher cannot be nil")
	}
	if rater == nil {
		return nil, fmt.Errorf("analyzer.NewAnalyzer: SentimentRater cannot be nil")
	}
	if domains == nil {
		return nil, fmt.Errorf("analyzer.NewAnalyzer: DomainInspector cannot be nil")
	}
	if redirects == nil {
		return nil, fmt.Errorf("analyzer.NewAnalyzer: RedirectCounter cannot be nil")
	}
	if links == nil {
		return nil, fmt.Errorf("analyzer.NewAnalyzer: LinkCollector cannot be nil")
	}
	return &Analyzer{
		articles:  articles,
		rater:     rater,
		domains:   domains,
		redirects: redirects,
		links:     links,
	}, nil
}

// Evaluate は、指定されたURLに対する全分析を実行し、常に完全な AnalysisRecord を返します。
// エラーがこのメソッドの境界を越えることはありません。
//
// 失敗の扱いは2段階です:
//  1. 記事の取得・解析の失敗はレコード全体にとって致命的であり、
//     全フィールドが欠損のままのレコードを即座に返します。
//  2. 取得成功後の5つの分析は互いに隔離されており、いずれかの失敗は
//     そのフィールドのみを欠損にし、残りの分析は継続されます。
func (a *Analyzer) Evaluate(ctx context.Context, rawURL string) types.AnalysisRecord {
	record := types.AnalysisRecord{URL: rawURL}

	// 1. 記事の取得と解析（失敗はレコード全体に対して致命的）
	handle, err := a.articles.FetchAndParse(ctx, rawURL)
	if err != nil {
		log.Printf("記事の取得に失敗したため、分析を中断します (URL: %s): %v", rawURL, err)
		return record
	}

	// 2. タイトルと本文の関連性（それぞれの感情スコアの組）
	if pair, err := a.rateRelevance(handle); err != nil {
		log.Printf("タイトル・本文の関連性分析に失敗しました (URL: %s): %v", rawURL, err)
	} else {
		record.TitleContentRelevance = pair
	}

	// 3. ドメイン情報（登録可能ドメインの抽出とWHOIS照会）
	if domain, err := a.domains.Inspect(rawURL); err != nil {
		log.Printf("ドメイン分析に失敗しました (URL: %s): %v", rawURL, err)
	} else {
		record.Domain = &domain
	}

	// 4. 本文の感情分析（関連性分析と同じスコアを再計算する。重複は許容済みの非効率）
	if score, err := a.rater.Rate(handle.Text); err != nil {
		log.Printf("本文の感情分析に失敗しました (URL: %s): %v", rawURL, err)
	} else {
		record.Sentiment = &types.SentimentDetail{
			Score: score,
			Text:  handle.Text,
		}
	}

	// 5. 公開日時（パーサが供給したタイムスタンプをそのまま利用）
	record.PublishedAt = handle.PublishedAt

	// 6. リダイレクト回数（記事取得とは独立したネットワーク呼び出し）
	if count, err := a.redirects.CountRedirects(ctx, rawURL); err != nil {
		log.Printf("リダイレクト計測に失敗しました (URL: %s): %v", rawURL, err)
	} else {
		record.Redirections = &count
	}

	// 7. 発リンク（こちらも独立した呼び出し。取得内容が記事取得時と異なる可能性は許容）
	if outbound, err := a.links.CollectOutbound(ctx, rawURL); err != nil {
		log.Printf("発リンク抽出に失敗しました (URL: %s): %v", rawURL, err)
	} else {
		record.OutboundLinks = outbound
	}

	return record
}

// rateRelevance はタイトルと本文それぞれの感情スコアを算出します。
// どちらか一方でも算出できない場合、この分析全体を失敗として扱います。
func (a *Analyzer) rateRelevance(handle *article.Handle) (*types.RelevancePair, error) {
	titleScore, err := a.rater.Rate(handle.Title)
	if err != nil {
		return nil, fmt.Errorf("タイトルの感情スコア算出に失敗しました: %w", err)
	}
	contentScore, err := a.rater.Rate(handle.Text)
	if err != nil {
		return nil, fmt.Errorf("本文の感情スコア算出に失敗しました: %w", err)
	}
	return &types.RelevancePair{
		Title:   titleScore,
		Content: contentScore,
	}, nil
}

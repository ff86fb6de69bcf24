package batch

import (
	"context"
	"fmt"
	"log"

	"github.com/shouni/go-article-insight/pkg/report"
	"github.com/shouni/go-article-insight/pkg/types"
)

// ----------------------------------------------------------------------
// 依存性の定義 (DIP)
// ----------------------------------------------------------------------

// Evaluator は、1つのURLに対する分析機能のインターフェースを定義します。
// Evaluate はエラーを返しません。失敗はレコード内の欠損値として表現されます。
type Evaluator interface {
	Evaluate(ctx context.Context, rawURL string) types.AnalysisRecord
}

// ----------------------------------------------------------------------
// バッチドライバ
// ----------------------------------------------------------------------

// Driver は、入力ソースのURLを入力順に1件ずつ分析し、平坦化した行を
// 出力シンクへ書き出すバッチ処理を管理します。
// 処理は完全に逐次であり、1つのURLの分析が完了してから次のURLへ進みます。
type Driver struct {
	evaluator Evaluator
}

// NewDriver は、新しいDriverのインスタンスを生成します。
func NewDriver(evaluator Evaluator) (*Driver, error) {
	if evaluator == nil {
		return nil, fmt.Errorf("batch.NewDriver: Evaluator cannot be nil")
	}
	return &Driver{
		evaluator: evaluator,
	}, nil
}

// Process は、ソースの全URLを入力順に分析し、蓄積した全行をシンクへ書き出します。
// Evaluator がエラーを返さない契約のため、入力1行につき必ず出力1行が生成されます。
// 1つのURLの分析失敗がバッチ全体を中断させることはありません。
func (d *Driver) Process(ctx context.Context, source report.Source, sink report.Sink) error {
	urls, err := source.URLs(ctx)
	if err != nil {
		return fmt.Errorf("入力ソースの読み取りに失敗しました: %w", err)
	}

	// 出力行の蓄積はこのループだけが行う（逐次実行のため競合は発生しない）
	rows := make([][]string, 0, len(urls))
	for i, url := range urls {
		log.Printf("分析中 (%d/%d): %s", i+1, len(urls), url)
		record := d.evaluator.Evaluate(ctx, url)
		rows = append(rows, report.FlattenRecord(record))
	}

	if err := sink.Write(rows); err != nil {
		return fmt.Errorf("出力シンクへの書き込みに失敗しました: %w", err)
	}

	return nil
}

package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/shouni/go-article-insight/internal/pipeline"
	"github.com/shouni/go-article-insight/pkg/batch"
	"github.com/shouni/go-article-insight/pkg/report"
)

// コマンドラインフラグ変数を定義
var (
	inputPath  string // --input 入力CSVのパス
	outputPath string // --output 出力CSVのパス
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "URL列を持つCSVを読み込み、全URLの分析レポートをCSVへ書き出します",
	Long: `--input で指定されたCSV（URL列必須）の各行のURLを入力順に1件ずつ分析し、
1入力行につき1出力行のレポートCSVを --output へ書き出します。
個々のURLの分析失敗はそのセルの欠損として記録され、バッチ全体は中断されません。`,
	Args: cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {

		// 1. 依存性の初期化
		client := GetGlobalClient()
		if client == nil {
			return fmt.Errorf("HTTPクライアントの取得に失敗しました")
		}
		a, err := pipeline.BuildAnalyzer(client)
		if err != nil {
			return err
		}
		driver, err := batch.NewDriver(a)
		if err != nil {
			return fmt.Errorf("バッチドライバの初期化エラー: %w", err)
		}

		// 2. 入出力ファイルのオープン
		inputFile, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("入力CSVのオープンに失敗しました (%s): %w", inputPath, err)
		}
		defer inputFile.Close()

		outputFile, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("出力CSVの作成に失敗しました (%s): %w", outputPath, err)
		}
		defer outputFile.Close()

		source, err := report.NewCSVSource(inputFile)
		if err != nil {
			return fmt.Errorf("入力ソースの初期化エラー: %w", err)
		}
		sink, err := report.NewCSVSink(outputFile)
		if err != nil {
			return fmt.Errorf("出力シンクの初期化エラー: %w", err)
		}

		// 3. メインロジックの実行
		// バッチ全体の所要時間は入力行数に比例するため、全体タイムアウトは設定せず、
		// 個々のネットワーク呼び出しのタイムアウトはHTTPクライアントに委ねます。
		if err := driver.Process(context.Background(), source, sink); err != nil {
			return fmt.Errorf("バッチ処理の実行エラー: %w", err)
		}

		log.Printf("バッチ処理が完了しました (出力: %s)", outputPath)
		return nil
	},
}

func init() {
	// サブコマンド固有のフラグ定義
	batchCmd.Flags().StringVarP(&inputPath, "input", "i", "", "入力CSVファイルのパス (URL列必須)")
	batchCmd.Flags().StringVarP(&outputPath, "output", "o", "", "出力CSVファイルのパス")

	// 入出力パスを必須にする
	batchCmd.MarkFlagRequired("input")
	batchCmd.MarkFlagRequired("output")
}

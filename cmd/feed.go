package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/spf13/cobra"

	"github.com/shouni/go-article-insight/internal/pipeline"
	"github.com/shouni/go-article-insight/pkg/batch"
	"github.com/shouni/go-article-insight/pkg/feed"
	"github.com/shouni/go-article-insight/pkg/report"
)

// フィードURLを保持するフラグ変数
var (
	feedURL        string // --url 解析対象のフィードURL
	feedOutputPath string // --output 出力CSVのパス
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "RSS/Atomフィードの全記事URLを分析し、レポートをCSVへ書き出します",
	Long: `指定されたURLからRSSまたはAtomフィードを取得し、掲載されている記事URLを
掲載順に1件ずつ分析して、レポートCSVを --output へ書き出します。`,
	Args: cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {

		log.Printf("処理対象フィードURL: %s", feedURL)

		// 1. 依存性の初期化
		// フィードの取得はブラウザ偽装が不要なため、httpkit の標準クライアントを利用します。
		fetcher := httpkit.New(clientTimeout())
		parser := feed.NewParser(fetcher)

		source, err := feed.NewSource(parser, feedURL)
		if err != nil {
			return fmt.Errorf("フィードソースの初期化エラー: %w", err)
		}

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

		// 2. 出力ファイルのオープン
		outputFile, err := os.Create(feedOutputPath)
		if err != nil {
			return fmt.Errorf("出力CSVの作成に失敗しました (%s): %w", feedOutputPath, err)
		}
		defer outputFile.Close()

		sink, err := report.NewCSVSink(outputFile)
		if err != nil {
			return fmt.Errorf("出力シンクの初期化エラー: %w", err)
		}

		// 3. メインロジックの実行
		if err := driver.Process(context.Background(), source, sink); err != nil {
			return fmt.Errorf("フィード分析の実行エラー: %w", err)
		}

		log.Printf("フィード分析が完了しました (出力: %s)", feedOutputPath)
		return nil
	},
}

func init() {
	// サブコマンド固有のフラグ定義
	feedCmd.Flags().StringVarP(&feedURL, "url", "u", "", "解析対象のフィード (RSS/Atom) URL")
	feedCmd.Flags().StringVarP(&feedOutputPath, "output", "o", "", "出力CSVファイルのパス")

	// URLと出力パスを必須にする
	feedCmd.MarkFlagRequired("url")
	feedCmd.MarkFlagRequired("output")
}

package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shouni/go-article-insight/internal/pipeline"
	"github.com/shouni/go-article-insight/pkg/types"
)

var rawUrl string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "指定されたURLまたは標準入力のURLを分析し、結果を表示します",
	Long:  `指定されたURLの記事を取得し、感情分析・ドメイン情報・公開日時・リダイレクト回数・発リンクの分析結果を表示します。`,
	Args:  cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {

		// 1. 処理対象URLの決定 (フラグ優先)
		urlToProcess := rawUrl
		if urlToProcess == "" {
			log.Println("URLが指定されていないため、標準入力からURLを読み込みます...")
			scanner := bufio.NewScanner(os.Stdin)
			fmt.Print("分析するURLを入力してください: ")

			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("標準入力の読み取りエラー: %w", err)
				}
				return fmt.Errorf("URLが入力されていません")
			}
			urlToProcess = scanner.Text()
		}

		// 2. URLのスキーム補完とバリデーション
		processedURL, err := ensureScheme(urlToProcess)
		if err != nil {
			return fmt.Errorf("URLスキームの処理エラー: %w", err)
		}
		log.Printf("分析対象URL: %s", processedURL)

		// 3. メインロジックの実行
		record, err := pipeline.AnalyzeURL(processedURL, clientTimeout())
		if err != nil {
			return fmt.Errorf("分析パイプラインの実行エラー (URL: %s): %w", processedURL, err)
		}

		// 4. 結果の出力
		printRecord(record)

		return nil
	},
}

// printRecord は分析結果を項目ごとに整形して表示します。欠損項目は「取得不可」と表示します。
func printRecord(record types.AnalysisRecord) {
	fmt.Println("--- 分析結果 ---")
	fmt.Printf("URL: %s\n", record.URL)

	if record.TitleContentRelevance != nil {
		pair := record.TitleContentRelevance
		fmt.Printf("タイトル・本文の関連性: タイトル %+.3f/%.3f, 本文 %+.3f/%.3f\n",
			pair.Title.Polarity, pair.Title.Subjectivity,
			pair.Content.Polarity, pair.Content.Subjectivity)
	} else {
		fmt.Println("タイトル・本文の関連性: 取得不可")
	}

	if record.Domain != nil {
		fmt.Printf("ドメイン: %s\n", *record.Domain)
	} else {
		fmt.Println("ドメイン: 取得不可")
	}

	if record.Sentiment != nil {
		fmt.Printf("感情分析: %+.3f/%.3f\n",
			record.Sentiment.Score.Polarity, record.Sentiment.Score.Subjectivity)
		preview := truncateRunes(record.Sentiment.Text, 100)
		fmt.Printf("本文プレビュー: %s\n", strings.TrimSpace(preview))
	} else {
		fmt.Println("感情分析: 取得不可")
	}

	if record.PublishedAt != nil {
		fmt.Printf("公開日時: %s\n", record.PublishedAt.Local().Format("2006-01-02 15:04:05"))
	} else {
		fmt.Println("公開日時: 取得不可")
	}

	if record.Redirections != nil {
		fmt.Printf("リダイレクト回数: %d\n", *record.Redirections)
	} else {
		fmt.Println("リダイレクト回数: 取得不可")
	}

	if record.OutboundLinks != nil {
		fmt.Printf("発リンク数: %d\n", len(record.OutboundLinks))
	} else {
		fmt.Println("発リンク数: 取得不可")
	}

	fmt.Println("-----------------")
}

// truncateRunes は文字列を最大n文字に切り詰めます。
// マルチバイト文字の途中で切断しないよう、バイトではなくルーン単位で数えます。
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

func init() {
	// rawUrl 変数にフラグのポインタをバインドします
	analyzeCmd.Flags().StringVarP(&rawUrl, "url", "u", "", "分析対象のURL")
}

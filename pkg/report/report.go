package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shouni/go-article-insight/pkg/types"
)

// Header は、出力レポートのカラム名を定義します。順序は出力にそのまま反映されます。
var Header = []string{
	"URL",
	"Title-Content Relevance",
	"Domain",
	"Sentiment Analysis",
	"Publication Date",
	"Redirections",
	"Outbound Links",
}

// FlattenRecord は、AnalysisRecord を1行分のセル列に平坦化します。
// 欠損した分析は空セルとして表現されます。Outbound Links はリストそのものではなく
// 件数に置き換えられます。
func FlattenRecord(record types.AnalysisRecord) []string {
	row := make([]string, len(Header))
	row[0] = record.URL

	if record.TitleContentRelevance != nil {
		pair := record.TitleContentRelevance
		row[1] = fmt.Sprintf("title=%s content=%s",
			formatScore(pair.Title), formatScore(pair.Content))
	}
	if record.Domain != nil {
		row[2] = *record.Domain
	}
	if record.Sentiment != nil {
		row[3] = fmt.Sprintf("%s %s",
			formatScore(record.Sentiment.Score), record.Sentiment.Text)
	}
	if record.PublishedAt != nil {
		row[4] = record.PublishedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	if record.Redirections != nil {
		row[5] = strconv.Itoa(*record.Redirections)
	}
	if record.OutboundLinks != nil {
		row[6] = strconv.Itoa(len(record.OutboundLinks))
	}

	return row
}

// formatScore は感情スコアを「極性/主観度」の形式で整形します。
func formatScore(score types.SentimentScore) string {
	return fmt.Sprintf("%.3f/%.3f", score.Polarity, score.Subjectivity)
}

// ----------------------------------------------------------------------
// 入力ソース
// ----------------------------------------------------------------------

// Source は、分析対象URLの順序付きリストを提供できる任意の型を表します。
// このインターフェースが、CSVファイルとフィードなど入力形式の差異を吸収する
// 抽象化の境界線となります。
type Source interface {
	URLs(ctx context.Context) ([]string, error)
}

// CSVSource は、URL列を持つCSVデータを Source に適合させます。
type CSVSource struct {
	reader io.Reader
}

// NewCSVSource は、新しいCSVSourceのインスタンスを生成します。
func NewCSVSource(reader io.Reader) (*CSVSource, error) {
	if reader == nil {
		return nil, fmt.Errorf("report.NewCSVSource: reader cannot be nil")
	}
	return &CSVSource{reader: reader}, nil
}

// URLs は、CSVのヘッダー行からURL列を特定し、各データ行のURLを入力順で返します。
// カラム名の照合は大文字小文字を区別しません。URLセルを持たない短い行は
// 空文字列のURLとして扱われ、行そのものはスキップされません。
func (s *CSVSource) URLs(_ context.Context) ([]string, error) {
	r := csv.NewReader(s.reader)
	r.FieldsPerRecord = -1 // 行ごとの列数のばらつきを許容

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("入力CSVのヘッダー読み取りに失敗しました: %w", err)
	}

	urlIndex := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), "URL") {
			urlIndex = i
			break
		}
	}
	if urlIndex < 0 {
		return nil, fmt.Errorf("入力CSVにURL列が見つかりません (ヘッダー: %v)", header)
	}

	var urls []string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("入力CSVの行読み取りに失敗しました: %w", err)
		}

		if urlIndex < len(row) {
			urls = append(urls, strings.TrimSpace(row[urlIndex]))
		} else {
			urls = append(urls, "")
		}
	}

	return urls, nil
}

// ----------------------------------------------------------------------
// 出力シンク
// ----------------------------------------------------------------------

// Sink は、蓄積済みのレポート行を書き出せる任意の型を表します。
type Sink interface {
	Write(rows [][]string) error
}

// CSVSink は、レポート行をCSV形式で io.Writer へ書き出します。
type CSVSink struct {
	writer io.Writer
}

// NewCSVSink は、新しいCSVSinkのインスタンスを生成します。
func NewCSVSink(writer io.Writer) (*CSVSink, error) {
	if writer == nil {
		return nil, fmt.Errorf("report.NewCSVSink: writer cannot be nil")
	}
	return &CSVSink{writer: writer}, nil
}

// Write は、ヘッダー行に続けて全データ行を書き出します。
func (s *CSVSink) Write(rows [][]string) error {
	w := csv.NewWriter(s.writer)

	if err := w.Write(Header); err != nil {
		return fmt.Errorf("出力CSVのヘッダー書き込みに失敗しました: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("出力CSVの行書き込みに失敗しました: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("出力CSVのフラッシュに失敗しました: %w", err)
	}
	return nil
}

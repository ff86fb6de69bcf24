package types

import "time"

// SentimentScore は、テキストの感情分析結果を保持します。
// Polarity は感情の極性 (-1.0〜+1.0)、Subjectivity は主観度 (0.0〜1.0) を表します。
type SentimentScore struct {
	Polarity     float64
	Subjectivity float64
}

// RelevancePair は、記事タイトルと本文それぞれの感情スコアの組を保持します。
// 両者の傾向を比較することで、タイトルと本文の論調の関連性を確認できます。
type RelevancePair struct {
	Title   SentimentScore
	Content SentimentScore
}

// SentimentDetail は、本文全体の感情スコアと、分析対象となった生テキストを保持します。
type SentimentDetail struct {
	Score SentimentScore
	Text  string
}

// AnalysisRecord は、1つのURLに対する全分析結果を保持します。
// これは Analyzer の出力、Report の入力として利用されます。
// URL 以外の各フィールドは独立したオプショナル値であり、nil はその分析の失敗を意味します。
// 分析の失敗はエラーとして呼び出し元へ伝播せず、常に欠損値として表現されます。
type AnalysisRecord struct {
	URL                   string
	TitleContentRelevance *RelevancePair
	Domain                *string
	Sentiment             *SentimentDetail
	PublishedAt           *time.Time
	Redirections          *int
	OutboundLinks         []string // nil は分析失敗、空スライスはリンク0件を意味します
}

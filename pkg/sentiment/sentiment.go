package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
	textUtils "github.com/shouni/go-utils/text"

	"github.com/shouni/go-article-insight/pkg/types"
)

// Rater は、VADERの語彙ベース感情分析をラップし、極性と主観度の組を算出します。
// govader.SentimentIntensityAnalyzer は読み取り専用の語彙辞書のみを保持するため、
// 1つのRaterを複数の評価で再利用できます。
type Rater struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewRater は、新しいRaterのインスタンスを生成します。
func NewRater() *Rater {
	return &Rater{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}
}

// Rate は与えられたテキストの感情スコアを算出します。
// Polarity にはVADERの複合スコア (-1.0〜+1.0) を採用します。
// Subjectivity は感情語の占める比率 (Positive + Negative, 0.0〜1.0) で近似します。
// 空文字列や空白のみのテキストは中立 (ゼロスコア) として扱い、エラーにはしません。
// タイトルが空の記事でも本文側の分析を妨げないためです。
func (r *Rater) Rate(text string) (types.SentimentScore, error) {
	normalized := textUtils.NormalizeText(text)
	if strings.TrimSpace(normalized) == "" {
		return types.SentimentScore{}, nil
	}

	scores := r.analyzer.PolarityScores(normalized)

	subjectivity := scores.Positive + scores.Negative
	if subjectivity > 1.0 {
		subjectivity = 1.0
	}

	return types.SentimentScore{
		Polarity:     scores.Compound,
		Subjectivity: subjectivity,
	}, nil
}

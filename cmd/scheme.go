package cmd

import (
	"fmt"
	"net/url"
)

// ensureScheme は分析対象URLのスキームを検証し、省略されている場合は
// https:// を補完して返します。http / https 以外のスキームは受け付けません。
func ensureScheme(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("URLのパースエラー: %w", err)
	}

	switch parsed.Scheme {
	case "":
		// スキーム省略時はHTTPSとみなす
		return "https://" + rawURL, nil
	case "http", "https":
		return rawURL, nil
	default:
		return "", fmt.Errorf("無効なURLスキームです。httpまたはhttpsを指定してください: %s", rawURL)
	}
}

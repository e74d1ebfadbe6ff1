package cmd

import (
	"fmt"
	"net/url"
	"strings"
)

// ensureScheme は、カタログURLのスキームが存在しない場合に https:// を補完します。
// http/https 以外のスキームと、ホストを含まないURLはエラーになります。
func ensureScheme(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", fmt.Errorf("URLが指定されていません")
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("URLのパースエラー: %w", err)
	}

	switch parsedURL.Scheme {
	case "http", "https":
	case "":
		// スキームなしの入力は HTTPS として扱い、補完後に再検証する
		return ensureScheme("https://" + rawURL)
	default:
		return "", fmt.Errorf("無効なURLスキームです。httpまたはhttpsを指定してください: %s", rawURL)
	}

	if parsedURL.Host == "" {
		return "", fmt.Errorf("URLにホストが含まれていません: %s", rawURL)
	}
	return rawURL, nil
}

package extract

import (
	"context"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/shouni/go-model-refs/pkg/types"
)

// ----------------------------------------------------------------------
// 定数定義 (抽出パターン)
// ----------------------------------------------------------------------
const (
	// DefaultCatalogURL は、モデル一覧を取得するカタログページのURLです。
	DefaultCatalogURL = "https://alphacephei.com/vosk/models"

	// modelURLPattern は、small モデルのアーカイブURLを選別するパターンです。
	// '.' は改行にマッチしないため、照合は行単位で最長一致となります。
	modelURLPattern = `https://alphacephei.com.*small.*.zip`

	// modelNamePattern は、URLから識別子を切り出すパターンです。
	// small- の直後から次のハイフンの手前までを識別子とします。
	modelNamePattern = `small-([^-]*)-`
)

var (
	modelURLRe  = regexp.MustCompile(modelURLPattern)
	modelNameRe = regexp.MustCompile(modelNamePattern)
)

// Extractor は、Fetcher を使ってカタログページの取得とモデル参照の抽出を管理します。
type Extractor struct {
	fetcher Fetcher
}

// NewExtractor は、新しいExtractorのインスタンスを生成します。
func NewExtractor(fetcher Fetcher) (*Extractor, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("extract.NewExtractor: Fetcher cannot be nil")
	}
	return &Extractor{
		fetcher: fetcher,
	}, nil
}

// FetchAndExtract は指定されたURLからカタログページを取得し、モデル参照の一覧を抽出します。
// 取得エラーとデコードエラーはそのまま呼び出し元に返します。
func (e *Extractor) FetchAndExtract(ctx context.Context, url string) ([]types.ModelReference, error) {
	// 1. Fetcherから生のバイト配列を取得 (通信の責務)
	body, err := e.fetcher.FetchBytes(ctx, url)
	if err != nil {
		return nil, err
	}

	// 2. テキストへのデコード (フォールバックのエンコーディングは試さない)
	text, err := DecodeText(body)
	if err != nil {
		return nil, fmt.Errorf("カタログページのデコードに失敗しました (URL: %s): %w", url, err)
	}

	// 3. 抽出 (純粋関数)
	return ExtractReferences(text), nil
}

// DecodeText は、レスポンスボディをUTF-8テキストとして解釈します。
func DecodeText(body []byte) (string, error) {
	if !utf8.Valid(body) {
		return "", fmt.Errorf("UTF-8として不正なバイト列が含まれています")
	}
	return string(body), nil
}

// ExtractReferences は、テキストからモデルURLを出現順に走査し、識別子付きのレコードに変換します。
// 識別子を切り出せないURLは黙って除外されます。マッチが無い場合は空のスライスを返します。
func ExtractReferences(text string) []types.ModelReference {
	matches := modelURLRe.FindAllString(text, -1)

	refs := make([]types.ModelReference, 0, len(matches))
	for _, u := range matches {
		name, ok := ModelName(u)
		if !ok {
			log.Debug().Str("url", u).Msg("識別子を切り出せないURLを除外しました")
			continue
		}
		refs = append(refs, types.ModelReference{Name: name, URL: u})
	}
	return refs
}

// ModelName は、URL中の最初の small- から次のハイフンまでを識別子として返します。
func ModelName(url string) (string, bool) {
	m := modelNameRe.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}

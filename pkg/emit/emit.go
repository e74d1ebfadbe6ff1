package emit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shouni/go-model-refs/pkg/types"
)

// indent は出力JSONのインデント幅 (スペース4つ) です。
const indent = "    "

// Marshal は Catalog を整形済みJSONのバイト配列に変換します。
// キーは構造体のフィールド順 (name, url) でアルファベット順に並び、末尾に改行が付きます。
func Marshal(catalog types.Catalog) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, catalog); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON は Catalog を整形済みJSONとして w に書き出します。
// URL中の & や < がエスケープされないよう、HTMLエスケープは無効化しています。
// 非ASCII文字は \uXXXX ではなくUTF-8のまま書き出します。
func WriteJSON(w io.Writer, catalog types.Catalog) error {
	if catalog.Models == nil {
		catalog = types.NewCatalog(nil)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(catalog); err != nil {
		return fmt.Errorf("JSONの書き出しに失敗しました: %w", err)
	}
	return nil
}

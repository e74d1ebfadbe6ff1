package types

// ModelReference は、カタログページから抽出された1件のモデルアーカイブを表します。
// Name は URL から導出された短い識別子で、一意であることは保証されません。
type ModelReference struct {
	Name string `json:"name"` // small- の直後から次のハイフンまでの識別子
	URL  string `json:"url"`  // モデルアーカイブのダウンロードURL
}

// Catalog は、標準出力に書き出されるJSONドキュメントのトップレベル構造です。
type Catalog struct {
	Models []ModelReference `json:"models"`
}

// NewCatalog は、抽出結果から Catalog を生成します。
// 結果が空でも Models は nil にならず、JSONでは [] として出力されます。
func NewCatalog(refs []ModelReference) Catalog {
	if refs == nil {
		refs = []ModelReference{}
	}
	return Catalog{Models: refs}
}

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/shouni/go-model-refs/pkg/extract"
	"github.com/shouni/go-model-refs/pkg/types"
)

// BuildCatalog は、カタログページを取得してモデル参照を抽出し、出力用の Catalog を返すメインの処理パイプラインです。
// overallTimeout は取得とデコード、抽出の全体をカバーします。0 以下の場合は上限を設けません。
func BuildCatalog(ctx context.Context, extractor *extract.Extractor, catalogURL string, overallTimeout time.Duration) (types.Catalog, error) {
	if extractor == nil {
		return types.Catalog{}, fmt.Errorf("Extractorが初期化されていません")
	}

	// 1. 全体処理のコンテキストを設定
	if overallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, overallTimeout)
		defer cancel()
	}

	// 2. 抽出の実行
	refs, err := extractor.FetchAndExtract(ctx, catalogURL)
	if err != nil {
		return types.Catalog{}, fmt.Errorf("モデル参照の抽出エラー (URL: %s): %w", catalogURL, err)
	}

	log.Debug().Str("url", catalogURL).Int("count", len(refs)).Msg("モデル参照を抽出しました")
	if len(refs) == 0 {
		log.Warn().Str("url", catalogURL).Msg("モデル参照が1件も見つかりませんでした")
	}

	return types.NewCatalog(refs), nil
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config は環境変数から読み込まれるアプリケーション設定です。
// コマンドラインフラグが明示的に指定された場合は、そちらが優先されます。
// envDefault は extract.DefaultCatalogURL と client.DefaultHTTPTimeout に揃えること。
type Config struct {
	CatalogURL string        `env:"MODEL_REFS_CATALOG_URL" envDefault:"https://alphacephei.com/vosk/models"`
	Timeout    time.Duration `env:"MODEL_REFS_TIMEOUT" envDefault:"30s"`
	LogLevel   string        `env:"MODEL_REFS_LOG_LEVEL" envDefault:"warn"`
}

// Load は環境変数を Config に読み込みます。
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("環境変数の読み込みに失敗しました: %w", err)
	}

	cfg.CatalogURL = strings.TrimSpace(cfg.CatalogURL)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if cfg.CatalogURL == "" {
		return nil, fmt.Errorf("MODEL_REFS_CATALOG_URL が空です")
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("MODEL_REFS_TIMEOUT は正の値である必要があります: %s", cfg.Timeout)
	}
	return cfg, nil
}

package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"

	"github.com/shouni/go-model-refs/internal/config"
	"github.com/shouni/go-model-refs/internal/logger"
	"github.com/shouni/go-model-refs/internal/pipeline"
	"github.com/shouni/go-model-refs/pkg/client"
	"github.com/shouni/go-model-refs/pkg/emit"
	"github.com/shouni/go-model-refs/pkg/extract"
	"github.com/shouni/go-model-refs/pkg/review"
)

// --- グローバル定数 ---

const (
	appName = "model-refs"

	// 全体処理のタイムアウトはクライアントタイムアウトの2倍
	overallTimeoutFactor = 2
)

// --- フラグ構造体 ---

// AppFlags はこのアプリケーション固有のフラグを保持します。
// すべて省略可能で、省略時は固定のカタログURLを取得してJSONを出力します。
type AppFlags struct {
	CatalogURL string // --url カタログURLの上書き
	InputPath  string // --input 保存済みページのパス ("-" で標準入力)
	TimeoutSec int    // --timeout HTTPリクエストのタイムアウト（秒）
	Review     bool   // --review 確認用の一覧表を標準エラー出力に表示
}

// app はコマンド実行に必要な設定と依存性をまとめたものです。
type app struct {
	flags AppFlags
	cfg   *config.Config
}

// NewRootCmd は、clibase のルートコマンド基盤にこのアプリケーションの処理を組み込みます。
// --verbose は clibase の共通フラグ (clibase.Flags.Verbose) を利用します。
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := clibase.NewRootCmd(
		appName,
		func(cmd *cobra.Command) { addAppFlags(cmd, &a.flags) },
		a.initAppPreRunE,
	)
	rootCmd.Short = "voskのモデル一覧ページから small モデルのURLを抽出し、JSONで出力します"
	rootCmd.Long = `カタログページ (` + extract.DefaultCatalogURL + `) を取得し、small モデルのアーカイブURLと
その識別子を {"models": [...]} 形式のJSONとして標準出力に書き出します。
識別子の切り出しは近似的なため、出力は公開前に必ず目視で確認してください。`
	rootCmd.Args = cobra.NoArgs
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	// clibase 既定の Run (ヘルプ表示) を置き換える
	rootCmd.Run = nil
	rootCmd.RunE = a.run

	return rootCmd
}

// addAppFlags は、アプリケーション固有のフラグをルートコマンドに追加します。
func addAppFlags(cmd *cobra.Command, flags *AppFlags) {
	cmd.Flags().StringVarP(&flags.CatalogURL, "url", "u", "", "カタログページのURL (既定: "+extract.DefaultCatalogURL+")")
	cmd.Flags().StringVarP(&flags.InputPath, "input", "i", "", "取得の代わりに読み込む保存済みページのパス (\"-\" で標準入力)")
	cmd.Flags().IntVar(&flags.TimeoutSec, "timeout", int(client.DefaultHTTPTimeout/time.Second), "HTTPリクエストのタイムアウト時間（秒）")
	cmd.Flags().BoolVar(&flags.Review, "review", false, "確認用の一覧表を標準エラー出力に表示する")
}

// initAppPreRunE は、環境変数とフラグから設定を確定し、ロガーを初期化します。
func (a *app) initAppPreRunE(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// 明示的に指定されたフラグは環境変数より優先
	if cmd.Flags().Changed("url") {
		cfg.CatalogURL = a.flags.CatalogURL
	}
	if cmd.Flags().Changed("timeout") {
		if a.flags.TimeoutSec <= 0 {
			return fmt.Errorf("--timeout は1以上を指定してください: %d", a.flags.TimeoutSec)
		}
		cfg.Timeout = time.Duration(a.flags.TimeoutSec) * time.Second
	}
	if clibase.Flags.Verbose {
		cfg.LogLevel = "debug"
	}

	if _, err := logger.Setup(cmd.ErrOrStderr(), cfg.LogLevel); err != nil {
		return err
	}

	a.cfg = cfg
	log.Debug().
		Str("catalog_url", cfg.CatalogURL).
		Dur("timeout", cfg.Timeout).
		Str("input", a.flags.InputPath).
		Msg("設定を読み込みました")
	return nil
}

// newFetcher は、--input の有無に応じて Fetcher と取得対象を決定します。
func (a *app) newFetcher(cmd *cobra.Command) (extract.Fetcher, string, error) {
	if a.flags.InputPath != "" {
		f := client.NewFileFetcher()
		// SetIn で差し替えられた場合のみ読み込み元を渡す
		if in := cmd.InOrStdin(); in != io.Reader(os.Stdin) {
			f.Stdin = in
		}
		return f, a.flags.InputPath, nil
	}

	target, err := ensureScheme(a.cfg.CatalogURL)
	if err != nil {
		return nil, "", fmt.Errorf("URLスキームの処理エラー: %w", err)
	}
	return client.New(a.cfg.Timeout), target, nil
}

// run は、取得 → 抽出 → JSON出力を1回だけ実行します。
func (a *app) run(cmd *cobra.Command, args []string) error {
	// 1. 依存性の初期化
	fetcher, target, err := a.newFetcher(cmd)
	if err != nil {
		return err
	}
	extractor, err := extract.NewExtractor(fetcher)
	if err != nil {
		return fmt.Errorf("Extractorの初期化エラー: %w", err)
	}

	overallTimeout := a.cfg.Timeout * overallTimeoutFactor
	log.Debug().Str("target", target).Dur("overall_timeout", overallTimeout).Msg("処理を開始します")

	// 2. メインロジックの実行
	catalog, err := pipeline.BuildCatalog(cmd.Context(), extractor, target, overallTimeout)
	if err != nil {
		return fmt.Errorf("モデル参照パイプラインの実行エラー: %w", err)
	}

	// 3. 結果の出力 (標準出力はJSONのみ)
	if err := emit.WriteJSON(cmd.OutOrStdout(), catalog); err != nil {
		return err
	}

	if a.flags.Review {
		review.Render(cmd.ErrOrStderr(), catalog.Models)
	}
	if dups := review.Duplicates(catalog.Models); len(dups) > 0 {
		// en-us と en-in のように通常の実行でも重複するため info に留める
		log.Info().Strs("names", dups).Msg("重複した識別子があります。出力を確認してください")
	}

	return nil
}

// --- エントリポイント ---

// Execute は、ルートコマンドを実行します。失敗時は終了コード1で終了します。
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("アプリケーションエラー")
		os.Exit(1)
	}
}

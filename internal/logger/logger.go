package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLevel は、レベル未指定時のログレベルです。
const DefaultLevel = zerolog.WarnLevel

// Setup はグローバルロガーをコンソール形式で w に出力するよう設定します。
// 標準出力はJSON専用のため、CLIからは標準エラー出力を渡します。
func Setup(w io.Writer, level string) (zerolog.Logger, error) {
	lvl := DefaultLevel
	if level = strings.TrimSpace(level); level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return zerolog.Logger{}, fmt.Errorf("不正なログレベルです: %s: %w", level, err)
		}
		lvl = parsed
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(consoleWriter).With().Timestamp().Logger().Level(lvl)

	return log.Logger, nil
}

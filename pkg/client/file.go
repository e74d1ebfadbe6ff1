package client

import (
	"context"
	"fmt"
	"io"

	"github.com/shouni/go-utils/iohandler"
)

// StdinPath は、標準入力からページを読み込むことを示すパスです。
const StdinPath = "-"

// FileFetcher は、保存済みのカタログページをローカルから読み込む Fetcher です。
// 取得結果を手元で再現・確認するために使用します。
type FileFetcher struct {
	// Stdin は StdinPath 指定時の読み込み元を差し替えます。
	// nil の場合は iohandler が os.Stdin を読み込みます。
	Stdin io.Reader
}

// NewFileFetcher は os.Stdin を読み込み元とする FileFetcher を返します。
func NewFileFetcher() *FileFetcher {
	return &FileFetcher{}
}

// FetchBytes は path のファイル内容を返します。path が "-" の場合は標準入力を読み込みます。
func (f *FileFetcher) FetchBytes(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if path == StdinPath {
		if f.Stdin != nil {
			data, err := io.ReadAll(f.Stdin)
			if err != nil {
				return nil, fmt.Errorf("標準入力の読み取りエラー: %w", err)
			}
			return data, nil
		}
		// iohandler は空のファイル名を標準入力として扱う
		data, err := iohandler.ReadInput("")
		if err != nil {
			return nil, fmt.Errorf("標準入力の読み取りエラー: %w", err)
		}
		return data, nil
	}

	data, err := iohandler.ReadInput(path)
	if err != nil {
		return nil, fmt.Errorf("ファイルの読み取りエラー (パス: %s): %w", path, err)
	}
	return data, nil
}

package client

import (
	"context"
	"net/http"
	"time"

	"github.com/shouni/go-http-kit/pkg/httpkit"
)

// ----------------------------------------------------------------------
// 定数とインターフェース
// ----------------------------------------------------------------------

const (
	// DefaultHTTPTimeout は、デフォルトのHTTPタイムアウトです。
	DefaultHTTPTimeout = 30 * time.Second
)

// Doer は、標準の *http.Client.Do()と互換性のあるHTTPクライアントのインターフェースを定義します。
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client は httpkit.Client をラップし、カタログページを1回のGETで取得します。
// リトライは行いません。失敗はそのまま呼び出し元に返ります。
type Client struct {
	*httpkit.Client
}

// ----------------------------------------------------------------------
// 設定とコンストラクタ
// ----------------------------------------------------------------------

// ClientOption はClientの設定を行うための関数型です。
type ClientOption func(*Client)

// WithHTTPClient はカスタムのDoerを設定します。
func WithHTTPClient(doer Doer) ClientOption {
	return func(c *Client) {
		httpkit.WithHTTPClient(doer)(c.Client)
	}
}

// New は新しいClientを初期化します。
// timeout が 0 以下の場合は DefaultHTTPTimeout を使用します。
func New(timeout time.Duration, options ...ClientOption) *Client {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}

	// リトライ回数は常に0 (単発のブロッキングGET)
	c := &Client{
		Client: httpkit.New(timeout, httpkit.WithMaxRetries(0)),
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

// FetchBytes は URL からコンテンツを取得し、生のバイト配列として返します。
// 2xx 以外のステータスや通信エラーはエラーとして返されます。
func (c *Client) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	return c.Client.FetchBytes(ctx, url)
}

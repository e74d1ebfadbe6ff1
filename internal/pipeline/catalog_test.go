package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/go-model-refs/pkg/extract"
	"github.com/shouni/go-model-refs/pkg/types"
)

// stubFetcher は固定のボディを返すか、コンテキスト終了まで待機する Fetcher です。
type stubFetcher struct {
	body  string
	err   error
	block bool
}

func (s *stubFetcher) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if s.err != nil {
		return nil, s.err
	}
	return []byte(s.body), nil
}

func newExtractor(t *testing.T, f extract.Fetcher) *extract.Extractor {
	t.Helper()
	e, err := extract.NewExtractor(f)
	require.NoError(t, err)
	return e
}

func TestBuildCatalog(t *testing.T) {
	const frURL = "https://alphacephei.com/vosk/models/vosk-model-small-fr-0.22.zip"
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		e := newExtractor(t, &stubFetcher{body: "<li>\n" + frURL + "\n</li>"})
		catalog, err := BuildCatalog(ctx, e, extract.DefaultCatalogURL, time.Second)
		require.NoError(t, err)
		assert.Equal(t, []types.ModelReference{{Name: "fr", URL: frURL}}, catalog.Models)
	})

	t.Run("no matches yields empty models", func(t *testing.T) {
		e := newExtractor(t, &stubFetcher{body: "<html></html>"})
		catalog, err := BuildCatalog(ctx, e, extract.DefaultCatalogURL, 0)
		require.NoError(t, err)
		assert.NotNil(t, catalog.Models)
		assert.Empty(t, catalog.Models)
	})

	t.Run("fetch error is wrapped with url", func(t *testing.T) {
		sentinel := errors.New("connection refused")
		e := newExtractor(t, &stubFetcher{err: sentinel})
		_, err := BuildCatalog(ctx, e, extract.DefaultCatalogURL, time.Second)
		require.Error(t, err)
		assert.ErrorIs(t, err, sentinel)
		assert.Contains(t, err.Error(), extract.DefaultCatalogURL)
	})

	t.Run("overall timeout", func(t *testing.T) {
		e := newExtractor(t, &stubFetcher{block: true})
		_, err := BuildCatalog(ctx, e, extract.DefaultCatalogURL, 10*time.Millisecond)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("nil extractor", func(t *testing.T) {
		_, err := BuildCatalog(ctx, nil, extract.DefaultCatalogURL, time.Second)
		assert.Error(t, err)
	})
}

package service

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptdepot/promptdepot/internal/errors"
	"github.com/promptdepot/promptdepot/internal/renderer"
	"github.com/promptdepot/promptdepot/internal/storage"
)

func newTestService(t *testing.T, factory renderer.Factory) (*Service, storage.TemplateStore) {
	t.Helper()
	log := zerolog.Nop()
	store, err := storage.NewLocalTemplateStore(storage.Options{BasePath: t.TempDir()}, &log)
	require.NoError(t, err)
	return New(store, factory, &log), store
}

func TestRenderPrompt(t *testing.T) {
	svc, store := newTestService(t, renderer.NewExpandRenderer)

	require.NoError(t, store.CreateVersion("greeting", "1.0.0", nil,
		storage.WithStrategy(storage.WithContent),
		storage.WithInitialContent("Hello ${name}")))

	out, err := svc.RenderPrompt("greeting", "1.0.0", map[string]any{"name": "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "Hello Ada", out)
}

func TestRenderPromptCachesRendererPerVersion(t *testing.T) {
	var compiles atomic.Int64
	counting := func(tmpl string) (renderer.PromptRenderer, error) {
		compiles.Add(1)
		return renderer.NewExpandRenderer(tmpl)
	}

	svc, store := newTestService(t, counting)

	require.NoError(t, store.CreateVersion("t", "1.0.0", nil,
		storage.WithStrategy(storage.WithContent), storage.WithInitialContent("v1 ${x}")))
	require.NoError(t, store.CreateVersion("t", "2.0.0", nil,
		storage.WithStrategy(storage.WithContent), storage.WithInitialContent("v2 ${x}")))

	for i := 0; i < 5; i++ {
		out, err := svc.RenderPrompt("t", "1.0.0", map[string]any{"x": "a"})
		require.NoError(t, err)
		assert.Equal(t, "v1 a", out)
	}
	out, err := svc.RenderPrompt("t", "2.0.0", map[string]any{"x": "b"})
	require.NoError(t, err)
	assert.Equal(t, "v2 b", out)

	assert.Equal(t, int64(2), compiles.Load())
}

func TestRenderPromptConcurrentAccess(t *testing.T) {
	svc, store := newTestService(t, renderer.NewExpandRenderer)

	require.NoError(t, store.CreateVersion("t", "1.0.0", nil,
		storage.WithStrategy(storage.WithContent), storage.WithInitialContent("hi ${who}")))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := svc.RenderPrompt("t", "1.0.0", map[string]any{"who": "all"})
			assert.NoError(t, err)
			assert.Equal(t, "hi all", out)
		}()
	}
	wg.Wait()
}

func TestRenderPromptNotFound(t *testing.T) {
	svc, _ := newTestService(t, renderer.NewExpandRenderer)

	_, err := svc.RenderPrompt("missing", "1.0.0", nil)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestRenderPromptCompileErrorNotCached(t *testing.T) {
	svc, store := newTestService(t, renderer.NewGoTemplateRenderer)

	require.NoError(t, store.CreateVersion("bad", "1.0.0", nil,
		storage.WithStrategy(storage.WithContent), storage.WithInitialContent("{{.unclosed")))

	_, err := svc.RenderPrompt("bad", "1.0.0", nil)
	require.Error(t, err)
	assert.True(t, errors.IsValidationFailure(err))
}

package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptdepot/promptdepot/internal/errors"
)

func TestGoTemplateRenderer(t *testing.T) {
	r, err := NewGoTemplateRenderer("Hello {{.name}}, welcome to {{.place}}!")
	require.NoError(t, err)

	out, err := r.Render(map[string]any{"name": "Ada", "place": "the depot"})
	require.NoError(t, err)
	assert.Equal(t, "Hello Ada, welcome to the depot!", out)
}

func TestGoTemplateRendererParseError(t *testing.T) {
	_, err := NewGoTemplateRenderer("Hello {{.name")
	require.Error(t, err)
	assert.True(t, errors.IsValidationFailure(err))
}

func TestExpandRenderer(t *testing.T) {
	r, err := NewExpandRenderer("Hello ${name}, you have ${count} messages")
	require.NoError(t, err)

	out, err := r.Render(map[string]any{"name": "Ada", "count": 3})
	require.NoError(t, err)
	assert.Equal(t, "Hello Ada, you have 3 messages", out)
}

func TestExpandRendererMissingPlaceholderExpandsEmpty(t *testing.T) {
	r, err := NewExpandRenderer("Hello ${name}!")
	require.NoError(t, err)

	out, err := r.Render(map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "Hello !", out)
}

func TestExpandRendererPlainTextPassesThrough(t *testing.T) {
	r, err := NewExpandRenderer("no placeholders here")
	require.NoError(t, err)

	out, err := r.Render(nil)
	require.NoError(t, err)
	assert.Equal(t, "no placeholders here", out)
}

func TestEngineRegistry(t *testing.T) {
	names := Engines()
	assert.Contains(t, names, "gotemplate")
	assert.Contains(t, names, "expand")

	factory, err := Engine("expand")
	require.NoError(t, err)
	r, err := factory("hi ${who}")
	require.NoError(t, err)

	out, err := r.Render(map[string]any{"who": "there"})
	require.NoError(t, err)
	assert.Equal(t, "hi there", out)
}

func TestEngineUnknown(t *testing.T) {
	_, err := Engine("jinja2")
	require.Error(t, err)
	assert.True(t, errors.IsValidationFailure(err))
}

package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strkit/pkg/i18n"
)

func TestYAMLParser_Parse(t *testing.T) {
	p := i18n.NewYAMLParser()

	t.Run("nested maps", func(t *testing.T) {
		data, err := p.Parse(context.Background(), "en:\n  validation:\n    phone: bad phone\n")
		require.NoError(t, err)
		nested, ok := data["en"]["validation"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "bad phone", nested["phone"])
	})

	t.Run("language value must be a map", func(t *testing.T) {
		_, err := p.Parse(context.Background(), "en: hello\n")
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := p.Parse(context.Background(), "en: {")
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := p.Parse(context.Background(), "")
		assert.ErrorIs(t, err, i18n.ErrNoTranslations)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Parse(ctx, "en:\n  a: b\n")
		assert.ErrorIs(t, err, i18n.ErrYAMLParsingCancelled)
	})
}

func TestYAMLParser_SupportsFileExtension(t *testing.T) {
	p := i18n.NewYAMLParser()
	assert.True(t, p.SupportsFileExtension("yaml"))
	assert.True(t, p.SupportsFileExtension(".YML"))
	assert.False(t, p.SupportsFileExtension("json"))
}

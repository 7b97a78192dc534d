package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/strkit/pkg/i18n"
)

func TestMatchLanguage(t *testing.T) {
	t.Parallel()
	supported := []string{"en", "zh"}

	tests := []struct {
		name       string
		preference string
		expected   string
	}{
		{name: "empty returns default", preference: "", expected: "en"},
		{name: "exact match", preference: "zh", expected: "zh"},
		{name: "region variant", preference: "zh-CN", expected: "zh"},
		{name: "underscore locale", preference: "zh_CN", expected: "zh"},
		{name: "english region", preference: "en-US", expected: "en"},
		{name: "quality values", preference: "en;q=0.5,zh;q=0.9", expected: "zh"},
		{name: "browser header", preference: "zh-CN,zh;q=0.9,en;q=0.8", expected: "zh"},
		{name: "unsupported", preference: "fr", expected: "en"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, i18n.MatchLanguage(tt.preference, supported, "en"))
		})
	}

	t.Run("no supported languages", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "en", i18n.MatchLanguage("zh", nil, "en"))
	})
}

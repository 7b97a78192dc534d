package i18n

import (
	"context"
	"embed"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
)

// DefaultLanguage is used when no language is configured or detected.
const DefaultLanguage = "en"

//go:embed locales/*.yaml
var builtinLocales embed.FS

// Translator resolves dotted keys ("validation.phone") to message templates
// and fills in %{name} placeholders. It is read-only after construction and
// safe for concurrent use.
type Translator struct {
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logger        *slog.Logger
}

// NewTranslator loads translations from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, fmt.Errorf("i18n: adapter is nil")
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, m := range translations {
		if lang == "" {
			return nil, fmt.Errorf("i18n: empty language code")
		}
		if m == nil {
			return nil, fmt.Errorf("i18n: nil translations for language %q", lang)
		}
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.SupportedLanguages()))
	return t, nil
}

// NewBuiltinTranslator loads the validation messages shipped with the module.
func NewBuiltinTranslator(ctx context.Context, options ...Option) (*Translator, error) {
	adapter, err := NewFSAdapter(NewYAMLParser(), builtinLocales, "locales")
	if err != nil {
		return nil, err
	}
	return NewTranslator(ctx, adapter, options...)
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// DefaultLanguage returns the language used for fallbacks.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang, substituting args given as name/value pairs:
//
//	t.T("zh", "validation.phone", "field", "手机号码")
//
// A key missing in lang is looked up in the default language, then the key
// itself is returned (or "" when fallback to key is disabled).
func (t *Translator) T(lang, key string, args ...string) string {
	return t.translate(lang, key, pairsToParams(args))
}

// TMap is T with parameters taken from a map, the shape validation errors
// carry their TranslationValues in. Values are formatted with fmt.Sprint.
func (t *Translator) TMap(lang, key string, values map[string]any) string {
	params := make(map[string]string, len(values))
	for k, v := range values {
		params[k] = fmt.Sprint(v)
	}
	return t.translate(lang, key, params)
}

func (t *Translator) translate(lang, key string, params map[string]string) string {
	if tmpl, ok := t.lookup(lang, key); ok {
		return namedSprintf(tmpl, params)
	}
	if lang != t.defaultLang {
		if tmpl, ok := t.lookup(t.defaultLang, key); ok {
			t.logger.Debug("translation missing, using default language", "lang", lang, "key", key)
			return namedSprintf(tmpl, params)
		}
	}

	t.logger.Warn("translation not found", "lang", lang, "key", key)
	if t.fallbackToKey {
		return namedSprintf(key, params)
	}
	return ""
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	langMap, ok := t.translations[lang]
	if !ok {
		return "", false
	}

	current := langMap
	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		if current, ok = val.(map[string]any); !ok {
			return "", false
		}
	}
	return "", false
}

// pairsToParams reads args as key, value, key, value; an odd trailing key is ignored.
func pairsToParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf replaces %{name} placeholders; unknown names are left as is.
func namedSprintf(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

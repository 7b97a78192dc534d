// Package i18n translates validation messages.
//
// Translations are nested maps keyed by language, loaded through a
// TranslationAdapter (an in-memory MapAdapter, or FSAdapter over any fs.FS
// with a YAMLParser). Messages use %{name} placeholders:
//
//	tr, err := i18n.NewBuiltinTranslator(ctx, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//	    return err
//	}
//	tr.T("zh", "validation.phone", "field", "手机号码")
//	// "手机号码必须是有效的11位手机号码"
//
// The builtin set covers the validator package's translation keys in English
// and Simplified Chinese. TMap accepts the TranslationValues map carried by a
// validator.ValidationError directly.
//
// MatchLanguage resolves a user preference such as "zh-CN,zh;q=0.9" against
// the supported languages using golang.org/x/text/language.
package i18n

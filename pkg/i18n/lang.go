package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// MatchLanguage picks the best of supported for an Accept-Language style
// preference list ("zh-CN,zh;q=0.9,en;q=0.8") or a plain tag ("zh_CN",
// "en-US"). Region variants match their base language. defaultLang is
// returned when nothing matches or the input cannot be parsed.
func MatchLanguage(preference string, supported []string, defaultLang string) string {
	preference = strings.ReplaceAll(strings.TrimSpace(preference), "_", "-")
	if preference == "" || len(supported) == 0 {
		return defaultLang
	}

	tags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, s)
	}
	if len(tags) == 0 {
		return defaultLang
	}

	wanted, _, err := language.ParseAcceptLanguage(preference)
	if err != nil || len(wanted) == 0 {
		return defaultLang
	}

	_, idx, confidence := language.NewMatcher(tags).Match(wanted...)
	if confidence == language.No {
		return defaultLang
	}
	return names[idx]
}

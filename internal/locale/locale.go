// Package locale resolves the chat language and holds the fixed strings the
// assistant shows in each supported language.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported chat language code.
type Language string

// Supported languages.
const (
	English  Language = "en"
	Gujarati Language = "gu"
	Marathi  Language = "mr"
	Hindi    Language = "hi"
)

// Default is used when no language is configured or matched.
const Default = English

// Supported lists the languages in the order the chat screen cycles through them.
var Supported = []Language{English, Gujarati, Marathi, Hindi}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Gujarati,
	language.Marathi,
	language.Hindi,
})

// Parse resolves a BCP 47 tag such as "hi-IN" to a supported language.
// Unknown or empty input resolves to Default.
func Parse(s string) Language {
	s = strings.TrimSpace(s)
	if s == "" {
		return Default
	}
	for _, lang := range Supported {
		if strings.EqualFold(s, string(lang)) {
			return lang
		}
	}

	tag, err := language.Parse(s)
	if err != nil {
		return Default
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Default
	}
	return Supported[idx]
}

// Valid reports whether l is one of the supported codes.
func (l Language) Valid() bool {
	for _, lang := range Supported {
		if l == lang {
			return true
		}
	}
	return false
}

// Name returns the English display name embedded in prompts.
// Codes outside the supported set are treated as Hindi.
func (l Language) Name() string {
	switch l {
	case English:
		return "English"
	case Gujarati:
		return "Gujarati"
	case Marathi:
		return "Marathi"
	default:
		return "Hindi"
	}
}

// Next returns the language after l in Supported, wrapping around.
func (l Language) Next() Language {
	for i, lang := range Supported {
		if lang == l {
			return Supported[(i+1)%len(Supported)]
		}
	}
	return Default
}

func (l Language) String() string {
	return string(l)
}

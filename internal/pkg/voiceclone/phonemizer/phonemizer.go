package phonemizer

import (
	"strings"

	"github.com/neurlang/goruut/lib"
	"github.com/neurlang/goruut/models/requests"
)

// goruut wants full language names, the CLI speaks short codes.
var languageNames = map[string]string{
	"en":    "English",
	"en-us": "English",
	"en-gb": "English",
	"fr":    "French",
	"fr-fr": "French",
	"pt":    "Portuguese",
	"pt-br": "Portuguese",
	"es":    "Spanish",
	"de":    "German",
	"it":    "Italian",
}

type Phonemizer struct {
	p *lib.Phonemizer
}

func NewPhonemizer() *Phonemizer {
	return &Phonemizer{
		p: lib.NewPhonemizer(nil),
	}
}

// LanguageName maps a language code like "pt-br" to the name goruut expects.
// Unknown codes fall back to English.
func LanguageName(code string) string {
	if name, ok := languageNames[strings.ToLower(strings.TrimSpace(code))]; ok {
		return name
	}
	return "English"
}

func (ph *Phonemizer) Phonemize(text, language string) string {
	resp := ph.p.Sentence(requests.PhonemizeSentence{
		Language: LanguageName(language),
		Sentence: text,
	})

	var result strings.Builder
	for i, word := range resp.Words {
		if i > 0 {
			result.WriteString(" ")
		}
		result.WriteString(word.Phonetic)
	}

	return result.String()
}

func (ph *Phonemizer) Close() error {
	return nil
}

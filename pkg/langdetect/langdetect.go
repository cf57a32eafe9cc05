// Package langdetect guesses the document language for the html lang
// attribute of generated pages.
package langdetect

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// fallback is used whenever detection is inconclusive.
const fallback = "en"

// languages restricts detection to a practical set; loading every lingua
// model would cost far more startup time than a doc tool warrants.
var languages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Russian,
	lingua.Japanese,
	lingua.Chinese,
}

type Detector struct {
	inner lingua.LanguageDetector
}

func New() *Detector {
	return &Detector{
		inner: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns the ISO 639-1 code of the detected language of text, or
// "en" when the text is empty or detection is inconclusive.
func (d *Detector) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return fallback
	}
	lang, ok := d.inner.DetectLanguageOf(text)
	if !ok {
		return fallback
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}

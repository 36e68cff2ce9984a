package boundary

import (
	"sync"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	"golang.org/x/text/language"
)

// sentenceTokenizer is what a trained Punkt model provides.
type sentenceTokenizer interface {
	Tokenize(string) []*sentences.Sentence
}

// Locale bundles the language tag used for boundary analysis with the
// trained sentence model backing sentence segmentation. The zero
// Locale has no sentence model and treats a whole text as one
// sentence.
type Locale struct {
	Tag language.Tag
	tok sentenceTokenizer
}

var (
	usOnce   sync.Once
	usLocale Locale
)

// US is the default locale: American English, backed by the embedded
// English sentence model. The model is built once per process and
// shared; it is immutable after construction.
func US() Locale {
	usOnce.Do(func() {
		tok, err := english.NewSentenceTokenizer(nil)
		usLocale = Locale{Tag: language.AmericanEnglish}
		if err != nil {
			// degrade to whole-text sentences rather than failing
			tracer().Errorf("boundary: cannot build English sentence model: %v", err)
			return
		}
		usLocale.tok = tok
	})
	return usLocale
}

// WithTraining returns a locale for tag backed by a custom Punkt
// training profile, as loaded with sentences.LoadTraining.
func WithTraining(tag language.Tag, training *sentences.Storage) Locale {
	return Locale{Tag: tag, tok: sentences.NewSentenceTokenizer(training)}
}

// Environment detects the user's locale from the environment, falling
// back to en-US. The embedded English sentence model backs sentence
// segmentation either way; use WithTraining for other languages.
func Environment() Locale {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Infof("boundary: locale detection failed, using en-US")
		return US()
	}
	tracer().Infof("boundary: detected user locale %v", userLocale)
	loc := US()
	loc.Tag = language.Make(userLocale)
	return loc
}

package digitalreasoning

import (
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"

	"github.com/stepince/digitalreasoning/boundary"
	"github.com/stepince/digitalreasoning/dict"
	"github.com/stepince/digitalreasoning/token"
)

// tracer traces to 'digitalreasoning'.
func tracer() tracing.Trace {
	return tracing.Select("digitalreasoning")
}

// sentenceParser is the override point for sentence parsing. The base
// tokenizer installs its plain classifier; the proper-name tokenizer
// replaces it with the dictionary-matching variant.
type sentenceParser interface {
	ParseSentence(text string) (*token.Sentence, error)
}

// DocumentTokenizer splits a text document into sentences, and each
// sentence into word and non-word tokens, along locale-sensitive
// Unicode boundaries.
//
// Tokenizers hold no mutable state across calls; a tokenizer may be
// shared between goroutines.
type DocumentTokenizer struct {
	locale boundary.Locale
	parser sentenceParser
}

type config struct {
	locale    boundary.Locale
	hasLocale bool
	dict      *dict.Dictionary
	hasDict   bool
}

// Option configures a tokenizer.
type Option func(*config)

// WithLocale sets the locale used for sentence and word boundary
// analysis. The default is boundary.US().
func WithLocale(loc boundary.Locale) Option {
	return func(cfg *config) {
		cfg.locale = loc
		cfg.hasLocale = true
	}
}

// WithDictionary sets the proper-name dictionary of a proper-name
// tokenizer. Without it the bundled default dictionary is used.
func WithDictionary(d *dict.Dictionary) Option {
	return func(cfg *config) {
		cfg.dict = d
		cfg.hasDict = true
	}
}

// WithNames is a convenience for WithDictionary(dict.New(names)).
func WithNames(names []string) Option {
	return func(cfg *config) {
		cfg.dict = dict.New(names)
		cfg.hasDict = true
	}
}

func makeConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if !cfg.hasLocale {
		cfg.locale = boundary.US()
	}
	return cfg
}

// NewDocumentTokenizer creates a plain document tokenizer.
func NewDocumentTokenizer(opts ...Option) *DocumentTokenizer {
	cfg := makeConfig(opts)
	t := &DocumentTokenizer{locale: cfg.locale}
	t.parser = t
	return t
}

// ParseDocument splits text into sentences and parses each one, in
// order. Empty input is not an error and yields a document with no
// sentences.
func (t *DocumentTokenizer) ParseDocument(text string) (*token.Document, error) {
	doc := &token.Document{}
	for _, source := range t.locale.SplitSentences(text) {
		sentence, err := t.parser.ParseSentence(source)
		if err != nil {
			return nil, err
		}
		doc.Sentences = append(doc.Sentences, sentence)
	}
	tracer().Debugf("parsed document with %d sentences", len(doc.Sentences))
	return doc, nil
}

// ParseSentence splits one sentence into Word and NonWord tokens. The
// tokens partition the sentence text: concatenated in order they
// reproduce it exactly. Non-word runs (blanks, punctuation, symbols)
// are retained as tokens, not dropped.
func (t *DocumentTokenizer) ParseSentence(text string) (*token.Sentence, error) {
	words := boundary.NewWords(text)
	defer words.Close()
	sentence := &token.Sentence{}
	for words.Next() {
		sentence.Tokens = append(sentence.Tokens, classify(words.Text()))
	}
	if err := words.Err(); err != nil {
		return nil, err
	}
	return sentence, nil
}

// classify types a segment by its first character: letter-or-digit
// runs are words, everything else is a non-word.
func classify(seg string) token.Token {
	r, _ := utf8.DecodeRuneInString(seg)
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return token.Token{Kind: token.Word, Text: seg}
	}
	return token.Token{Kind: token.NonWord, Text: seg}
}

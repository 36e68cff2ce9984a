package digitalreasoning

import (
	"strings"

	"github.com/stepince/digitalreasoning/boundary"
	"github.com/stepince/digitalreasoning/dict"
	"github.com/stepince/digitalreasoning/token"
)

// ProperNameTokenizer recognizes multi-word proper names from a
// dictionary and collapses each into a single ProperWord token. In
// every other respect it behaves like DocumentTokenizer.
type ProperNameTokenizer struct {
	DocumentTokenizer
	dict *dict.Dictionary
}

// NewProperNameTokenizer creates a tokenizer over a proper-name
// dictionary. Without WithDictionary/WithNames the bundled default
// dictionary is used; should that fail to load, the tokenizer still
// works and simply matches no proper names.
func NewProperNameTokenizer(opts ...Option) *ProperNameTokenizer {
	cfg := makeConfig(opts)
	t := &ProperNameTokenizer{}
	t.locale = cfg.locale
	if cfg.hasDict {
		t.dict = cfg.dict
	} else {
		t.dict = dict.Default()
	}
	t.parser = t
	return t
}

// ParseSentence parses one sentence, emitting a single ProperWord
// token wherever a dictionary name matches at word boundaries, and
// plain Word/NonWord tokens everywhere else. The partition property of
// DocumentTokenizer.ParseSentence is preserved.
func (t *ProperNameTokenizer) ParseSentence(text string) (*token.Sentence, error) {
	words := boundary.NewWords(text)
	defer words.Close()
	sentence := &token.Sentence{}
	for words.Next() {
		seg := words.Text()
		if name, ok := t.properName(seg, text, words); ok {
			sentence.Tokens = append(sentence.Tokens, token.Token{Kind: token.ProperWord, Text: name})
			// Skip the segments the match consumed. The match end is a
			// known boundary, so some segment ends exactly there and
			// iteration resumes right after it.
			end := words.Start() + len(name)
			for words.End() < end {
				if !words.Next() {
					break
				}
			}
			continue
		}
		sentence.Tokens = append(sentence.Tokens, classify(seg))
	}
	if err := words.Err(); err != nil {
		return nil, err
	}
	return sentence, nil
}

// properName tries the dictionary candidates keyed by the current
// segment, longest first. A candidate matches when the sentence text
// at the cursor position begins with it verbatim and the offset right
// after it is a word boundary. The boundary check rejects candidates
// that are mere prefixes of a longer word, e.g. "Princip" inside
// "Principe".
func (t *ProperNameTokenizer) properName(word, source string, words *boundary.Words) (string, bool) {
	candidates := t.dict.Candidates(word)
	if len(candidates) == 0 {
		return "", false
	}
	start := words.Start()
	for _, name := range candidates {
		if strings.HasPrefix(source[start:], name) && words.IsBoundary(start+len(name)) {
			tracer().Debugf("proper name '%s' matched at offset %d", name, start)
			return name, true
		}
	}
	return "", false
}

// ProperNames collects the distinct proper names of a parsed document,
// sorted lexicographically.
func ProperNames(doc *token.Document) []string {
	return doc.ProperNames()
}

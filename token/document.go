package token

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// Document is an ordered sequence of parsed sentences. Documents are
// created by a tokenizer and are read-only result data afterwards.
type Document struct {
	Sentences []*Sentence `xml:"sentence"`
}

// AllWords returns every word token of the document in source order.
// Proper words are included, non-words are not.
func (d *Document) AllWords() []Token {
	var words []Token
	for _, s := range d.Sentences {
		for _, t := range s.Tokens {
			if t.IsWord() {
				words = append(words, t)
			}
		}
	}
	return words
}

// AllWordsAsText returns the text of every word token of the document
// in source order.
func (d *Document) AllWordsAsText() []string {
	words := d.AllWords()
	texts := make([]string, len(words))
	for i, t := range words {
		texts[i] = t.Text
	}
	return texts
}

// ProperNames collects the distinct proper-word texts of the document,
// sorted lexicographically.
func (d *Document) ProperNames() []string {
	set := treeset.NewWithStringComparator()
	for _, s := range d.Sentences {
		for _, t := range s.Tokens {
			if t.Kind == ProperWord {
				set.Add(t.Text)
			}
		}
	}
	names := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		names = append(names, v.(string))
	}
	return names
}

package token

import "strings"

// Kind discriminates the variants of a Token.
type Kind int

// A token is either a word, a proper name recognized from a dictionary,
// or a non-word run (punctuation, blanks, symbols).
const (
	Word Kind = iota
	ProperWord
	NonWord
)

var kindName = []string{
	"Word",
	"ProperWord",
	"NonWord",
}

func (k Kind) String() string {
	if k < Word || k > NonWord {
		return "Unknown"
	}
	return kindName[k]
}

// Token is one classified segment of a sentence. Text holds the exact
// substring of source text the token represents; for proper words this
// may span several segments, interior blanks included.
type Token struct {
	Kind Kind
	Text string
}

// IsWord reports whether the token is a word in the wider sense, i.e.
// a plain word or a proper word.
func (t Token) IsWord() bool {
	return t.Kind == Word || t.Kind == ProperWord
}

func (t Token) String() string {
	return t.Kind.String() + ":" + "\"" + t.Text + "\""
}

// Sentence is an ordered run of tokens. The tokens partition the
// sentence's source text: no gaps, no overlaps, original order.
type Sentence struct {
	Tokens []Token `xml:"token"`
}

// Text reassembles the sentence's source text from its tokens.
func (s *Sentence) Text() string {
	var sb strings.Builder
	for _, t := range s.Tokens {
		sb.WriteString(t.Text)
	}
	return sb.String()
}

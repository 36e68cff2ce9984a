package boundary

// SplitSentences segments text into sentence substrings, in source
// order. Empty input yields no sentences. Without a sentence model the
// whole text is one sentence.
func (loc Locale) SplitSentences(text string) []string {
	if text == "" {
		return nil
	}
	if loc.tok == nil {
		return []string{text}
	}
	sents := loc.tok.Tokenize(text)
	out := make([]string, 0, len(sents))
	for _, s := range sents {
		if s.Text == "" {
			continue
		}
		out = append(out, s.Text)
	}
	return out
}

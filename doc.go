/*
Package digitalreasoning parses a raw text document into a structured
hierarchy of sentences and tokens.

Description

A document is segmented into sentences, and each sentence into a flat
ordered run of tokens. Tokens are typed: words, non-words (punctuation,
blanks, symbols), and proper words. Segmentation is locale-sensitive
and follows standard Unicode text-boundary behavior rather than naive
whitespace splitting; the resulting tokens partition the source text
exactly.

The framework involves four entities: the token.Document, a container
for sentences; the token.Sentence, a container for tokens; and the
Word/NonWord/ProperWord token variants.

Typical Usage

The plain tokenizer produces words and non-words:

  tokenizer := digitalreasoning.NewDocumentTokenizer()
  doc, err := tokenizer.ParseDocument("hello world")
  // doc.AllWordsAsText() == []string{"hello", "world"}

The proper-name tokenizer additionally recognizes multi-word proper
names listed in a dictionary and collapses each into a single token:

  names, err := dict.LoadNames("names.txt")
  tokenizer := digitalreasoning.NewProperNameTokenizer(
      digitalreasoning.WithDictionary(dict.New(names)))
  doc, err := tokenizer.ParseDocument("Gavrilo Princip fired")
  // one ProperWord token "Gavrilo Princip", then "fired"

Matching is longest-first and only succeeds when the text position
right after the candidate is a word boundary, so a name never matches
inside a longer word ("Princip" does not match within "Principe").

License

This project is provided under the terms of the 3-Clause BSD license.

SPDX-License-Identifier: BSD-3-Clause
*/
package digitalreasoning

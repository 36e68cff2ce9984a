/*
Package dict provides the proper-name dictionary used by the
proper-name tokenizer.

A dictionary is built from a set of proper names, each possibly
containing internal blanks ("Gavrilo Princip"). Names are indexed by
their first word; candidates under a key are ranked longest first, so
that the tokenizer's matching tries the longest possible name before
any shorter one.

License

This project is provided under the terms of the 3-Clause BSD license.

SPDX-License-Identifier: BSD-3-Clause
*/
package dict

import (
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'digitalreasoning.dict'.
func tracer() tracing.Trace {
	return tracing.Select("digitalreasoning.dict")
}

// Dictionary maps the first word of a proper name to the full names
// sharing that first word, longest first. Dictionaries are immutable
// once built and safe for concurrent lookups.
type Dictionary struct {
	names map[string][]string
	size  int
}

// New builds a dictionary from a set of proper names. Exact duplicates
// collapse; names of equal length under the same key are all retained,
// ranked by insertion order. Empty strings are ignored.
func New(names []string) *Dictionary {
	d := &Dictionary{names: make(map[string][]string, len(names))}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		key := name
		if i := strings.IndexByte(name, ' '); i >= 0 {
			key = name[:i]
		}
		d.names[key] = append(d.names[key], name)
		d.size++
	}
	for key, candidates := range d.names {
		sort.SliceStable(candidates, func(i, j int) bool {
			return len(candidates[i]) > len(candidates[j])
		})
		d.names[key] = candidates
	}
	return d
}

// HasKey reports whether word is the first word of any name in the
// dictionary.
func (d *Dictionary) HasKey(word string) bool {
	if d == nil {
		return false
	}
	_, ok := d.names[word]
	return ok
}

// Candidates returns the full names whose first word is word, longest
// first. The returned slice is shared and must not be modified.
func (d *Dictionary) Candidates(word string) []string {
	if d == nil {
		return nil
	}
	return d.names[word]
}

// Len returns the number of names in the dictionary.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return d.size
}

// Command propernames parses a text document and prints the distinct
// proper names it contains, one per line, sorted. With --xml the whole
// parsed document is printed as indented XML instead.
package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/stepince/digitalreasoning"
	"github.com/stepince/digitalreasoning/boundary"
	"github.com/stepince/digitalreasoning/dict"
	"github.com/stepince/digitalreasoning/token"
)

var (
	dictPath string
	asXML    bool
	localeID string
)

func main() {
	root := &cobra.Command{
		Use:   "propernames <file>",
		Short: "List the proper names found in a text document",
		Long: `propernames tokenizes a text document into sentences and words and
recognizes multi-word proper names from a dictionary, collapsing each
into a single token. Without --dict the bundled default dictionary is
used.`,
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}
	root.Flags().StringVarP(&dictPath, "dict", "d", "", "dictionary file, one proper name per line")
	root.Flags().BoolVar(&asXML, "xml", false, "print the parsed document as indented XML")
	root.Flags().StringVar(&localeID, "locale", "", "IETF language tag for boundary analysis (default: detected)")
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	gtrace.CoreTracer = gologadapter.New()

	contents, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read input: %w", err)
	}

	var opts []digitalreasoning.Option
	if localeID == "" {
		opts = append(opts, digitalreasoning.WithLocale(boundary.Environment()))
	} else {
		tag, err := language.Parse(localeID)
		if err != nil {
			return fmt.Errorf("invalid locale %q: %w", localeID, err)
		}
		loc := boundary.US()
		loc.Tag = tag
		opts = append(opts, digitalreasoning.WithLocale(loc))
	}
	if dictPath != "" {
		names, err := dict.LoadNames(dictPath)
		if err != nil {
			return fmt.Errorf("cannot load dictionary: %w", err)
		}
		opts = append(opts, digitalreasoning.WithDictionary(dict.New(names)))
	}

	tokenizer := digitalreasoning.NewProperNameTokenizer(opts...)
	doc, err := tokenizer.ParseDocument(string(contents))
	if err != nil {
		return err
	}

	if asXML {
		return writeXML(cmd.OutOrStdout(), doc)
	}
	for _, name := range digitalreasoning.ProperNames(doc) {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func writeXML(w io.Writer, doc *token.Document) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

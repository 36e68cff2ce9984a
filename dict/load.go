package dict

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// ReadNames reads a line-oriented name source: one proper name per
// line, surrounding whitespace trimmed. Blank lines are skipped.
func ReadNames(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var names []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// LoadNames reads a name source from a file. A missing or unreadable
// file is an error; callers asking for an explicit dictionary path get
// to see it.
func LoadNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadNames(f)
}

package dict

import (
	"bytes"
	_ "embed"
	"sync"
)

// NER.txt is the bundled default dictionary. It may not be needed if
// clients supply their own dictionary, so it is loaded lazily.
//
//go:embed NER.txt
var defaultSource []byte

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
)

// Default returns the dictionary built from the bundled NER.txt
// resource. It is built exactly once per process. If the resource
// cannot be read, a warning is logged and an empty dictionary is
// returned; tokenizer construction stays usable, it just matches no
// proper names.
func Default() *Dictionary {
	defaultOnce.Do(func() {
		names, err := ReadNames(bytes.NewReader(defaultSource))
		if err != nil {
			tracer().Errorf("dict: failed to load default dictionary NER.txt: %v", err)
			defaultDict = New(nil)
			return
		}
		defaultDict = New(names)
		tracer().Infof("dict: default dictionary loaded, %d names", defaultDict.Len())
	})
	return defaultDict
}

package boundary

import (
	"sort"
	"strings"
)

// span is one segment [first,last) in byte offsets.
type span struct {
	first, last int
}

// Words is a lazy, forward-only cursor over the word and non-word
// segments of a single sentence. Successive calls to Next() step
// through the segments; Text(), Start() and End() describe the current
// one.
//
// IsBoundary answers whether an absolute byte offset is exactly a
// segment boundary; it may read ahead of the cursor, but read-ahead
// segments are buffered and later returned by Next() in order, so
// forward iteration is unaffected.
type Words struct {
	src     string
	scanner *wordScanner
	pending []span // segments read ahead by IsBoundary
	cur     span
	bounds  []int // discovered boundary offsets, ascending, starting at 0
	done    bool  // underlying segmenter exhausted
	closed  bool
	err     error
}

// NewWords positions a fresh word cursor on text. The cursor owns a
// pooled breaker/segmenter pair until Close() is called.
func NewWords(text string) *Words {
	w := &Words{
		src:     text,
		scanner: borrowScanner(),
		bounds:  []int{0},
	}
	w.scanner.segmenter.Init(strings.NewReader(text))
	return w
}

// Next advances the cursor to the next segment. It returns false when
// no segments remain or an error occurred; in the latter case Err()
// reports it.
func (w *Words) Next() bool {
	if len(w.pending) > 0 {
		w.cur = w.pending[0]
		w.pending = w.pending[1:]
		return true
	}
	s, ok := w.pull()
	if !ok {
		return false
	}
	w.cur = s
	return true
}

// Text returns the current segment.
func (w *Words) Text() string {
	return w.src[w.cur.first:w.cur.last]
}

// Start returns the byte offset of the current segment's first byte.
func (w *Words) Start() int {
	return w.cur.first
}

// End returns the byte offset just past the current segment.
func (w *Words) End() int {
	return w.cur.last
}

// IsBoundary reports whether off is exactly a segment boundary of the
// cursor's text. Offsets 0 and len(text) are boundaries of any
// non-empty text.
func (w *Words) IsBoundary(off int) bool {
	if off < 0 || off > len(w.src) {
		return false
	}
	for !w.done && w.bounds[len(w.bounds)-1] < off {
		s, ok := w.pull()
		if !ok {
			break
		}
		w.pending = append(w.pending, s)
	}
	i := sort.SearchInts(w.bounds, off)
	return i < len(w.bounds) && w.bounds[i] == off
}

// Err returns the first error the underlying segmenter encountered.
func (w *Words) Err() error {
	return w.err
}

// Close releases the pooled scanner. The cursor must not be used
// afterwards. Close is idempotent.
func (w *Words) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.scanner.releaseIntoPool()
	w.scanner = nil
}

// pull reads one more segment from the underlying segmenter and
// records its end offset as a discovered boundary.
func (w *Words) pull() (span, bool) {
	if w.done {
		return span{}, false
	}
	if !w.scanner.segmenter.Next() {
		w.done = true
		w.err = w.scanner.segmenter.Err()
		if w.err != nil {
			tracer().Errorf("boundary: word segmenter: %v", w.err)
		}
		return span{}, false
	}
	first := w.bounds[len(w.bounds)-1]
	s := span{first: first, last: first + len(w.scanner.segmenter.Bytes())}
	w.bounds = append(w.bounds, s.last)
	return s, true
}

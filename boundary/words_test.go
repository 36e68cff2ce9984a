package boundary

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func collect(w *Words) []string {
	var segs []string
	for w.Next() {
		segs = append(segs, w.Text())
	}
	return segs
}

func TestWordSegments(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	w := NewWords("Hello World!")
	defer w.Close()
	segs := collect(w)
	want := []string{"Hello", " ", "World", "!"}
	if len(segs) != len(want) {
		t.Fatalf("expected %d segments, have %v", len(want), segs)
	}
	for i, s := range segs {
		if s != want[i] {
			t.Errorf("segment %d: expected '%s', have '%s'", i, want[i], s)
		}
	}
	if err := w.Err(); err != nil {
		t.Errorf("unexpected segmenter error: %v", err)
	}
}

func TestSegmentsPartitionText(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	inputs := []string{
		"Hello World, how are you?",
		"	for (i=0; i<5; i++)   count += i;",
		"no-break space here",
		"über Wörter",
	}
	for _, input := range inputs {
		w := NewWords(input)
		segs := collect(w)
		w.Close()
		if joined := strings.Join(segs, ""); joined != input {
			t.Errorf("segments do not partition '%s': got '%s'", input, joined)
		}
	}
}

func TestSegmentOffsets(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	w := NewWords("Hello World!")
	defer w.Close()
	pos := 0
	for w.Next() {
		if w.Start() != pos {
			t.Errorf("segment '%s' starts at %d, expected %d", w.Text(), w.Start(), pos)
		}
		if w.End() != pos+len(w.Text()) {
			t.Errorf("segment '%s' ends at %d, expected %d", w.Text(), w.End(), pos+len(w.Text()))
		}
		pos = w.End()
	}
	if pos != len("Hello World!") {
		t.Errorf("cursor stopped at %d, expected end of text", pos)
	}
}

func TestIsBoundary(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//        0    5 6    11 12
	//        Hello _ World !
	w := NewWords("Hello World!")
	defer w.Close()
	for _, off := range []int{0, 5, 6, 11, 12} {
		if !w.IsBoundary(off) {
			t.Errorf("offset %d should be a boundary", off)
		}
	}
	for _, off := range []int{1, 3, 8, 13, -1} {
		if w.IsBoundary(off) {
			t.Errorf("offset %d should not be a boundary", off)
		}
	}
}

func TestIsBoundaryDoesNotDisturbIteration(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	w := NewWords("Hello World!")
	defer w.Close()
	if !w.Next() {
		t.Fatal("expected a first segment")
	}
	// looks far ahead of the cursor
	if !w.IsBoundary(11) {
		t.Error("offset 11 should be a boundary")
	}
	segs := append([]string{w.Text()}, collect(w)...)
	if joined := strings.Join(segs, ""); joined != "Hello World!" {
		t.Errorf("read-ahead disturbed iteration: %v", segs)
	}
}

func TestEmptyText(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	w := NewWords("")
	defer w.Close()
	if w.Next() {
		t.Error("empty text must yield no segments")
	}
	if !w.IsBoundary(0) {
		t.Error("offset 0 is a boundary even for empty text")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	w := NewWords("x")
	w.Close()
	w.Close()
}

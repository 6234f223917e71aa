package layout

import (
	"reflect"
	"testing"
	"unicode/utf8"
)

// stubMetrics is a deterministic width model for tests: every rune is half
// the font size wide, bold ten percent wider. It avoids loading real fonts
// and keeps expected line breaks easy to compute by hand.
type stubMetrics struct{}

func (stubMetrics) TextWidth(text string, style FontStyle, size float64) float64 {
	w := float64(utf8.RuneCountInString(text)) * size * 0.5
	if style == FontBold {
		w *= 1.1
	}
	return w
}

func TestWrapLinesSingleLine(t *testing.T) {
	lines := wrapLines("kurzer Text", 500, FontRegular, 10, stubMetrics{})
	want := []string{"kurzer Text"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("got %v, want %v", lines, want)
	}
}

func TestWrapLinesGreedyBreaks(t *testing.T) {
	// size 10 makes every rune 5 units wide; maxWidth 50 fits 10 runes.
	lines := wrapLines("aaaa bbbb cccc", 50, FontRegular, 10, stubMetrics{})
	want := []string{"aaaa bbbb", "cccc"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("got %v, want %v", lines, want)
	}
}

func TestWrapLinesOverlongWordNotSplit(t *testing.T) {
	long := "aaaaaaaaaaaaaaaaaaaa" // 20 runes, 100 units at size 10
	lines := wrapLines("aa "+long+" bb", 50, FontRegular, 10, stubMetrics{})
	want := []string{"aa", long, "bb"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("overlong word must stay whole on its own line: got %v, want %v", lines, want)
	}
}

func TestWrapLinesEmpty(t *testing.T) {
	if lines := wrapLines("", 50, FontRegular, 10, stubMetrics{}); lines != nil {
		t.Fatalf("empty text must yield no lines, got %v", lines)
	}
}

func TestMeasureMatchesWrap(t *testing.T) {
	cases := []struct {
		text     string
		maxWidth float64
	}{
		{"", 100},
		{"ein Wort", 500},
		{"viele Worte die sich über mehrere Zeilen verteilen müssen", 80},
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", 40},
	}
	m := stubMetrics{}
	for _, tc := range cases {
		got := MeasureWrappedHeight(tc.text, tc.maxWidth, FontRegular, 10, 2, m)
		var want float64
		if tc.text == "" {
			want = 10
		} else {
			want = float64(len(wrapLines(tc.text, tc.maxWidth, FontRegular, 10, m))) * 12
		}
		if got != want {
			t.Errorf("MeasureWrappedHeight(%q) = %g, want %g", tc.text, got, want)
		}
	}
}

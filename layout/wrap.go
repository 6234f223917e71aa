package layout

import "strings"

// wrapLines splits text on single spaces and greedily packs words onto lines
// whose rendered width stays within maxWidth. A word wider than maxWidth is
// never split further; it occupies a line of its own and may overflow the
// column visually. Measurement and drawing both consume this one function so
// their line breaks are guaranteed identical.
func wrapLines(text string, maxWidth float64, style FontStyle, size float64, m FontMetrics) []string {
	if text == "" {
		return nil
	}
	words := strings.Split(text, " ")
	lines := make([]string, 0, 1)
	current := ""
	for _, word := range words {
		if current == "" {
			current = word
			continue
		}
		candidate := current + " " + word
		if m.TextWidth(candidate, style, size) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// MeasureWrappedHeight returns the vertical space the wrapped text will
// consume, without drawing anything: lines × (size+lineGap). Empty text
// reports a one-line minimum of size. Pure; used to decide whether a block
// fits on the current page before committing to draw it.
func MeasureWrappedHeight(text string, maxWidth float64, style FontStyle, size, lineGap float64, m FontMetrics) float64 {
	if text == "" {
		return size
	}
	lines := wrapLines(text, maxWidth, style, size, m)
	return float64(len(lines)) * (size + lineGap)
}

package layout

// FontMetrics measures rendered text width in layout units for one of the
// document faces at a given size. The canvas renderer implements this against
// real glyph metrics; tests substitute a deterministic stub.
type FontMetrics interface {
	TextWidth(text string, style FontStyle, size float64) float64
}

// BuildOptions carries the dependencies of the layout stage.
type BuildOptions struct {
	Metrics FontMetrics
}

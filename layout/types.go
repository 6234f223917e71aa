// Package layout computes the page layout of invoices and dunning notices:
// greedy text wrapping against real glyph metrics, manual pagination with a
// reserved footer zone, per-rate VAT aggregation and legal-form dependent
// footer formatting. The output is a Result of absolutely positioned drawing
// operations; rendering to PDF bytes is the renderer's job.
package layout

// FontStyle selects one of the two loaded document faces.
type FontStyle int

const (
	FontRegular FontStyle = iota
	FontBold
)

// Result holds the laid-out pages and document metadata.
type Result struct {
	Pages []*Page      `json:"pages"`
	Meta  DocumentMeta `json:"meta"`
}

// DocumentMeta is embedded into the PDF info dictionary.
type DocumentMeta struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Subject string `json:"subject"`
	Creator string `json:"creator"`
}

// Page is a fixed-size canvas of drawing operations. Coordinates are layout
// units (points) with the origin at the bottom-left corner, y growing upward.
type Page struct {
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Texts  []TextBox  `json:"texts"`
	Lines  []Line     `json:"lines,omitempty"`
	Images []ImageBox `json:"images,omitempty"`
}

// TextBox is a single positioned glyph run. Y is the baseline.
type TextBox struct {
	Content string    `json:"content"`
	X       float64   `json:"x"`
	Y       float64   `json:"y"`
	Style   FontStyle `json:"style"`
	Size    float64   `json:"size"`
}

// Line is a stroked segment, used for the table header rule and the footer
// separator.
type Line struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Width float64 `json:"width"`
}

// ImageBox places an image asset. Y is the top edge of the box. The renderer
// resolves Path and skips the box when the asset is missing or unreadable;
// absence never fails generation.
type ImageBox struct {
	Path   string  `json:"path"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

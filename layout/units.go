package layout

// Layout units are PDF points. The canvas renderer works in millimeters, so
// the conversion happens exactly once at the render boundary.

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// Page geometry. The first baseline of a fresh page sits at
// PageHeight-TopMargin; the footer zone below BottomMargin is reserved and
// never receives body content.
const (
	PageWidth    = 600.0
	PageHeight   = 800.0
	MarginLeft   = 50.0
	TopMargin    = 60.0
	BottomMargin = 100.0
	TableWidth   = 500.0
)

// Text metrics shared across the engine.
const (
	DefaultLineGap = 2.0

	bodyFontSize   = 11.0
	smallFontSize  = 8.0
	senderFontSize = 7.0
	metaFontSize   = 10.0
	titleFontSize  = 14.0
	headerFontSize = 12.0
	totalsFontSize = 12.0
	noticeFontSize = 9.0
)

// Vertical rhythm of the composer.
const (
	blockSpacing    = 6.0
	rowPadding      = 4.0
	headerBandSize  = 60.0
	tableHeaderDrop = 20.0
	headerRuleDrop  = 6.0
)

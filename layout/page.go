package layout

// composer owns the page list and the downward-moving y cursor. It is created
// per generation call; nothing is shared between concurrent invocations.
type composer struct {
	metrics FontMetrics
	pages   []*Page
	page    *Page
	y       float64
}

func newComposer(m FontMetrics) *composer {
	c := &composer{metrics: m}
	c.newPage()
	return c
}

func (c *composer) newPage() {
	page := &Page{Width: PageWidth, Height: PageHeight}
	c.pages = append(c.pages, page)
	c.page = page
	c.y = PageHeight - TopMargin
}

// fits reports whether a block of the given height still fits above the
// reserved footer zone.
func (c *composer) fits(height float64) bool {
	return c.y-height >= BottomMargin
}

// ensureSpace starts a new page when the block would intrude into the footer
// zone. It reports whether a page break happened so mid-table callers can
// redraw the table header.
func (c *composer) ensureSpace(height float64) bool {
	if c.fits(height) {
		return false
	}
	c.newPage()
	return true
}

// drawText emits one glyph run with its baseline at y.
func (c *composer) drawText(content string, x, y float64, style FontStyle, size float64) {
	c.page.Texts = append(c.page.Texts, TextBox{
		Content: content,
		X:       x,
		Y:       y,
		Style:   style,
		Size:    size,
	})
}

// drawTextOn is drawText targeting an explicit page; the footer pass uses it
// to revisit pages that are no longer current.
func (c *composer) drawTextOn(page *Page, content string, x, y float64, style FontStyle, size float64) {
	page.Texts = append(page.Texts, TextBox{
		Content: content,
		X:       x,
		Y:       y,
		Style:   style,
		Size:    size,
	})
}

// drawTextRight right-aligns a glyph run so it ends at xRight.
func (c *composer) drawTextRight(content string, xRight, y float64, style FontStyle, size float64) {
	width := c.metrics.TextWidth(content, style, size)
	c.drawText(content, xRight-width, y, style, size)
}

func (c *composer) drawLine(x1, y1, x2, y2, width float64) {
	c.drawLineOn(c.page, x1, y1, x2, y2, width)
}

func (c *composer) drawLineOn(page *Page, x1, y1, x2, y2, width float64) {
	page.Lines = append(page.Lines, Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width})
}

func (c *composer) drawImage(path string, x, yTop, width, height float64) {
	c.page.Images = append(c.page.Images, ImageBox{Path: path, X: x, Y: yTop, Width: width, Height: height})
}

// drawWrappedText wraps content into maxWidth and emits one run per line,
// the first baseline at yTop, each following line one line height lower.
// Returns the total height consumed so the caller can advance its cursor.
// Line breaks are identical to MeasureWrappedHeight by construction.
func (c *composer) drawWrappedText(content string, x, yTop, maxWidth float64, style FontStyle, size, lineGap float64) float64 {
	if content == "" {
		return size
	}
	lineHeight := size + lineGap
	lines := wrapLines(content, maxWidth, style, size, c.metrics)
	for i, line := range lines {
		c.drawText(line, x, yTop-float64(i)*lineHeight, style, size)
	}
	return float64(len(lines)) * lineHeight
}

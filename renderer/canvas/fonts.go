package canvasrenderer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tdewolff/canvas"

	"github.com/fakturo/druckwerk/layout"
)

// Font file names expected inside Options.FontDir.
const (
	regularFontFile = "Inter-Regular.ttf"
	boldFontFile    = "Inter-Bold.ttf"
)

// loadFamily reads both document faces from dir into one canvas font family.
// Missing or unreadable font files are a startup error; the engine cannot
// measure text without them.
func loadFamily(dir string) (*canvas.FontFamily, error) {
	family := canvas.NewFontFamily("druckwerk")
	for _, f := range []struct {
		file  string
		style canvas.FontStyle
	}{
		{regularFontFile, canvas.FontRegular},
		{boldFontFile, canvas.FontBold},
	} {
		path := filepath.Join(dir, f.file)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("canvas: read font %s: %w", path, err)
		}
		if err := family.LoadFont(data, 0, f.style); err != nil {
			return nil, fmt.Errorf("canvas: load font %s: %w", path, err)
		}
	}
	return family, nil
}

// face builds a font face for one of the two document styles. The size is in
// points; canvas faces measure in millimeters, converted at the boundary.
func (r *Renderer) face(style layout.FontStyle, size float64) *canvas.FontFace {
	fontStyle := canvas.FontRegular
	if style == layout.FontBold {
		fontStyle = canvas.FontBold
	}
	return r.family.Face(size, canvas.Black, fontStyle, canvas.FontNormal)
}

// TextWidth implements layout.FontMetrics against the loaded glyph tables.
func (r *Renderer) TextWidth(text string, style layout.FontStyle, size float64) float64 {
	return r.face(style, size).TextWidth(text) * layout.MmToPt
}

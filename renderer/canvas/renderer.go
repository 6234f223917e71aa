// Package canvasrenderer renders layout results to PDF bytes via
// github.com/tdewolff/canvas. It also provides the glyph metrics the layout
// stage measures with, so measured and rendered widths always agree.
package canvasrenderer

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/fakturo/druckwerk/layout"
	"github.com/fakturo/druckwerk/renderer"
)

// Renderer draws layout results via github.com/tdewolff/canvas.
type Renderer struct {
	assetDir string
	family   *canvas.FontFamily
	log      zerolog.Logger
}

var (
	_ renderer.Renderer  = (*Renderer)(nil)
	_ layout.FontMetrics = (*Renderer)(nil)
)

// Options configures the canvas renderer.
type Options struct {
	// FontDir holds the regular and bold document faces.
	FontDir string
	// AssetDir is the root for resolving relative image paths, e.g. the
	// company logo. Empty means only absolute paths resolve.
	AssetDir string
	// Logger defaults to the global logger.
	Logger *zerolog.Logger
}

// New creates a renderer with both document faces loaded eagerly. A missing
// font is an error here rather than a failure halfway through rendering.
func New(opts Options) (*Renderer, error) {
	family, err := loadFamily(opts.FontDir)
	if err != nil {
		return nil, err
	}
	logger := zlog.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Renderer{
		assetDir: opts.AssetDir,
		family:   family,
		log:      logger.With().Str("component", "renderer").Logger(),
	}, nil
}

// Render renders the result into a PDF byte slice. Layout coordinates are
// points with a bottom-left origin; canvas works in millimeters with the same
// origin, so rendering is a pure scale.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil || len(result.Pages) == 0 {
		return nil, fmt.Errorf("canvas: nothing to render")
	}

	var buf bytes.Buffer
	first := result.Pages[0]
	writer := pdf.New(&buf, first.Width*layout.PtToMm, first.Height*layout.PtToMm, nil)
	writer.SetInfo(result.Meta.Title, result.Meta.Subject, "", result.Meta.Author, result.Meta.Creator)

	for i, page := range result.Pages {
		if i > 0 {
			writer.NewPage(page.Width*layout.PtToMm, page.Height*layout.PtToMm)
		}
		c := canvas.New(page.Width*layout.PtToMm, page.Height*layout.PtToMm)
		ctx := canvas.NewContext(c)
		r.drawPage(ctx, page)
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("canvas: write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawPage(ctx *canvas.Context, page *layout.Page) {
	for _, ln := range page.Lines {
		width := ln.Width
		if width <= 0 {
			width = 0.5
		}
		ctx.SetStrokeColor(canvas.Black)
		ctx.SetStrokeWidth(width * layout.PtToMm)
		p := &canvas.Path{}
		p.MoveTo(0, 0)
		p.LineTo((ln.X2-ln.X1)*layout.PtToMm, (ln.Y2-ln.Y1)*layout.PtToMm)
		ctx.DrawPath(ln.X1*layout.PtToMm, ln.Y1*layout.PtToMm, p)
	}

	for _, tb := range page.Texts {
		line := canvas.NewTextLine(r.face(tb.Style, tb.Size), tb.Content, canvas.Left)
		ctx.DrawText(tb.X*layout.PtToMm, tb.Y*layout.PtToMm, line)
	}

	for _, box := range page.Images {
		r.drawImage(ctx, box)
	}
}

// drawImage places an image asset. A missing or undecodable asset is logged
// and skipped; a document must still render when e.g. the logo file is gone.
func (r *Renderer) drawImage(ctx *canvas.Context, box layout.ImageBox) {
	path := box.Path
	if path == "" {
		return
	}
	if !filepath.IsAbs(path) {
		if r.assetDir == "" {
			r.log.Debug().Str("path", path).Msg("skipping image, no asset dir configured")
			return
		}
		path = filepath.Join(r.assetDir, path)
	}

	file, err := os.Open(path)
	if err != nil {
		r.log.Debug().Err(err).Str("path", path).Msg("skipping unreadable image")
		return
	}
	img, _, err := image.Decode(file)
	file.Close()
	if err != nil {
		r.log.Debug().Err(err).Str("path", path).Msg("skipping undecodable image")
		return
	}

	widthMm := box.Width * layout.PtToMm
	dpmm := float64(img.Bounds().Dx()) / widthMm
	if dpmm <= 0 {
		dpmm = 1
	}
	ctx.DrawImage(box.X*layout.PtToMm, (box.Y-box.Height)*layout.PtToMm, img, canvas.DPMM(dpmm))
}

// Package renderer defines the backend contract for turning a laid-out
// document into final output bytes.
package renderer

import "github.com/fakturo/druckwerk/layout"

// Renderer turns a layout result into a rendered document.
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
}

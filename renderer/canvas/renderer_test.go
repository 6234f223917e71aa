package canvasrenderer

import (
	"strings"
	"testing"
)

func TestNewRequiresFonts(t *testing.T) {
	_, err := New(Options{FontDir: t.TempDir()})
	if err == nil {
		t.Fatal("expected an error for a font dir without font files")
	}
	if !strings.Contains(err.Error(), "read font") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRenderRejectsEmptyResult(t *testing.T) {
	r := &Renderer{}
	if _, err := r.Render(nil); err == nil {
		t.Error("expected an error for a nil result")
	}
}

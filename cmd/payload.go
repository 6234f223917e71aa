package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fakturo/druckwerk/document"
	"github.com/fakturo/druckwerk/internal/config"
	"github.com/fakturo/druckwerk/layout"
	canvasrenderer "github.com/fakturo/druckwerk/renderer/canvas"
)

// payload is the JSON input of the rechnung and mahnung commands.
type payload struct {
	Invoice  *document.Invoice        `json:"invoice"`
	Company  *document.Company        `json:"company"`
	Reminder *document.ReminderConfig `json:"reminder,omitempty"`
}

func loadPayload(path string) (*payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse payload %s: %w", path, err)
	}
	if p.Invoice == nil {
		return nil, fmt.Errorf("payload %s: missing \"invoice\" section", path)
	}
	if p.Company == nil {
		return nil, fmt.Errorf("payload %s: missing \"company\" section", path)
	}
	return &p, nil
}

func newRenderer(cfg *config.Config) (*canvasrenderer.Renderer, error) {
	return canvasrenderer.New(canvasrenderer.Options{
		FontDir:  cfg.FontDir,
		AssetDir: cfg.AssetDir,
	})
}

// writeOutput writes the rendered PDF, or the layout debug JSON when
// debugLayout is set.
func writeOutput(outPath string, pdfBytes []byte, result *layout.Result, debugLayout bool) error {
	if debugLayout {
		file, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer file.Close()
		return layout.WriteDebugJSON(file, result)
	}
	if err := os.WriteFile(outPath, pdfBytes, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

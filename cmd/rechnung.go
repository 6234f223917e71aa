package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fakturo/druckwerk/internal/config"
	"github.com/fakturo/druckwerk/internal/logger"
	"github.com/fakturo/druckwerk/layout"
)

var rechnungCmd = &cobra.Command{
	Use:   "rechnung [payload.json]",
	Short: "Render an invoice PDF from a JSON payload",
	Long: `Render an invoice (Rechnung) as PDF.

The payload must contain an "invoice" and a "company" section. Unit prices
are gross; when the company is VAT-registered the document shows the net
subtotal and a per-rate VAT breakdown, otherwise a single total with the
§ 19 UStG small-business notice.

Required environment variables:
  DRUCKWERK_FONT_DIR - Directory with Inter-Regular.ttf and Inter-Bold.ttf`,
	Example: `  # Render to rechnung.pdf
  druckwerk rechnung payload.json -o rechnung.pdf

  # Dump the layout instead of rendering, for diffing
  druckwerk rechnung payload.json -o layout.json --debug-layout`,
	Args: cobra.ExactArgs(1),
	RunE: runRechnung,
}

var (
	rechnungOutput      string
	rechnungDebugLayout bool
)

func init() {
	rechnungCmd.Flags().StringVarP(&rechnungOutput, "output", "o", "rechnung.pdf", "Output file path")
	rechnungCmd.Flags().BoolVar(&rechnungDebugLayout, "debug-layout", false, "Write the layout as JSON instead of rendering a PDF")
	rootCmd.AddCommand(rechnungCmd)
}

func runRechnung(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("rechnung")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	p, err := loadPayload(args[0])
	if err != nil {
		return err
	}
	r, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	result, err := layout.BuildInvoice(p.Invoice, p.Company, layout.BuildOptions{Metrics: r})
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	var pdfBytes []byte
	if !rechnungDebugLayout {
		if pdfBytes, err = r.Render(result); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	if err := writeOutput(rechnungOutput, pdfBytes, result, rechnungDebugLayout); err != nil {
		return err
	}

	log.Info().
		Str("invoice", p.Invoice.InvoiceNumber).
		Int("pages", len(result.Pages)).
		Str("output", rechnungOutput).
		Msg("invoice rendered")
	return nil
}

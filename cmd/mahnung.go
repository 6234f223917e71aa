package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fakturo/druckwerk/document"
	"github.com/fakturo/druckwerk/internal/config"
	"github.com/fakturo/druckwerk/internal/logger"
	"github.com/fakturo/druckwerk/layout"
)

var mahnungCmd = &cobra.Command{
	Use:   "mahnung [payload.json]",
	Short: "Render a dunning notice PDF from a JSON payload",
	Long: `Render a dunning notice for an unpaid invoice.

The escalation level selects the document: 1 is a friendly payment reminder
(Zahlungserinnerung), 2 the first formal notice (1. Mahnung) and 3 the final
notice (2. Mahnung) including a legal-action warning. The notice repeats the
invoice's item table and adds the dunning fee to the amount due.

The level, fee and payment deadline come from the payload's "reminder"
section; the flags below override individual values.`,
	Example: `  # Render the notice configured in the payload
  druckwerk mahnung payload.json -o mahnung.pdf

  # Escalate to the final notice with a 10 € fee
  druckwerk mahnung payload.json --level 3 --fee 10`,
	Args: cobra.ExactArgs(1),
	RunE: runMahnung,
}

var (
	mahnungOutput      string
	mahnungDebugLayout bool
	mahnungLevel       int
	mahnungFee         float64
	mahnungDays        int
)

func init() {
	mahnungCmd.Flags().StringVarP(&mahnungOutput, "output", "o", "mahnung.pdf", "Output file path")
	mahnungCmd.Flags().BoolVar(&mahnungDebugLayout, "debug-layout", false, "Write the layout as JSON instead of rendering a PDF")
	mahnungCmd.Flags().IntVar(&mahnungLevel, "level", 0, "Escalation level 1-3, overrides the payload")
	mahnungCmd.Flags().Float64Var(&mahnungFee, "fee", -1, "Dunning fee in euro, overrides the payload")
	mahnungCmd.Flags().IntVar(&mahnungDays, "days", 0, "Payment deadline in days, overrides the payload")
	rootCmd.AddCommand(mahnungCmd)
}

func runMahnung(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("mahnung")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	p, err := loadPayload(args[0])
	if err != nil {
		return err
	}

	reminder := p.Reminder
	if reminder == nil {
		reminder = &document.ReminderConfig{
			Level:        document.LevelZahlungserinnerung,
			DeadlineDays: 7,
		}
	}
	if mahnungLevel != 0 {
		reminder.Level = document.ReminderLevel(mahnungLevel)
	}
	if mahnungFee >= 0 {
		reminder.Mahngebuehr = mahnungFee
	}
	if mahnungDays != 0 {
		reminder.DeadlineDays = mahnungDays
	}

	r, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	result, err := layout.BuildReminder(p.Invoice, p.Company, reminder, layout.BuildOptions{Metrics: r})
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	var pdfBytes []byte
	if !mahnungDebugLayout {
		if pdfBytes, err = r.Render(result); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	if err := writeOutput(mahnungOutput, pdfBytes, result, mahnungDebugLayout); err != nil {
		return err
	}

	log.Info().
		Str("invoice", p.Invoice.InvoiceNumber).
		Int("level", int(reminder.Level)).
		Int("pages", len(result.Pages)).
		Str("output", mahnungOutput).
		Msg("dunning notice rendered")
	return nil
}

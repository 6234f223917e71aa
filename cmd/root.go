// Package cmd wires the druckwerk CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fakturo/druckwerk/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "druckwerk",
	Short: "druckwerk - PDF generation for German invoices and dunning notices",
	Long: `druckwerk renders invoices (Rechnungen) and dunning notices
(Zahlungserinnerungen, Mahnungen) as PDF documents.

Input is a JSON payload holding the invoice, the issuing company snapshot
and, for dunning notices, the reminder configuration. Layout, VAT breakdown
and the legal-form dependent footer are derived from the payload alone, so
the same payload always produces the same document.`,
	Version: version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log := logger.WithComponent("cmd")
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

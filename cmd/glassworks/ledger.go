package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/document"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/dates"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Production register",
}

var ledgerExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the production register for a date range",
	Example: `  glassworks ledger export --from 01/10/2026 --to 15/10/2026
  glassworks ledger export --from 01/10/2026 --to 15/10/2026 --format xlsx -o october.xlsx`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rawFrom, _ := cmd.Flags().GetString("from")
		rawTo, _ := cmd.Flags().GetString("to")
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		from, err := dates.ParseField("from", rawFrom)
		if err != nil {
			return fmt.Errorf("--from must be DD/MM/YYYY: %w", err)
		}
		to, err := dates.ParseField("to", rawTo)
		if err != nil {
			return fmt.Errorf("--to must be DD/MM/YYYY: %w", err)
		}
		format = strings.ToLower(strings.TrimSpace(format))
		if format != "pdf" && format != "xlsx" {
			return fmt.Errorf("--format must be pdf or xlsx, got %q", format)
		}

		var docs *document.Service
		return runOnce(cmd.Context(), func(ctx context.Context) error {
			var (
				doc document.Document
				err error
			)
			if format == "xlsx" {
				doc, err = docs.LedgerXLSX(ctx, from, to)
			} else {
				doc, err = docs.LedgerPDF(ctx, from, to)
			}
			if err != nil {
				return err
			}
			path, err := writeDocument(ctx, docs, doc, output)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		}, domains(), fx.Populate(&docs))
	},
}

func init() {
	ledgerExportCmd.Flags().String("from", "", "first day, DD/MM/YYYY")
	ledgerExportCmd.Flags().String("to", "", "last day, DD/MM/YYYY")
	ledgerExportCmd.Flags().String("format", "pdf", "pdf or xlsx")
	ledgerExportCmd.Flags().StringP("output", "o", "", "write to this path instead of the document directory")
	_ = ledgerExportCmd.MarkFlagRequired("from")
	_ = ledgerExportCmd.MarkFlagRequired("to")
	ledgerCmd.AddCommand(ledgerExportCmd)
}

// writeDocument saves doc at output, or under the document directory when
// output is blank, and returns where it went.
func writeDocument(ctx context.Context, docs *document.Service, doc document.Document, output string) (string, error) {
	if strings.TrimSpace(output) == "" {
		return docs.Save(ctx, doc)
	}
	if err := os.WriteFile(output, doc.Body, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", output, err)
	}
	return output, nil
}

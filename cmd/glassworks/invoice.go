package main

import (
	"context"
	"fmt"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/document"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Invoice documents",
}

var invoicePDFCmd = &cobra.Command{
	Use:   "pdf <invoice-number>",
	Short: "Render a committed invoice as PDF",
	Example: `  glassworks invoice pdf GTI-00012
  glassworks invoice pdf GTI-00012 -o /tmp/gti-00012.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		var docs *document.Service
		return runOnce(cmd.Context(), func(ctx context.Context) error {
			doc, err := docs.InvoicePDF(ctx, args[0])
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
	invoicePDFCmd.Flags().StringP("output", "o", "", "write to this path instead of the document directory")
	invoiceCmd.AddCommand(invoicePDFCmd)
}

// Command glassworks runs the shop's back office: the HTTP API plus
// one-shot commands for migrations and document exports.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "glassworks",
	Short: "Back office for a glass toughening unit",
	Long: `glassworks keeps customers, products, stock, invoices, payments,
expenses, workers and the production register of a glass processing
shop, and renders invoices and reports as PDF or XLSX.

Configuration comes from glassworks.yaml, .env and GLASSWORKS_* variables.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, invoiceCmd, ledgerCmd, versionCmd)
}

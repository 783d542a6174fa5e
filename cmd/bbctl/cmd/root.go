// Package cmd provides CLI commands for bbctl.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var companyFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bbctl",
	Short: "Offline tooling for trip expense documents",
	Long: `bbctl renders and delivers trip expense documents without the HTTP
service. It works from a form snapshot saved as JSON.

Example:
  bbctl render --in skjema.json --out rekning.pdf
  bbctl send rekning.pdf --relay https://example.no/send.php`,
}

// Execute runs the root command. Called once from main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&companyFile, "company", "company.yaml", "company profile (YAML)")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(versionCmd)
}

func exitOnError(err error, msg string) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"bluebook/internal/mailer"

	"github.com/spf13/cobra"
)

var sendRelayURL string

// sendCmd submits a finished PDF to the mail relay.
var sendCmd = &cobra.Command{
	Use:   "send <file.pdf>",
	Short: "Submit a rendered PDF to the mail relay",
	Args:  cobra.ExactArgs(1),
	Run:   runSend,
}

func init() {
	sendCmd.Flags().StringVar(&sendRelayURL, "relay", os.Getenv("MAIL_RELAY_URL"), "relay endpoint URL")
}

func runSend(cmd *cobra.Command, args []string) {
	path := args[0]
	data, err := os.ReadFile(path)
	exitOnError(err, "could not read PDF")

	relay := mailer.Relay{URL: sendRelayURL}
	exitOnError(relay.Send(filepath.Base(path), data), "relay rejected the document")

	fmt.Printf("sent %s\n", filepath.Base(path))
}

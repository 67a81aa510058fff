package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Truncate the chain down to the genesis block.",
	Run:   clearRun,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func clearRun(cmd *cobra.Command, args []string) {
	if err := post("/v1/chain/clear", struct{}{}); err != nil {
		log.Fatal(err)
	}
}

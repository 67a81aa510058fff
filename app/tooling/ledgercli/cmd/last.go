package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Print the last block in the chain.",
	Run:   lastRun,
}

func init() {
	rootCmd.AddCommand(lastCmd)
}

func lastRun(cmd *cobra.Command, args []string) {
	if err := get("/v1/blocks/last"); err != nil {
		log.Fatal(err)
	}
}

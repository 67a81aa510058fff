package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var mineCmd = &cobra.Command{
	Use:   "mine [data]",
	Short: "Mine a new block carrying the specified data.",
	Args:  cobra.ExactArgs(1),
	Run:   mineRun,
}

func init() {
	rootCmd.AddCommand(mineCmd)
}

func mineRun(cmd *cobra.Command, args []string) {
	payload := struct {
		Data string `json:"data"`
	}{
		Data: args[0],
	}

	if err := post("/v1/blocks/mine", payload); err != nil {
		log.Fatal(err)
	}
}

package cmd

import (
	"log"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [proof]",
	Short: "Delete the block with the specified proof and re-seal the chain.",
	Args:  cobra.ExactArgs(1),
	Run:   deleteRun,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func deleteRun(cmd *cobra.Command, args []string) {
	proof, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		log.Fatal(err)
	}

	payload := struct {
		Proof uint64 `json:"proof"`
	}{
		Proof: proof,
	}

	if err := post("/v1/blocks/delete", payload); err != nil {
		log.Fatal(err)
	}
}

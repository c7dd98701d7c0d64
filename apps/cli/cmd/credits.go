package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var creditsCmd = &cobra.Command{
	Use:   "credits",
	Short: "Show project credits",
	Args:  exactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "curlparse version: %s\n", version)
		fmt.Fprintln(cmd.OutOrStdout(), "Author: ao.ruban@ukma.edu.ua")
		fmt.Fprintln(cmd.OutOrStdout(), "Description: A parser that takes a curl command as plain text input, parses it, and extracts structured information from it.")
	},
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/officepdf/pkg/types"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported input formats",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Supported input formats:")
		for _, f := range types.Formats() {
			fmt.Printf("  .%-5s %s\n", f, f.Description())
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/officepdf/internal/session"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversion batches",
	Long: `History lists the most recent batch runs from the session journal:
when each batch started, where its PDFs went, and how many files
converted, failed, or were cancelled. Use --files to also list the
per-file outcomes.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 10, "number of batches to show")
	historyCmd.Flags().Bool("files", false, "list per-file outcomes for each batch")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	showFiles, _ := cmd.Flags().GetBool("files")

	store, err := session.Open(sessionPath())
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	batches, err := store.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if len(batches) == 0 {
		fmt.Println("No conversion batches recorded yet.")
		return nil
	}

	for _, b := range batches {
		dest := b.OutputDir
		if dest == "" {
			dest = "(source directories)"
		}
		fmt.Fprintf(os.Stdout, "%s  %d converted, %d failed, %d cancelled  ->  %s\n",
			b.StartedAt.Local().Format("2006-01-02 15:04"),
			b.Converted, b.Failed, b.Cancelled, dest)

		if !showFiles {
			continue
		}
		results, err := store.ResultsFor(ctx, b.ID)
		if err != nil {
			return err
		}
		for _, r := range results {
			line := fmt.Sprintf("    %-9s %s", r.Status, filepath.Base(r.Source))
			if r.Error != "" {
				line += " (" + r.Error + ")"
			}
			fmt.Fprintln(os.Stdout, line)
		}
	}
	return nil
}

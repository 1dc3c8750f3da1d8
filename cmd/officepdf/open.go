// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/pdiddy/officepdf/internal/session"
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the last-used output directory in the file manager",
	RunE:  runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	store, err := session.Open(sessionPath())
	if err != nil {
		return err
	}
	defer store.Close()

	dir, err := store.LastOutputDir(context.Background())
	if err != nil {
		return err
	}
	if dir == "" {
		return fmt.Errorf("no output directory remembered yet; convert something first")
	}

	name, openerArgs := openerCommand(runtime.GOOS, dir)
	if err := exec.Command(name, openerArgs...).Start(); err != nil {
		return fmt.Errorf("opening %s: %w", dir, err)
	}
	fmt.Println("Opened", dir)
	return nil
}

// openerCommand returns the platform file-manager invocation for dir.
func openerCommand(goos, dir string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{dir}
	case "windows":
		return "explorer", []string{dir}
	default:
		return "xdg-open", []string{dir}
	}
}

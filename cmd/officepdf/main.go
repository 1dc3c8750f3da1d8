// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the officepdf CLI, the command-line
// shell over the batch conversion core.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the officepdf CLI.
var rootCmd = &cobra.Command{
	Use:   "officepdf",
	Short: "Convert Office documents to PDF with headless LibreOffice",
	Long: `officepdf converts Office documents (Word, Excel, PowerPoint, and their
OpenDocument equivalents) to PDF by driving LibreOffice in headless mode.
No conversion logic lives here; LibreOffice does the rendering.

By default each PDF is written next to its source file. Choose a single
output directory with --outdir, or reuse the remembered one with --last.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./officepdf.yaml or ~/.config/officepdf/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("officepdf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "officepdf"))
		}
	}

	viper.SetEnvPrefix("OFFICEPDF")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// sessionPath returns the session database location: the configured path,
// or session.db in the per-user config directory.
func sessionPath() string {
	if p := viper.GetString("session.path"); p != "" {
		return p
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ".officepdf-session.db"
	}
	return filepath.Join(base, "officepdf", "session.db")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

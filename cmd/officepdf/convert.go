package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/officepdf/internal/batch"
	"github.com/pdiddy/officepdf/internal/engine"
	"github.com/pdiddy/officepdf/internal/selector"
	"github.com/pdiddy/officepdf/internal/session"
	"github.com/pdiddy/officepdf/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert Office documents to PDF",
	Long: `Convert renders each given document to PDF through headless LibreOffice.
Unsupported, missing, and duplicate paths are skipped with a warning; a
file that fails conversion does not stop the rest of the batch.

Each PDF is written next to its source file unless --outdir names a single
destination for the whole batch. Ctrl-C cancels the batch: queued files
are skipped and the running conversion is terminated.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("outdir", "o", "", "output directory for all PDFs (default: each file's own directory)")
	convertCmd.Flags().Bool("last", false, "reuse the remembered output directory")
	convertCmd.Flags().Int("workers", 0, "number of parallel conversions (default 1)")
	convertCmd.Flags().Duration("timeout", 0, "per-file conversion timeout (default none)")
	convertCmd.Flags().String("report", "", "write a YAML batch report to this path")
	convertCmd.Flags().String("engine-path", "", "path to the soffice binary (default: auto-detect)")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more documents to convert")
	}

	outDir, _ := cmd.Flags().GetString("outdir")
	if outDir == "" {
		outDir = viper.GetString("convert.output_dir")
	}
	workers, _ := cmd.Flags().GetInt("workers")
	if workers == 0 {
		workers = viper.GetInt("convert.workers")
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("convert.timeout")
	}
	enginePath, _ := cmd.Flags().GetString("engine-path")
	if enginePath == "" {
		enginePath = viper.GetString("engine.path")
	}
	reportPath, _ := cmd.Flags().GetString("report")
	useLast, _ := cmd.Flags().GetBool("last")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The session store is best-effort: a broken store disables memory,
	// never the conversion itself.
	store, storeErr := session.Open(sessionPath())
	if storeErr != nil {
		fmt.Fprintf(os.Stderr, "warning: session store unavailable: %v\n", storeErr)
	} else {
		defer store.Close()
	}

	if useLast && outDir == "" {
		if store == nil {
			return fmt.Errorf("--last needs the session store, which is unavailable")
		}
		last, err := store.LastOutputDir(ctx)
		if err != nil {
			return err
		}
		if last == "" {
			return fmt.Errorf("no remembered output directory yet; run once with --outdir")
		}
		outDir = last
	}

	files, warnings := selector.Select(args)
	for _, warn := range warnings {
		fmt.Fprintf(os.Stderr, "skipped: %s\n", warn)
	}
	if len(files) == 0 {
		fmt.Println("No convertible files selected.")
		return nil
	}

	eng, err := engine.NewLibreOffice(types.EngineConfig{Path: enginePath})
	if err != nil {
		return err
	}

	orch := &batch.Orchestrator{
		Engine:   eng,
		Resolver: batch.NewResolver(outDir),
		Workers:  workers,
		Timeout:  timeout,
	}

	started := time.Now().UTC()
	summary, err := orch.Run(ctx, files, os.Stdout)
	if err != nil {
		return err
	}

	if reportPath != "" {
		report := batch.NewReport(eng.Name(), outDir, summary)
		if err := report.Write(reportPath); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", reportPath)
	}

	if store != nil {
		// Journaling is bookkeeping; failures only warn.
		if _, err := store.RecordBatch(context.Background(), started, outDir, summary); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not journal batch: %v\n", err)
		}
		if dir := lastUsedDir(outDir, summary); dir != "" {
			if err := store.SetLastOutputDir(context.Background(), dir); err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not remember output directory: %v\n", err)
			}
		}
	}

	if summary.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", summary.Failed)
	}
	return nil
}

// lastUsedDir picks the directory to remember for `--last` and `open`: the
// chosen batch directory, or the directory of the most recent success.
func lastUsedDir(outDir string, summary types.BatchSummary) string {
	if outDir != "" {
		return outDir
	}
	for i := len(summary.Results) - 1; i >= 0; i-- {
		if summary.Results[i].Status == types.StatusDone {
			return filepath.Dir(summary.Results[i].PDFPath)
		}
	}
	return ""
}

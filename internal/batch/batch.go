// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch orchestrates conversion of a selected file set. It owns
// the per-file loop: output resolution, engine invocation, partial-failure
// isolation, and the ordered summary.
package batch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/pdiddy/officepdf/internal/engine"
	"github.com/pdiddy/officepdf/pkg/types"
)

// Orchestrator runs a batch of conversions through one engine.
type Orchestrator struct {
	// Engine performs the per-file conversion.
	Engine engine.Engine

	// Resolver decides where each PDF is written.
	Resolver *Resolver

	// Workers is the number of conversions run concurrently. Values <= 1
	// mean sequential processing.
	Workers int

	// Timeout bounds each conversion. Zero disables the bound.
	Timeout time.Duration
}

// Run converts files in order, writing per-file status lines and a summary
// to w. A file that fails conversion never stops the rest of the batch.
// Run returns an error only for batch-wide preconditions: the engine being
// unavailable or the output directory being uncreatable; in that case no
// per-file results are produced. Cancelling ctx skips not-yet-started
// files and terminates the in-flight engine process.
//
// Results in the returned summary are always in input order, regardless of
// the number of workers.
func (o *Orchestrator) Run(ctx context.Context, files []types.InputFile, w io.Writer) (types.BatchSummary, error) {
	if !o.Engine.Available() {
		return types.BatchSummary{}, fmt.Errorf("%s is not runnable: %w", o.Engine.Name(), engine.ErrEngineNotFound)
	}
	if err := o.Resolver.EnsureDir(); err != nil {
		return types.BatchSummary{}, err
	}

	results := make([]types.ConversionResult, len(files))
	if o.Workers > 1 && len(files) > 1 {
		o.runParallel(ctx, files, results, w)
	} else {
		o.runSequential(ctx, files, results, w)
	}

	summary := types.BatchSummary{Results: results}
	for _, r := range results {
		switch r.Status {
		case types.StatusDone:
			summary.Succeeded++
		case types.StatusCancelled:
			summary.Cancelled++
		default:
			summary.Failed++
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed, %d cancelled (total: %d)\n",
		summary.Succeeded, summary.Failed, summary.Cancelled, summary.Total())
	return summary, nil
}

func (o *Orchestrator) runSequential(ctx context.Context, files []types.InputFile, results []types.ConversionResult, w io.Writer) {
	for i, f := range files {
		if ctx.Err() != nil {
			results[i] = cancelledResult(f, ctx.Err())
		} else {
			results[i] = o.convertOne(ctx, f)
		}
		printResult(w, results[i])
	}
}

// runParallel fans the files out over a bounded worker set. Each worker
// writes into its input slot, so the final report keeps input order even
// when completion order differs. Status lines are printed once all jobs
// have settled.
func (o *Orchestrator) runParallel(ctx context.Context, files []types.InputFile, results []types.ConversionResult, w io.Writer) {
	workers := o.Workers
	if workers > len(files) {
		workers = len(files)
	}

	jobs := make(chan int, len(files))
	for i := range files {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for n := 0; n < workers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					results[i] = cancelledResult(files[i], ctx.Err())
					continue
				}
				results[i] = o.convertOne(ctx, files[i])
			}
		}()
	}
	wg.Wait()

	for _, r := range results {
		printResult(w, r)
	}
}

// convertOne invokes the engine for a single file, applying the per-file
// timeout. A parent-context cancellation is reported as cancelled; a
// timeout or engine error as failed.
func (o *Orchestrator) convertOne(parent context.Context, f types.InputFile) types.ConversionResult {
	ctx := parent
	if o.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(parent, o.Timeout)
		defer cancel()
	}

	pdf, err := o.Engine.Convert(ctx, f.Path, o.Resolver.Resolve(f.Path))
	if err != nil {
		if parent.Err() != nil {
			return cancelledResult(f, parent.Err())
		}
		return types.ConversionResult{Input: f, Status: types.StatusFailed, Err: err}
	}
	return types.ConversionResult{Input: f, Status: types.StatusDone, PDFPath: pdf}
}

func cancelledResult(f types.InputFile, err error) types.ConversionResult {
	return types.ConversionResult{Input: f, Status: types.StatusCancelled, Err: err}
}

func printResult(w io.Writer, r types.ConversionResult) {
	base := filepath.Base(r.Input.Path)
	switch r.Status {
	case types.StatusDone:
		fmt.Fprintf(w, "converted: %s -> %s\n", base, r.PDFPath)
	case types.StatusCancelled:
		fmt.Fprintf(w, "cancelled: %s\n", base)
	default:
		fmt.Fprintf(w, "failed:    %s (%v)\n", base, r.Err)
	}
}

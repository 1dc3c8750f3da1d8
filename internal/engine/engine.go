// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine locates and drives the external document-conversion
// engine. The engine is an opaque binary invoked per file; no conversion
// logic lives here.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Engine converts one document to PDF per call. Implementations wrap an
// external headless conversion tool.
type Engine interface {
	// Name returns the engine name (e.g. "libreoffice").
	Name() string

	// Available reports whether the engine binary can be executed.
	Available() bool

	// Convert renders the document at srcPath to a PDF in outDir and
	// returns the path of the produced file. The call blocks until the
	// engine process exits; cancelling ctx terminates the process.
	Convert(ctx context.Context, srcPath, outDir string) (string, error)
}

// ErrEngineNotFound reports that no conversion engine binary could be
// located. This is fatal to a whole batch, not to a single file.
var ErrEngineNotFound = errors.New("conversion engine not found")

// ErrOutputMissing reports an engine run that exited cleanly but did not
// produce the expected PDF.
var ErrOutputMissing = errors.New("engine produced no output file")

// RunError describes an engine process that exited with failure for one
// source file. Output carries the captured diagnostic text.
type RunError struct {
	Engine string
	Src    string
	Output string
	Err    error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s failed converting %s: %v", e.Engine, e.Src, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// executor abstracts command execution and binary probing for testing.
type executor interface {
	LookPath(file string) (string, error)
	FileExists(path string) bool
	RunCombined(ctx context.Context, name string, args ...string) ([]byte, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (o *osExecutor) RunCombined(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

var defaultExec executor = &osExecutor{}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolver computes the output directory for each input file. With a
// user-chosen directory every PDF in the batch lands there; without one,
// each PDF lands next to its source file.
type Resolver struct {
	userDir string
}

// NewResolver returns a Resolver for the given user-chosen output
// directory. An empty dir means outputs follow their sources.
func NewResolver(dir string) *Resolver {
	return &Resolver{userDir: dir}
}

// Dir returns the batch-wide output directory, or "" when outputs follow
// their sources.
func (r *Resolver) Dir() string {
	return r.userDir
}

// EnsureDir creates the user-chosen output directory if one was set.
// Failure here aborts the batch before any file is processed.
func (r *Resolver) EnsureDir() error {
	if r.userDir == "" {
		return nil
	}
	if err := os.MkdirAll(r.userDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", r.userDir, err)
	}
	return nil
}

// Resolve returns the output directory for the file at srcPath.
func (r *Resolver) Resolve(srcPath string) string {
	if r.userDir != "" {
		return r.userDir
	}
	return filepath.Dir(srcPath)
}

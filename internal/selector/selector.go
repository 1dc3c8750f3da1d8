// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package selector validates candidate paths into a conversion batch.
// Candidates arrive from the command line (or any path list the caller
// collected); unsupported, missing, and duplicate paths never reach the
// conversion stage.
package selector

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/officepdf/pkg/types"
)

// Warning describes a candidate path that was excluded from the batch.
type Warning struct {
	// Path is the candidate as the caller supplied it.
	Path string

	// Reason explains the exclusion.
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Path, w.Reason)
}

// Select filters candidate paths down to convertible input files. It keeps
// regular files with a supported Office extension, deduplicates by absolute
// path preserving first-seen order, and returns one Warning per excluded
// candidate. Select only reads file metadata; it has no other side effects.
func Select(paths []string) ([]types.InputFile, []Warning) {
	seen := make(map[string]struct{}, len(paths))
	var files []types.InputFile
	var warnings []Warning

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			warnings = append(warnings, Warning{Path: p, Reason: fmt.Sprintf("unresolvable path: %v", err)})
			continue
		}
		if _, dup := seen[abs]; dup {
			continue
		}
		seen[abs] = struct{}{}

		format, ok := types.FormatForPath(abs)
		if !ok {
			warnings = append(warnings, Warning{Path: p, Reason: "unsupported file type"})
			continue
		}

		info, err := os.Stat(abs)
		if err != nil {
			if os.IsNotExist(err) {
				warnings = append(warnings, Warning{Path: p, Reason: "no such file"})
			} else {
				warnings = append(warnings, Warning{Path: p, Reason: fmt.Sprintf("stat failed: %v", err)})
			}
			continue
		}
		if info.IsDir() {
			warnings = append(warnings, Warning{Path: p, Reason: "is a directory"})
			continue
		}

		files = append(files, types.InputFile{Path: abs, Format: format})
	}

	return files, warnings
}

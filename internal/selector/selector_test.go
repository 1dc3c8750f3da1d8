// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package selector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/officepdf/pkg/types"
)

// writeFile creates an empty file with the given name under dir and returns
// its path.
func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))
	return path
}

func TestSelect_SupportedExtensions(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, f := range types.Formats() {
		paths = append(paths, writeFile(t, dir, "sample."+string(f)))
	}

	files, warnings := Select(paths)

	require.Len(t, files, len(types.Formats()))
	assert.Empty(t, warnings)
	for i, f := range types.Formats() {
		assert.Equal(t, f, files[i].Format)
		assert.True(t, filepath.IsAbs(files[i].Path))
	}
}

func TestSelect_Exclusions(t *testing.T) {
	dir := t.TempDir()
	docx := writeFile(t, dir, "report.docx")
	pdf := writeFile(t, dir, "done.pdf")
	missing := filepath.Join(dir, "missing.pptx")
	sub := filepath.Join(dir, "folder.docx")
	require.NoError(t, os.Mkdir(sub, 0o755))

	tests := []struct {
		name       string
		paths      []string
		wantFiles  int
		wantReason string
	}{
		{
			name:       "unsupported extension",
			paths:      []string{docx, pdf},
			wantFiles:  1,
			wantReason: "unsupported file type",
		},
		{
			name:       "missing file",
			paths:      []string{missing},
			wantFiles:  0,
			wantReason: "no such file",
		},
		{
			name:       "directory with office extension",
			paths:      []string{sub},
			wantFiles:  0,
			wantReason: "is a directory",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, warnings := Select(tt.paths)
			assert.Len(t, files, tt.wantFiles)
			require.Len(t, warnings, 1)
			assert.Equal(t, tt.wantReason, warnings[0].Reason)
		})
	}
}

func TestSelect_DeduplicatesPreservingOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.docx")
	b := writeFile(t, dir, "b.xlsx")

	// The same file appears twice, once via a relative-style spelling.
	files, warnings := Select([]string{b, a, filepath.Join(dir, ".", "b.xlsx")})

	assert.Empty(t, warnings)
	require.Len(t, files, 2)
	assert.Equal(t, b, files[0].Path)
	assert.Equal(t, a, files[1].Path)
}

func TestSelect_EmptyInput(t *testing.T) {
	files, warnings := Select(nil)
	assert.Empty(t, files)
	assert.Empty(t, warnings)
}

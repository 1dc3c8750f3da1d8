// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/officepdf/pkg/types"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLastOutputDir(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	dir, err := s.LastOutputDir(ctx)
	require.NoError(t, err)
	assert.Empty(t, dir, "fresh store has no remembered directory")

	require.NoError(t, s.SetLastOutputDir(ctx, "/out/first"))
	require.NoError(t, s.SetLastOutputDir(ctx, "/out/second"))

	dir, err = s.LastOutputDir(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/out/second", dir, "latest value wins")
}

func TestOpen_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "session.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SetLastOutputDir(context.Background(), "/out"))
}

func TestRecordBatchAndRecent(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	first := types.BatchSummary{
		Results: []types.ConversionResult{
			{
				Input:   types.InputFile{Path: "/docs/a.docx", Format: types.FormatDOCX},
				Status:  types.StatusDone,
				PDFPath: "/docs/a.pdf",
			},
			{
				Input:  types.InputFile{Path: "/docs/b.xlsx", Format: types.FormatXLSX},
				Status: types.StatusFailed,
				Err:    errors.New("engine crashed"),
			},
		},
		Succeeded: 1,
		Failed:    1,
	}
	started := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)

	firstID, err := s.RecordBatch(ctx, started, "", first)
	require.NoError(t, err)

	second := types.BatchSummary{
		Results: []types.ConversionResult{
			{
				Input:   types.InputFile{Path: "/docs/c.odt", Format: types.FormatODT},
				Status:  types.StatusDone,
				PDFPath: "/out/c.pdf",
			},
		},
		Succeeded: 1,
	}
	secondID, err := s.RecordBatch(ctx, started.Add(time.Hour), "/out", second)
	require.NoError(t, err)

	recent, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	// Newest first.
	assert.Equal(t, secondID, recent[0].ID)
	assert.Equal(t, "/out", recent[0].OutputDir)
	assert.Equal(t, 1, recent[0].Converted)
	assert.Equal(t, firstID, recent[1].ID)
	assert.Equal(t, 1, recent[1].Failed)
	assert.Equal(t, started, recent[1].StartedAt)
}

func TestRecentLimit(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	for i := 0; i < 5; i++ {
		_, err := s.RecordBatch(ctx, time.Now(), "", types.BatchSummary{})
		require.NoError(t, err)
	}

	recent, err := s.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, recent, 3)
}

func TestResultsFor(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	summary := types.BatchSummary{
		Results: []types.ConversionResult{
			{
				Input:   types.InputFile{Path: "/docs/a.docx", Format: types.FormatDOCX},
				Status:  types.StatusDone,
				PDFPath: "/docs/a.pdf",
			},
			{
				Input:  types.InputFile{Path: "/docs/b.xlsx", Format: types.FormatXLSX},
				Status: types.StatusCancelled,
				Err:    context.Canceled,
			},
		},
		Succeeded: 1,
		Cancelled: 1,
	}
	id, err := s.RecordBatch(ctx, time.Now(), "", summary)
	require.NoError(t, err)

	results, err := s.ResultsFor(ctx, id)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "/docs/a.docx", results[0].Source)
	assert.Equal(t, types.StatusDone, results[0].Status)
	assert.Equal(t, "/docs/a.pdf", results[0].PDF)
	assert.Equal(t, types.StatusCancelled, results[1].Status)
	assert.NotEmpty(t, results[1].Error)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/officepdf/pkg/types"
)

// Report is the on-disk record of one batch run. The user can keep it as a
// receipt or feed it to other tooling without re-running the batch.
type Report struct {
	Engine    string        `yaml:"engine"`
	OutputDir string        `yaml:"output_dir,omitempty"`
	Results   []ReportEntry `yaml:"results"`
	Summary   ReportSummary `yaml:"summary"`
}

// ReportEntry records the outcome for one source file.
type ReportEntry struct {
	Source string `yaml:"source"`
	Format string `yaml:"format"`
	Status string `yaml:"status"`
	PDF    string `yaml:"pdf,omitempty"`
	Error  string `yaml:"error,omitempty"`
}

// ReportSummary stores batch counts and a timestamp.
type ReportSummary struct {
	Converted int       `yaml:"converted"`
	Failed    int       `yaml:"failed"`
	Cancelled int       `yaml:"cancelled"`
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// NewReport builds a Report from a batch summary. Entries keep input order.
func NewReport(engineName, outputDir string, summary types.BatchSummary) Report {
	entries := make([]ReportEntry, len(summary.Results))
	for i, r := range summary.Results {
		e := ReportEntry{
			Source: r.Input.Path,
			Format: string(r.Input.Format),
			Status: string(r.Status),
			PDF:    r.PDFPath,
		}
		if r.Err != nil {
			e.Error = r.Err.Error()
		}
		entries[i] = e
	}
	return Report{
		Engine:    engineName,
		OutputDir: outputDir,
		Results:   entries,
		Summary: ReportSummary{
			Converted: summary.Succeeded,
			Failed:    summary.Failed,
			Cancelled: summary.Cancelled,
			Total:     summary.Total(),
			Timestamp: time.Now().UTC(),
		},
	}
}

// Write marshals the report to YAML at path.
func (r Report) Write(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// LoadReport reads a report previously written with Write.
func LoadReport(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("reading report %s: %w", path, err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Report{}, fmt.Errorf("parsing report %s: %w", path, err)
	}
	return r, nil
}

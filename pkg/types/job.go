// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionStatus indicates the outcome of one document conversion.
type ConversionStatus string

const (
	StatusDone      ConversionStatus = "converted"
	StatusFailed    ConversionStatus = "failed"
	StatusCancelled ConversionStatus = "cancelled"
)

// InputFile is one document selected for conversion. The path is absolute
// and the format was inferred from the extension at selection time. An
// InputFile does not change once it is part of a batch.
type InputFile struct {
	// Path is the absolute filesystem path to the source document.
	Path string `json:"path" yaml:"path"`

	// Format is the document format inferred from the file extension.
	Format Format `json:"format" yaml:"format"`
}

// ConversionResult is the outcome of converting one InputFile. Every file
// in a batch produces exactly one result.
type ConversionResult struct {
	// Input is the source document this result belongs to.
	Input InputFile

	// Status reports how the conversion ended.
	Status ConversionStatus

	// PDFPath is the path of the produced PDF. Set only on success.
	PDFPath string

	// Err describes the failure. Set only when Status is not StatusDone.
	Err error
}

// BatchSummary aggregates the results of one batch run. Results holds one
// entry per selected file, in input order.
type BatchSummary struct {
	Results   []ConversionResult
	Succeeded int
	Failed    int
	Cancelled int
}

// Total returns the number of files processed.
func (s BatchSummary) Total() int {
	return s.Succeeded + s.Failed + s.Cancelled
}

// HasFailures reports whether any file failed conversion.
func (s BatchSummary) HasFailures() bool {
	return s.Failed > 0
}

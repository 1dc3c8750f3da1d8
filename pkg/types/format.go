// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared records and configuration for officepdf.
package types

import (
	"path/filepath"
	"strings"
)

// Format identifies a supported input document format.
type Format string

const (
	FormatDOCX Format = "docx"
	FormatDOC  Format = "doc"
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
	FormatPPTX Format = "pptx"
	FormatPPT  Format = "ppt"
	FormatODT  Format = "odt"
	FormatODS  Format = "ods"
	FormatODP  Format = "odp"
)

// formats lists all supported input formats in display order: modern Office,
// legacy Office, then OpenDocument.
var formats = []Format{
	FormatDOCX, FormatXLSX, FormatPPTX,
	FormatDOC, FormatXLS, FormatPPT,
	FormatODT, FormatODS, FormatODP,
}

// Formats returns the supported input formats in display order.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// Description returns a human-readable name for the format.
func (f Format) Description() string {
	switch f {
	case FormatDOCX, FormatDOC:
		return "Word document"
	case FormatXLSX, FormatXLS:
		return "Excel spreadsheet"
	case FormatPPTX, FormatPPT:
		return "PowerPoint presentation"
	case FormatODT:
		return "OpenDocument text"
	case FormatODS:
		return "OpenDocument spreadsheet"
	case FormatODP:
		return "OpenDocument presentation"
	}
	return "unknown"
}

// FormatForPath infers the document format from the file extension,
// case-insensitively. ok is false when the extension is not a supported
// Office format.
func FormatForPath(path string) (format Format, ok bool) {
	base := filepath.Base(path)
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(base), "."))
	// A dotfile like ".docx" has no extension, only a name.
	if ext == "" || base == filepath.Ext(base) {
		return "", false
	}
	for _, f := range formats {
		if ext == string(f) {
			return f, true
		}
	}
	return "", false
}

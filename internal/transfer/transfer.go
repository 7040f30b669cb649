// Package transfer implements the import/export wire formats: JSON (full
// fidelity), CSV and TSV (spreadsheet-friendly) and a plain-text record
// format for sharing. Parsing is all-or-nothing; a malformed payload yields
// ErrInvalidData and no partial result.
package transfer

import (
	"errors"
	"fmt"
	"time"

	"task_planner/internal/models"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatText Format = "text"
	FormatTSV  Format = "excel" // tab-separated, named after the original export option
)

// ErrInvalidData reports an import payload that could not be validated.
var ErrInvalidData = errors.New("invalid import data")

// Export serializes tasks in the given format and returns the content
// together with a suggested filename.
func Export(tasks []models.Task, format Format, now time.Time) ([]byte, string, error) {
	base := "tasks-" + now.Format("2006-01-02")
	switch format {
	case FormatJSON:
		data, err := exportJSON(tasks)
		return data, base + ".json", err
	case FormatCSV:
		data, err := exportCSV(tasks)
		return data, base + ".csv", err
	case FormatTSV:
		return exportTSV(tasks), base + ".tsv", nil
	case FormatText:
		return exportText(tasks), base + ".txt", nil
	}
	return nil, "", fmt.Errorf("unsupported export format %q", format)
}

// Parse decodes an import payload. Supported import formats are JSON, CSV
// and plain text.
func Parse(data []byte, format Format) ([]models.Task, error) {
	switch format {
	case FormatJSON:
		return parseJSON(data)
	case FormatCSV:
		return parseCSV(data)
	case FormatText:
		return parseText(data)
	}
	return nil, fmt.Errorf("%w: unsupported import format %q", ErrInvalidData, format)
}

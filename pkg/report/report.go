// Package report renders a finished counter table as a human-readable table
// on stdout or as a CSV, JSON or YAML report file. Rendering is a pure read
// of the table.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Sumatoshi-tech/git-line-totals/pkg/tally"
)

// Format selects the output rendering.
type Format string

// Output formats.
const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// baseName is the stem of report files written by Save.
const baseName = "git-line-totals"

// ErrUnknownFormat is returned for an unrecognized format name.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatCSV, FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: %q (want table, csv, json or yaml)", ErrUnknownFormat, s)
	}
}

// FileName returns the fixed report file name for a file-based format, or ""
// for the table format, which prints to stdout instead.
func FileName(format Format) string {
	if format == FormatTable {
		return ""
	}

	return baseName + "." + string(format)
}

// Save writes the table to its format-derived file name inside dir and
// returns the written path. The table format is not file-based and is
// rejected here.
func Save(dir string, format Format, table *tally.Table) (string, error) {
	name := FileName(format)
	if name == "" {
		return "", fmt.Errorf("%w: %s is not a file format", ErrUnknownFormat, format)
	}

	path := filepath.Join(dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}

	var writeErr error

	switch format {
	case FormatCSV:
		writeErr = WriteCSV(file, table)
	case FormatJSON:
		writeErr = WriteJSON(file, table)
	case FormatYAML:
		writeErr = WriteYAML(file, table)
	case FormatTable:
		// Unreachable: rejected above.
	}

	closeErr := file.Close()

	if writeErr != nil {
		return "", writeErr
	}

	if closeErr != nil {
		return "", fmt.Errorf("close report file: %w", closeErr)
	}

	return path, nil
}

// Package workbook writes tabular datasets to single-sheet .xlsx files.
package workbook

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

const (
	// SheetName is the name given to the only sheet in the workbook.
	SheetName = "Dental Health Data"

	// DefaultFileName is used when no output path is configured.
	DefaultFileName = "comprehensive_dental_health_dataset.xlsx"

	// ContentType is the MIME type of the generated workbook.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	defaultSheet = "Sheet1"
	columnWidth  = 18
)

var (
	ErrEmptyHeader    = errors.New("workbook header is empty")
	ErrRowWidth       = errors.New("row width does not match header")
	ErrMissingOutPath = errors.New("output path is required")
)

// Summary describes a written workbook.
type Summary struct {
	Path    string `json:"path,omitempty"`
	Sheet   string `json:"sheet"`
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
}

// Dimensions formats the data shape the way the CLI reports it.
func (s *Summary) Dimensions() string {
	return fmt.Sprintf("%d rows × %d columns", s.Rows, s.Columns)
}

// build renders header and rows into a new in-memory workbook. The caller
// must Close the returned file.
func build(header []string, rows [][]interface{}) (*excelize.File, error) {
	if len(header) == 0 {
		return nil, ErrEmptyHeader
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(defaultSheet, SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open stream writer: %w", err)
	}
	if err := sw.SetColWidth(1, len(header), columnWidth); err != nil {
		f.Close()
		return nil, fmt.Errorf("set column width: %w", err)
	}

	head := make([]interface{}, len(header))
	for i, h := range header {
		head[i] = h
	}
	if err := sw.SetRow("A1", head, excelize.RowOpts{StyleID: bold}); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, row := range rows {
		if len(row) != len(header) {
			f.Close()
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", i+1, len(row), len(header), ErrRowWidth)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if err := sw.SetRow(cell, row); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		f.Close()
		return nil, fmt.Errorf("flush sheet: %w", err)
	}
	return f, nil
}

// Write renders the dataset and writes the .xlsx bytes to w.
func Write(w io.Writer, header []string, rows [][]interface{}) (*Summary, error) {
	f, err := build(header, rows)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return &Summary{Sheet: SheetName, Rows: len(rows), Columns: len(header)}, nil
}

// WriteFile renders the dataset into path, creating parent directories.
// Filesystem errors wrap the underlying *fs.PathError.
func WriteFile(path string, header []string, rows [][]interface{}) (*Summary, error) {
	if path == "" {
		return nil, ErrMissingOutPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}

	summary, err := Write(out, header, rows)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close %s: %w", path, cerr)
	}
	if err != nil {
		os.Remove(path)
		return nil, err
	}

	summary.Path = path
	return summary, nil
}

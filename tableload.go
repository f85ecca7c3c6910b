package score2pdf

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// MaxUploadSize is the maximum accepted bulk input size in bytes.
const MaxUploadSize = 10 << 20 // 10 MB

// ReadTable loads a bulk table from a CSV or XLSX file. The format is
// chosen by extension; anything else is rejected. Files larger than
// MaxUploadSize are rejected before reading.
func ReadTable(path string) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileProcess, err)
	}
	if info.Size() > MaxUploadSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, info.Size(), MaxUploadSize)
	}

	f, err := os.Open(path) // #nosec G304 -- user-provided input path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileProcess, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(f)
	case ".xlsx":
		return ReadXLSX(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, filepath.Ext(path))
	}
}

// ReadCSV reads a CSV table, detecting UTF-8 or Shift-JIS encoding from
// the raw bytes and decoding accordingly. The first row is the header.
func ReadCSV(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileProcess, err)
	}
	if int64(len(data)) > MaxUploadSize {
		return nil, fmt.Errorf("%w: max %d bytes", ErrFileTooLarge, MaxUploadSize)
	}

	encoding, err := DetectEncoding(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileProcess, err)
	}

	var reader io.Reader = bytes.NewReader(data)
	if encoding == "shift-jis" || encoding == "shift_jis" {
		reader = transform.NewReader(reader, japanese.ShiftJIS.NewDecoder())
	}

	cr := csv.NewReader(reader)
	cr.FieldsPerRecord = -1 // ragged rows surface as empty cells during validation
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileProcess, err)
	}

	return tableFromRows(rows)
}

// ReadXLSX reads the first sheet of an XLSX workbook. The first row is
// the header.
func ReadXLSX(r io.Reader) (*Table, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileProcess, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrFileProcess)
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileProcess, err)
	}

	return tableFromRows(rows)
}

// tableFromRows splits raw rows into header and data, trimming cell
// whitespace the way the upload path always has.
func tableFromRows(rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrEmptyTable)
	}

	columns := make([]string, len(rows[0]))
	for i, c := range rows[0] {
		columns[i] = strings.TrimSpace(c)
	}

	table := &Table{Columns: columns}
	for _, row := range rows[1:] {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = strings.TrimSpace(c)
		}
		table.Rows = append(table.Rows, cells)
	}

	return table, nil
}

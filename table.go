package score2pdf

import (
	"fmt"
	"strconv"
	"strings"
)

// Table is a batch of records sourced from a spreadsheet-like upload.
// Cells are kept as text until validation succeeds; typed records are
// built afterwards with Records.
type Table struct {
	Columns []string
	Rows    [][]string // each row aligned with Columns
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// columnIndex returns the position of a column, or -1 if absent.
func (t *Table) columnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// cell returns the trimmed cell value for a column in a row.
// Rows shorter than the column list yield empty cells.
func (t *Table) cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// Validate checks the whole table and returns the first failing check.
// Bulk uploads fail fast with one actionable message rather than a
// per-row error dump, since the batch runs in one pass after validation.
//
// Check order:
//  1. missing required columns (short-circuits the rest)
//  2. score column numeric and within range (whole-table failure)
//  3. empty cells in any required column
//  4. unknown subject names
func (t *Table) Validate() error {
	if t.Len() == 0 {
		return ErrEmptyTable
	}

	present := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		present[c] = true
	}
	var missing []string
	for _, c := range RequiredColumns() {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	scoreCol := t.columnIndex(FieldScore)
	for _, row := range t.Rows {
		raw := t.cell(row, scoreCol)
		if raw == "" {
			continue // reported by the empty-cell check below
		}
		score, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrScoreNotNumeric, raw)
		}
		if score < MinScore || score > MaxScore {
			return ErrScoreOutOfRange
		}
	}

	for _, name := range RequiredColumns() {
		col := t.columnIndex(name)
		for _, row := range t.Rows {
			if t.cell(row, col) == "" {
				return fmt.Errorf("%w: %s", ErrEmptyCell, name)
			}
		}
	}

	subjectCol := t.columnIndex(FieldSubject)
	seen := make(map[string]bool)
	var invalid []string
	for _, row := range t.Rows {
		s := t.cell(row, subjectCol)
		if !IsValidSubject(s) && !seen[s] {
			seen[s] = true
			invalid = append(invalid, s)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSubject, strings.Join(invalid, ", "))
	}

	return nil
}

// Records builds typed records from a validated table, binding the given
// template type to every row. Call Validate first; Records repeats the
// per-row validation as a safety net and fails on the first bad row.
func (t *Table) Records(templateType string) ([]Record, error) {
	records := make([]Record, 0, t.Len())
	for i, row := range t.Rows {
		fields := make(map[string]string, len(t.Columns))
		for _, name := range RequiredColumns() {
			fields[name] = t.cell(row, t.columnIndex(name))
		}
		// Spreadsheets often store scores as floats ("95.0"); normalize
		// to the integer form ParseRecord expects.
		if f, err := strconv.ParseFloat(fields[FieldScore], 64); err == nil {
			fields[FieldScore] = strconv.Itoa(int(f))
		}
		rec, err := ParseRecord(fields, templateType)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		records = append(records, *rec)
	}
	return records, nil
}

// SampleTable returns a small valid table for documentation and tests.
func SampleTable() *Table {
	return &Table{
		Columns: RequiredColumns(),
		Rows: [][]string{
			{"国語", "第1回定期考査", "95", "小3", "山田", "太郎"},
			{"数学", "第1回定期考査", "88", "小3", "鈴木", "花子"},
			{"英語", "第1回定期考査", "92", "小3", "佐藤", "一郎"},
		},
	}
}

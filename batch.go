package score2pdf

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ProgressFunc reports batch progress after each row completes.
// done counts finished rows; total is the row count of the table.
type ProgressFunc func(done, total int)

// batch file permissions.
const batchFilePermissions = 0o644

// GenerateArchive renders every row of a validated table, strictly in
// table order, and writes a single zip archive of the produced PDFs to w.
// Each entry is named {last_name}{first_name}_{subject}.pdf.
//
// Rows are processed sequentially: the renderer is invoked synchronously
// per row and the whole batch blocks the caller. Any per-row failure
// aborts the batch; nothing is written to w and already-produced files
// are discarded. The temporary directory holding per-row output lives
// only for the duration of this call.
func (g *Generator) GenerateArchive(ctx context.Context, table *Table, templateType string, progress ProgressFunc, w io.Writer) error {
	if err := table.Validate(); err != nil {
		return err
	}

	records, err := table.Records(templateType)
	if err != nil {
		return err
	}

	tempDir, err := os.MkdirTemp("", "score2pdf-batch-")
	if err != nil {
		return fmt.Errorf("creating batch directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(tempDir) }()

	total := len(records)
	names := make([]string, 0, total)
	for i, rec := range records {
		pdfBytes, err := g.Generate(ctx, rec)
		if err != nil {
			return fmt.Errorf("row %d (%s%s): %w", i+1, rec.LastName, rec.FirstName, err)
		}

		name := BatchFileName(&rec)
		path := filepath.Join(tempDir, name)
		// #nosec G306 -- PDFs are meant to be readable
		if err := os.WriteFile(path, pdfBytes, batchFilePermissions); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		names = append(names, name)

		if progress != nil {
			progress(i+1, total)
		}
	}

	return writeZip(w, tempDir, names)
}

// BatchFileName derives the per-row output filename from a record.
func BatchFileName(rec *Record) string {
	return fmt.Sprintf("%s%s_%s.pdf", rec.LastName, rec.FirstName, rec.Subject)
}

// writeZip packages the named files from dir into a zip archive on w,
// preserving batch order.
func writeZip(w io.Writer, dir string, names []string) error {
	zw := zip.NewWriter(w)
	for _, name := range names {
		entry, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWriteArchive, err)
		}
		content, err := os.ReadFile(filepath.Join(dir, name)) // #nosec G304 -- batch-owned path
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWriteArchive, err)
		}
		if _, err := entry.Write(content); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteArchive, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteArchive, err)
	}
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	score2pdf "github.com/yabed/go-score2pdf"
	"github.com/yabed/go-score2pdf/internal/config"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---
	filePermissions = 0o644 // rw-r--r--
)

// ErrWriteOutput indicates the produced PDF or archive could not be written.
var ErrWriteOutput = errors.New("failed to write output file")

// run wires config and flags into a Generator and executes either
// single-record or bulk mode.
func run(flags *cliFlags, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	opts := generatorOptions(flags, cfg)
	gen, err := score2pdf.NewGenerator(opts...)
	if err != nil {
		return err
	}
	defer gen.Close()

	templateType := cfg.Template.Type
	if flags.template != "" {
		templateType = flags.template
	}
	if templateType == "" {
		templateType = score2pdf.TemplateScoreDisplay
	}

	ctx := context.Background()

	if flags.input != "" {
		return runBulk(ctx, gen, flags, cfg, templateType, stdout, stderr)
	}
	return runSingle(ctx, gen, flags, cfg, templateType, stdout)
}

// loadConfig loads the named config, or defaults when none is given.
func loadConfig(flags *cliFlags) (*config.Config, error) {
	if flags.config == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(flags.config)
}

// generatorOptions merges config and flag overrides into Generator options.
// Flags win over config values.
func generatorOptions(flags *cliFlags, cfg *config.Config) []score2pdf.Option {
	var opts []score2pdf.Option

	timeout := cfg.Render.TimeoutSeconds
	if flags.timeout > 0 {
		timeout = flags.timeout
	}
	if timeout > 0 {
		opts = append(opts, score2pdf.WithTimeout(time.Duration(timeout)*time.Second))
	}

	settle := cfg.Render.SettleDelayMillis
	if flags.settle >= 0 {
		settle = flags.settle
	}
	if settle >= 0 {
		opts = append(opts, score2pdf.WithSettleDelay(time.Duration(settle)*time.Millisecond))
	}

	assetDir := cfg.Assets.BasePath
	if flags.assetDir != "" {
		assetDir = flags.assetDir
	}
	if assetDir != "" {
		opts = append(opts, score2pdf.WithAssetDir(assetDir))
	}

	return opts
}

// runSingle renders one record from the field flags.
func runSingle(ctx context.Context, gen *score2pdf.Generator, flags *cliFlags, cfg *config.Config, templateType string, stdout io.Writer) error {
	rec := score2pdf.Record{
		Subject:      flags.record.subject,
		TestName:     flags.record.testName,
		Score:        flags.record.score,
		SchoolYear:   flags.record.year,
		LastName:     flags.record.lastName,
		FirstName:    flags.record.firstName,
		TemplateType: templateType,
	}

	pdf, err := gen.Generate(ctx, rec)
	if err != nil {
		return err
	}

	outPath, err := resolveOutputPath(flags.output, cfg.Output.DefaultDir, singleFileName(&rec))
	if err != nil {
		return err
	}

	// #nosec G306 -- PDFs are meant to be readable
	if err := os.WriteFile(outPath, pdf, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	fmt.Fprintf(stdout, "Created %s\n", outPath)
	return nil
}

// runBulk reads a table file and renders every row into a zip archive.
func runBulk(ctx context.Context, gen *score2pdf.Generator, flags *cliFlags, cfg *config.Config, templateType string, stdout, stderr io.Writer) error {
	table, err := score2pdf.ReadTable(flags.input)
	if err != nil {
		return err
	}

	outPath, err := resolveOutputPath(flags.output, cfg.Output.DefaultDir, archiveFileName(time.Now()))
	if err != nil {
		return err
	}

	out, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePermissions) // #nosec G302 G304 -- user-chosen output
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	var progress score2pdf.ProgressFunc
	if !flags.quiet {
		progress = func(done, total int) {
			fmt.Fprintf(stderr, "Generating PDFs... (%d/%d)\n", done, total)
		}
	}

	if err := gen.GenerateArchive(ctx, table, templateType, progress, out); err != nil {
		_ = out.Close()
		_ = os.Remove(outPath) // no partial archive on failure
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	fmt.Fprintf(stdout, "Created %s (%d files)\n", outPath, table.Len())
	return nil
}

// resolveOutputPath combines the -o flag, the configured default
// directory, and a derived default filename. When -o names a directory
// (or is empty), the default filename is placed inside it.
func resolveOutputPath(output, defaultDir, defaultName string) (string, error) {
	path := output
	if path == "" {
		path = filepath.Join(defaultDir, defaultName)
	} else if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, defaultName)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return "", fmt.Errorf("creating output directory: %w", err)
		}
	}
	return path, nil
}

// singleFileName derives the output name for one record:
// {last}{first}_{subject}_{YYYYMMDD}.pdf
func singleFileName(rec *score2pdf.Record) string {
	return fmt.Sprintf("%s%s_%s_%s.pdf",
		rec.LastName, rec.FirstName, rec.Subject, time.Now().Format("20060102"))
}

// archiveFileName derives the bulk archive name: 成績表_{YYYYMMDD_HHMMSS}.zip
func archiveFileName(now time.Time) string {
	return fmt.Sprintf("成績表_%s.zip", now.Format("20060102_150405"))
}

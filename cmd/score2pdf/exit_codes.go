package main

import (
	"errors"
	"os"

	score2pdf "github.com/yabed/go-score2pdf"
	"github.com/yabed/go-score2pdf/internal/config"
)

// Exit codes for the score2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, custom < 126.
const (
	ExitSuccess = 0 // Successful generation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or input validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, score2pdf.ErrBrowserConnect) ||
		errors.Is(err, score2pdf.ErrPageCreate) ||
		errors.Is(err, score2pdf.ErrPageLoad) ||
		errors.Is(err, score2pdf.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, score2pdf.ErrFileProcess) ||
		errors.Is(err, score2pdf.ErrWriteArchive) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidSetting) ||
		errors.Is(err, score2pdf.ErrMissingField) ||
		errors.Is(err, score2pdf.ErrInvalidSubject) ||
		errors.Is(err, score2pdf.ErrScoreNotInteger) ||
		errors.Is(err, score2pdf.ErrScoreOutOfRange) ||
		errors.Is(err, score2pdf.ErrInvalidTemplate) ||
		errors.Is(err, score2pdf.ErrMissingColumns) ||
		errors.Is(err, score2pdf.ErrScoreNotNumeric) ||
		errors.Is(err, score2pdf.ErrEmptyCell) ||
		errors.Is(err, score2pdf.ErrEmptyTable) ||
		errors.Is(err, score2pdf.ErrUnsupportedFile) ||
		errors.Is(err, score2pdf.ErrFileTooLarge) {
		return ExitUsage
	}

	return ExitGeneral
}

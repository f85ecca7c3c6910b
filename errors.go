package score2pdf

import "errors"

// Sentinel errors for library operations.
var (
	// Record validation errors.
	ErrMissingField    = errors.New("required field is missing or empty")
	ErrInvalidSubject  = errors.New("invalid subject")
	ErrScoreNotInteger = errors.New("score must be an integer")
	ErrScoreOutOfRange = errors.New("score must be between 0 and 100")
	ErrInvalidTemplate = errors.New("invalid template type")

	// Table validation errors.
	ErrMissingColumns  = errors.New("required columns are missing")
	ErrScoreNotNumeric = errors.New("score column contains non-numeric values")
	ErrEmptyCell       = errors.New("column contains empty values")
	ErrEmptyTable      = errors.New("table contains no data rows")

	// File processing errors.
	ErrUnsupportedFile = errors.New("unsupported file format")
	ErrFileTooLarge    = errors.New("file exceeds maximum size")
	ErrFileProcess     = errors.New("file processing failed")
	ErrEncodingDetect  = errors.New("encoding detection failed")

	// Template composition errors.
	ErrTemplateBody = errors.New("template has no body element")

	// Rendering errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")

	// Batch errors.
	ErrWriteArchive = errors.New("failed to write archive")
)

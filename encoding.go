package score2pdf

import (
	"fmt"
	"strings"

	"github.com/saintfish/chardet"
)

// allowedEncodings is the allow-list for detected charsets. Anything
// outside it is treated as UTF-8.
var allowedEncodings = map[string]bool{
	"utf-8":     true,
	"shift-jis": true,
	"shift_jis": true,
}

// DetectEncoding runs a statistical charset detector over raw bytes and
// returns the lowercased best guess, restricted to UTF-8 and Shift-JIS.
// Unrelated encodings fall back to "utf-8". Pure function over data; the
// input is never mutated. Detector failure (e.g. empty input) wraps into
// the file-processing error category.
func DetectEncoding(data []byte) (string, error) {
	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncodingDetect, err)
	}

	encoding := strings.ToLower(result.Charset)
	if allowedEncodings[encoding] {
		return encoding, nil
	}
	return "utf-8", nil
}

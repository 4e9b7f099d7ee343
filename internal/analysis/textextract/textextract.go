// Package textextract converts raw file bytes plus a declared extension into
// best-effort plain text. It never returns an error: zero-length output is
// the expected signal for "no extractable content" (likely a scanned image).
package textextract

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/lu4p/cat"

	"github.com/bart800/Denham-cms-sub000/internal/config"
	"github.com/bart800/Denham-cms-sub000/pkg/logger_i"
)

const (
	MethodTextLayer = "text-layer"
	MethodFallback  = "fallback"
)

type Result struct {
	Text   string `json:"text"`
	Method string `json:"method,omitempty"`
}

var plainTextExtensions = map[string]bool{
	"txt":  true,
	"csv":  true,
	"html": true,
	"htm":  true,
	"xml":  true,
	"json": true,
	"md":   true,
}

var logger *logger_i.Logger

func getLogger() *logger_i.Logger {
	if logger == nil {
		logger = logger_i.NewLogger("TextExtract")
	}
	return logger
}

// Extract dispatches on the declared extension (case-insensitive, leading dot
// stripped). Unsupported extensions yield an empty result rather than an
// error; deciding what empty means is the caller's job.
func Extract(content []byte, ext string) Result {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))

	switch {
	case plainTextExtensions[ext]:
		return Result{Text: string(content), Method: MethodTextLayer}
	case ext == "pdf":
		return extractPDF(content)
	case ext == "docx" || ext == "rtf" || ext == "odt":
		return extractWithCat(content, ext)
	default:
		getLogger().Debug("unsupported extension", "ext", ext)
		return Result{}
	}
}

// extractWithCat routes docx/rtf/odt through lu4p/cat, which only reads from
// a path, so the bytes take a round trip through a temp file.
func extractWithCat(content []byte, ext string) Result {
	tmp, err := os.CreateTemp("", "extract-*."+ext)
	if err != nil {
		getLogger().Error("temp file for extraction failed", "error", err)
		return Result{}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		getLogger().Error("temp file write failed", "error", err)
		return Result{}
	}
	tmp.Close()

	text, err := cat.File(filepath.Clean(tmp.Name()))
	if err != nil {
		getLogger().Error("cat extraction failed", "ext", ext, "error", err)
		return Result{}
	}
	return Result{Text: text, Method: MethodTextLayer}
}

// fallbackText is the last-resort pass for unparseable binary: strip
// non-printable bytes, collapse whitespace runs into newlines, and accept the
// result only above the minimum-length threshold. Below it the file is
// treated as a scanned image and the result is empty.
func fallbackText(content []byte) Result {
	var b strings.Builder
	b.Grow(len(content))

	inWhitespace := false
	for _, r := range string(content) {
		switch {
		case r == '\n' || r == '\r' || r == '\t' || r == ' ':
			if !inWhitespace && b.Len() > 0 {
				b.WriteByte('\n')
			}
			inWhitespace = true
		case unicode.IsPrint(r):
			b.WriteRune(r)
			inWhitespace = false
		}
	}

	text := strings.TrimSpace(b.String())
	if len(text) <= config.PDFFallbackMinChars {
		return Result{}
	}
	return Result{Text: text, Method: MethodFallback}
}

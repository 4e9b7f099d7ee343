package textextract

import (
	"bytes"
	"errors"
	"strings"
	"time"

	"github.com/dslipak/pdf"
)

const pageExtractTimeout = 10 * time.Second

// extractPDF walks the PDF text layer page by page. Any failure — open
// error, per-page timeout, parser panic — drops to the printable-byte
// fallback instead of surfacing an error.
func extractPDF(content []byte) Result {
	log := getLogger()

	reader, err := openPDF(content)
	if err != nil {
		log.Debug("pdf open failed, using fallback", "error", err)
		return fallbackText(content)
	}

	var b strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := protectExtract(page)
		if err != nil {
			log.Debug("pdf page extraction failed", "page", i, "error", err)
			continue
		}
		b.WriteString(pageText)
		b.WriteByte('\n')
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return fallbackText(content)
	}
	return Result{Text: text, Method: MethodTextLayer}
}

func openPDF(content []byte) (reader *pdf.Reader, err error) {
	defer func() {
		if r := recover(); r != nil {
			reader, err = nil, errors.New("pdf parser panic")
		}
	}()
	return pdf.NewReader(bytes.NewReader(content), int64(len(content)))
}

// protectExtract guards GetPlainText with a timeout and a panic recover; some
// malformed pages hang or blow up inside the parser.
func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				resChan <- result{"", errors.New("page parser panic")}
			}
		}()
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()

	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(pageExtractTimeout):
		return "", errors.New("timeout")
	}
}

package pdf

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extractor pulls plain text from PDF bytes. Errors stay inside the
// generation orchestrator, which substitutes fallback text.
type Extractor struct{}

func NewExtractor() Extractor {
	return Extractor{}
}

func (Extractor) ExtractText(data []byte) (text string, err error) {
	// The parser panics on some malformed files; turn that into an error so
	// a corrupt upload degrades instead of crashing the request.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}

	var b strings.Builder
	if _, err := io.Copy(&b, content); err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	return b.String(), nil
}

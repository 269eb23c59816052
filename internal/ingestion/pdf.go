package ingestion

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dslipak/pdf"
)

// scannedPDFThreshold is the minimum extracted character count below which a
// PDF is flagged as likely scanned (image-only).
const scannedPDFThreshold = 50

// readPDF extracts text from a PDF page by page. Pages that fail text
// extraction are skipped rather than failing the whole document.
func readPDF(fileBytes []byte) (string, string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(fileBytes), int64(len(fileBytes)))
	if err != nil {
		return "", "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}

	text := CleanText(sb.String())

	warning := ""
	if len(text) < scannedPDFThreshold {
		warning = "PDF text extraction returned very little text. This PDF may be scanned."
	}
	return text, warning, nil
}

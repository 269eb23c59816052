// Package ingestion turns uploaded resume and job description files (or job
// posting URLs) into cleaned plain text for the extraction pipeline.
package ingestion

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrUnsupportedFormat wraps the file extension that no reader claims.
type ErrUnsupportedFormat struct {
	Extension string
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Extension)
}

var spaceRuns = regexp.MustCompile(`\s+`)

// CleanText normalizes text content while preserving line structure, which
// downstream section detection depends on. Line endings are unified, trailing
// whitespace trimmed, space runs collapsed, and blank-line runs reduced.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = removeExcessiveBlankLines(result)
	return strings.TrimSpace(result)
}

// cleanLine trims a single line and collapses internal space runs,
// preserving bullet markers.
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}

	// Keep bullet markers intact so term extraction sees the text after them.
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") {
		marker := trimmed[:2]
		rest := spaceRuns.ReplaceAllString(strings.TrimSpace(trimmed[2:]), " ")
		return marker + rest
	}

	return spaceRuns.ReplaceAllString(trimmed, " ")
}

var blankRuns = regexp.MustCompile(`\n\n\n+`)

// removeExcessiveBlankLines reduces consecutive blank lines to at most one.
func removeExcessiveBlankLines(content string) string {
	return blankRuns.ReplaceAllString(content, "\n\n")
}

// ReadUpload extracts text from an uploaded file by extension. A non-empty
// warning flags degraded extraction (for example a likely scanned PDF);
// warnings are advisory and never errors.
func ReadUpload(fileName string, fileBytes []byte) (text string, warning string, err error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return readPDF(fileBytes)
	case ".docx":
		text, err = readDOCX(fileBytes)
		return text, "", err
	case ".txt", ".text", ".md", "":
		return CleanText(string(fileBytes)), "", nil
	default:
		return "", "", &ErrUnsupportedFormat{Extension: filepath.Ext(fileName)}
	}
}

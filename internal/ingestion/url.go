package ingestion

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/ats-tracker/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails.
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails.
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// IngestFromURL fetches a job posting page, extracts the main text with
// platform-specific selectors, and returns it cleaned along with metadata.
// When useBrowser is true and the HTTP fetch yields too little text, the
// page is re-rendered in a headless browser (SPA job boards).
func IngestFromURL(ctx context.Context, urlStr string, useBrowser bool, logger *zap.Logger) (string, *Metadata, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	platform := fetch.DetectPlatform(urlStr)
	logger.Debug("ingesting job posting from URL",
		zap.String("url", urlStr),
		zap.String("platform", string(platform)),
	)

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	logger.Debug("fetched HTML", zap.Int("bytes", len(result.HTML)))

	text, err := fetch.ExtractMainText(result.HTML, platform.ContentSelectors(), platform.NoiseSelectors()...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	if useBrowser && fetch.ShouldUseBrowser(text) {
		logger.Debug("content too short, falling back to browser rendering",
			zap.Int("chars", len(text)),
			zap.Int("min", fetch.MinContentLength),
		)

		browserHTML, browserErr := fetch.Browser(ctx, urlStr)
		if browserErr != nil {
			// Keep the HTTP content when the browser path fails.
			logger.Warn("browser rendering failed, using HTTP content", zap.Error(browserErr))
		} else {
			rendered, renderErr := fetch.ExtractMainText(browserHTML, platform.ContentSelectors(), platform.NoiseSelectors()...)
			if renderErr == nil && len(rendered) > len(text) {
				text = rendered
			}
		}
	}

	cleaned := CleanText(text)
	metadata := NewMetadata(cleaned, urlStr)
	metadata.Platform = string(platform)

	return cleaned, metadata, nil
}

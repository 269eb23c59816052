package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>Job posting</body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Job posting")
}

func TestURL_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not a url", nil)

	assert.Error(t, err)
}

func TestURL_SendsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	_, err := URL(context.Background(), server.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, gotUA)
}

func TestExtractMainText_ContentSelectorWins(t *testing.T) {
	html := `<html><body>
		<nav>Navigation junk</nav>
		<div class="job-description">Senior Go Engineer needed</div>
		<footer>Footer junk</footer>
	</body></html>`

	text, err := ExtractMainText(html, []string{".job-description"})

	require.NoError(t, err)
	assert.Contains(t, text, "Senior Go Engineer")
	assert.NotContains(t, text, "Navigation junk")
	assert.NotContains(t, text, "Footer junk")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting text</p></body></html>`

	text, err := ExtractMainText(html, []string{".does-not-exist"})

	require.NoError(t, err)
	assert.Contains(t, text, "Plain posting text")
}

func TestExtractMainText_NoiseSelectorsRemoved(t *testing.T) {
	html := `<html><body><div class="posting">Role details<div class="apply-widget">Apply now</div></div></body></html>`

	text, err := ExtractMainText(html, []string{".posting"}, ".apply-widget")

	require.NoError(t, err)
	assert.Contains(t, text, "Role details")
	assert.NotContains(t, text, "Apply now")
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url  string
		want Platform
	}{
		{"https://boards.greenhouse.io/acme/jobs/123", PlatformGreenhouse},
		{"https://jobs.lever.co/acme/abc", PlatformLever},
		{"https://acme.wd1.myworkdayjobs.com/careers/job/123", PlatformWorkday},
		{"https://example.com/careers/123", PlatformUnknown},
		{"://bad", PlatformUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectPlatform(tt.url), tt.url)
	}
}

func TestContentSelectors_EndWithGenericFallbacks(t *testing.T) {
	selectors := PlatformGreenhouse.ContentSelectors()

	assert.Contains(t, selectors, "main")
	assert.Equal(t, ".job__description.body", selectors[0])
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("too short"))
	assert.False(t, ShouldUseBrowser(strings.Repeat("a", MinContentLength)))
}

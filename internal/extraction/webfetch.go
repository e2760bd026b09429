package extraction

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/job-match-agent/internal/fetch"
)

// WebFetcher is the production PageFetcher. It fetches allowed ATS pages
// over plain HTTP and optionally falls back to headless-browser rendering
// when the page looks JavaScript-rendered.
type WebFetcher struct {
	// UseBrowser enables the chromedp fallback for SPA pages.
	UseBrowser bool

	// BrowserTimeout bounds a single browser render. Zero means
	// fetch.DefaultTimeout.
	BrowserTimeout time.Duration
}

// PageText fetches a job posting URL and returns its readable text.
// URLs outside the allowed ATS hosts are rejected without a request.
func (w *WebFetcher) PageText(ctx context.Context, url string) (string, error) {
	if !fetch.IsAllowed(url) {
		return "", fmt.Errorf("URL host is not a supported job board: %s", url)
	}

	platform := fetch.DetectPlatform(url)
	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	result, err := fetch.URL(ctx, url, nil)
	if err != nil {
		return "", err
	}

	text, err := fetch.ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", err
	}

	if w.UseBrowser && fetch.ShouldUseBrowser(text) {
		timeout := w.BrowserTimeout
		if timeout <= 0 {
			timeout = fetch.DefaultTimeout
		}
		html, err := fetch.WithBrowser(ctx, url, timeout)
		if err != nil {
			// Keep whatever the plain fetch produced.
			return text, nil
		}
		rendered, err := fetch.ExtractMainText(html, contentSelectors, noiseSelectors...)
		if err == nil && len(rendered) > len(text) {
			return rendered, nil
		}
	}

	return text, nil
}

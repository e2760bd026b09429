// Package fetch - platform.go provides ATS platform detection and
// platform-specific content selectors. Only pre-vetted ATS hosts are
// fetched; everything else is rejected before a request is made.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job board platform.
type Platform string

const (
	// PlatformLever is the Lever ATS platform
	PlatformLever Platform = "lever"
	// PlatformGreenhouse is the Greenhouse ATS platform
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformAshby is the AshbyHQ ATS platform
	PlatformAshby Platform = "ashby"
	// PlatformWorkable is the Workable ATS platform
	PlatformWorkable Platform = "workable"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the job board platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	switch {
	case strings.Contains(host, "lever.co"):
		return PlatformLever
	case strings.Contains(host, "greenhouse.io"):
		return PlatformGreenhouse
	case strings.Contains(host, "ashbyhq.com"):
		return PlatformAshby
	case strings.Contains(host, "workable.com"):
		return PlatformWorkable
	default:
		return PlatformUnknown
	}
}

// IsAllowed reports whether the URL belongs to a supported ATS host.
func IsAllowed(urlStr string) bool {
	return DetectPlatform(urlStr) != PlatformUnknown
}

// PlatformContentSelectors returns content selectors for a specific platform.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformLever:
		return []string{
			".posting-page",
			".posting-description",
			".section-wrapper.page-full-width",
			".content",
		}
	case PlatformGreenhouse:
		return []string{
			".job__description.body",
			".job__description",
			".job-description__content",
			"#content",
		}
	case PlatformAshby:
		return []string{
			"[class*='_descriptionText']",
			".ashby-job-posting-content",
			"main",
		}
	case PlatformWorkable:
		return []string{
			"[data-ui='job-description']",
			".job-description",
			"main",
		}
	default:
		return jobPostingSelectors()
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a platform.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		"form",
		"#application-form",
		".application-form",
		".apply-button-container",
		".voluntary-disclosure",
		".eeo-statement",
		".legal-disclosure",
		".social-share",
		".cookie-consent",
		".gdpr-notice",
	}

	switch platform {
	case PlatformLever:
		return append(common, ".apply-section", ".posting-apply")
	case PlatformGreenhouse:
		return append(common, ".application--wrapper", ".voluntary-self-id", ".post-apply")
	case PlatformWorkable:
		return append(common, "[data-ui='application-form']")
	default:
		return common
	}
}

// jobPostingSelectors returns generic selectors for job board pages.
func jobPostingSelectors() []string {
	return []string{
		".job-description",
		"#job-description",
		".posting-content",
		".job-details",
		"main",
		"article",
		".content",
		"#content",
	}
}

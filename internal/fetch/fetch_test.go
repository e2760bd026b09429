package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const leverHTML = `<html>
<head><script>analytics()</script></head>
<body>
  <nav>Jobs | About</nav>
  <div class="posting-page">
    <h2>Backend Engineer</h2>
    <div class="posting-description">Build and operate APIs in Go.</div>
    <div class="posting-apply"><form>Apply here</form></div>
  </div>
  <footer>Lever Inc.</footer>
</body>
</html>`

func TestExtractMainText(t *testing.T) {
	text, err := ExtractMainText(leverHTML,
		PlatformContentSelectors(PlatformLever),
		PlatformNoiseSelectors(PlatformLever)...)
	require.NoError(t, err)

	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "Build and operate APIs in Go.")
	// nav, footer, script, and the apply form are stripped
	assert.NotContains(t, text, "Jobs | About")
	assert.NotContains(t, text, "Lever Inc.")
	assert.NotContains(t, text, "analytics")
	assert.NotContains(t, text, "Apply here")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	text, err := ExtractMainText("<html><body><p>plain page</p></body></html>",
		[]string{".does-not-exist"})
	require.NoError(t, err)
	assert.Equal(t, "plain page", text)
}

func TestURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer ts.Close()

	result, err := URL(context.Background(), ts.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "ok")
}

func TestURL_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := URL(context.Background(), ts.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not a url", nil)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
}

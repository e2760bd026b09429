package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	c, err := LoadDefault()
	require.NoError(t, err)
	require.NotEmpty(t, c.Categories)

	def := c.Default()
	require.NotNil(t, def)
	assert.Equal(t, DefaultKey, def.Key)
	assert.Contains(t, def.Tags, WildcardTag)
	assert.NotEmpty(t, def.URLs)
}

func TestLoadDefault_PreservesDeclarationOrder(t *testing.T) {
	c, err := LoadDefault()
	require.NoError(t, err)

	// "data" is declared first and "default" last; tie-breaking in the
	// selector depends on this ordering.
	assert.Equal(t, "data", c.Categories[0].Key)
	assert.Equal(t, DefaultKey, c.Categories[len(c.Categories)-1].Key)
}

func TestLookup_CaseInsensitive(t *testing.T) {
	c, err := LoadDefault()
	require.NoError(t, err)

	cat, ok := c.Lookup("  Python ")
	require.True(t, ok)
	assert.Equal(t, "python", cat.Key)

	_, ok = c.Lookup("no-such-category")
	assert.False(t, ok)
}

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job_map.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingDefaultRejected(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"category": "python", "tags": ["python"], "urls": ["https://jobs.lever.co/a/1"]}
	]`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default")
}

func TestLoad_EmptyURLsRejected(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"category": "python", "tags": ["python"], "urls": []},
		{"category": "default", "tags": ["*"], "urls": ["https://jobs.lever.co/d/1"]}
	]`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no URLs")
}

func TestLoad_DuplicateCategoryRejected(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"category": "python", "tags": ["python"], "urls": ["https://jobs.lever.co/a/1"]},
		{"category": "Python", "tags": ["py"], "urls": ["https://jobs.lever.co/a/2"]},
		{"category": "default", "tags": ["*"], "urls": ["https://jobs.lever.co/d/1"]}
	]`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestDefaultStopTerms(t *testing.T) {
	stop, err := DefaultStopTerms()
	require.NoError(t, err)
	assert.Greater(t, stop.Len(), 0)

	assert.True(t, stop.Contains("Communication"))
	assert.True(t, stop.Contains("  teamwork "))
	assert.False(t, stop.Contains("kubernetes"))
}

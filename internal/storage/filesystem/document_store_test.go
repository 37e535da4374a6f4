package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fetchedhq/fetched/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentStore_Read(t *testing.T) {
	t.Run("reads document fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "get-user")
		content := `{
  "method": "GET",
  "url": "https://api.example.com/users/1",
  "headers": {"Accept": "application/json"},
  "query_parameters": {"page": "2"},
  "body_type": "json",
  "body": "",
  "options": {"validate_ssl": false, "follow_redirect": true, "attach_cookies": false, "proxy": "http://proxy:3128", "timeout": 2}
}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		doc, err := NewDocumentStore().Read(path)
		require.NoError(t, err)
		assert.Equal(t, "GET", doc.Method)
		assert.Equal(t, "https://api.example.com/users/1", doc.URL)
		assert.Equal(t, "application/json", doc.Headers["Accept"])
		assert.Equal(t, "2", doc.QueryParameters["page"])
		assert.False(t, doc.Options.ValidateSSL)
		assert.Equal(t, "http://proxy:3128", doc.Options.Proxy)
		assert.Equal(t, 2.0, doc.Options.Timeout)
	})

	t.Run("normalizes missing maps", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bare")
		require.NoError(t, os.WriteFile(path, []byte(`{"method":"GET"}`), 0644))

		doc, err := NewDocumentStore().Read(path)
		require.NoError(t, err)
		assert.NotNil(t, doc.Headers)
		assert.NotNil(t, doc.QueryParameters)
	})

	t.Run("accepts free-form metadata", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tagged")
		content := `{"method":"GET","url":"https://api.example.com","metadata":{"id":"abc","created":1700000000,"tags":["a"],"owner":{"team":"core"}}}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		store := NewDocumentStore()
		doc, err := store.Read(path)
		require.NoError(t, err)
		assert.Equal(t, "abc", doc.ID())
		assert.Equal(t, 1700000000.0, doc.Metadata["created"])
		assert.Equal(t, []any{"a"}, doc.Metadata["tags"])

		doc.SetHeader("Accept", "text/plain")
		require.NoError(t, store.Write(path, doc))

		loaded, err := store.Read(path)
		require.NoError(t, err)
		assert.Equal(t, "text/plain", loaded.Headers["Accept"])
		assert.Equal(t, map[string]any{"team": "core"}, loaded.Metadata["owner"])
	})

	t.Run("returns parse error for malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken")
		require.NoError(t, os.WriteFile(path, []byte(`{"method": "GET",}`), 0644))

		_, err := NewDocumentStore().Read(path)
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("returns not found for missing file", func(t *testing.T) {
		_, err := NewDocumentStore().Read(filepath.Join(t.TempDir(), "missing"))
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDocumentStore_Write(t *testing.T) {
	t.Run("persists headers", func(t *testing.T) {
		store := NewDocumentStore()
		path := filepath.Join(t.TempDir(), "req")

		doc := core.NewRequestDocument()
		doc.SetHeader("Content-Type", "application/json")
		require.NoError(t, store.Write(path, doc))

		loaded, err := store.Read(path)
		require.NoError(t, err)
		assert.Equal(t, "application/json", loaded.Headers["Content-Type"])
		assert.Equal(t, doc.ID(), loaded.ID())
	})

	t.Run("writes indented json", func(t *testing.T) {
		store := NewDocumentStore()
		path := filepath.Join(t.TempDir(), "req")

		require.NoError(t, store.Write(path, core.NewRequestDocument()))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "\n  \"method\": \"POST\"")
	})

	t.Run("rejects nil document", func(t *testing.T) {
		err := NewDocumentStore().Write(filepath.Join(t.TempDir(), "req"), nil)
		assert.Error(t, err)
	})
}

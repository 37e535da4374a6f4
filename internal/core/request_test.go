package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestDocument(t *testing.T) {
	t.Run("uses POST template", func(t *testing.T) {
		doc := NewRequestDocument()
		assert.Equal(t, "POST", doc.Method)
		assert.Equal(t, DefaultURL, doc.URL)
		assert.Equal(t, "json", doc.BodyType)
		assert.Empty(t, doc.Headers)
		assert.Empty(t, doc.QueryParameters)
	})

	t.Run("sets default options", func(t *testing.T) {
		doc := NewRequestDocument()
		assert.True(t, doc.Options.ValidateSSL)
		assert.True(t, doc.Options.FollowRedirect)
		assert.True(t, doc.Options.AttachCookies)
		assert.Empty(t, doc.Options.Proxy)
		assert.Equal(t, 0.5, doc.Options.Timeout)
	})

	t.Run("assigns unique ids", func(t *testing.T) {
		a := NewRequestDocument()
		b := NewRequestDocument()
		require.NotEmpty(t, a.ID())
		assert.NotEqual(t, a.ID(), b.ID())
	})
}

func TestRequestDocument_SetHeader(t *testing.T) {
	t.Run("inserts into nil map", func(t *testing.T) {
		doc := &RequestDocument{}
		doc.SetHeader("Accept", "text/plain")
		assert.Equal(t, "text/plain", doc.Headers["Accept"])
	})

	t.Run("overwrites existing key", func(t *testing.T) {
		doc := NewRequestDocument()
		doc.SetHeader("Accept", "text/plain")
		doc.SetHeader("Accept", "application/json")
		assert.Len(t, doc.Headers, 1)
		assert.Equal(t, "application/json", doc.Headers["Accept"])
	})
}

func TestRequestDocument_SetQueryParameter(t *testing.T) {
	doc := &RequestDocument{}
	doc.SetQueryParameter("page", "2")
	assert.Equal(t, map[string]string{"page": "2"}, doc.QueryParameters)
}

func TestRequestDocument_ID(t *testing.T) {
	t.Run("empty without metadata", func(t *testing.T) {
		doc := &RequestDocument{}
		assert.Empty(t, doc.ID())
	})

	t.Run("ignores a non-string id", func(t *testing.T) {
		doc := &RequestDocument{Metadata: map[string]any{"id": 42.0}}
		assert.Empty(t, doc.ID())
	})
}

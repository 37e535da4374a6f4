package filesystem

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fetchedhq/fetched/internal/core"
)

// ErrParse is returned when a request file does not contain a valid document.
var ErrParse = errors.New("malformed request document")

// DocumentStore reads and writes request documents as pretty-printed JSON.
type DocumentStore struct {
	indent string
}

// NewDocumentStore creates a document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{indent: "  "}
}

// Read parses the request document at path.
func (s *DocumentStore) Read(path string) (*core.RequestDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read request file: %w", err)
	}

	var doc core.RequestDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	doc.Normalize()

	return &doc, nil
}

// Write replaces the request document at path.
func (s *DocumentStore) Write(path string, doc *core.RequestDocument) error {
	if doc == nil {
		return errors.New("document cannot be nil")
	}

	content, err := json.MarshalIndent(doc, "", s.indent)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	content = append(content, '\n')

	if err := os.WriteFile(path, content, FilePermissions); err != nil {
		return fmt.Errorf("failed to write request file: %w", err)
	}
	return nil
}

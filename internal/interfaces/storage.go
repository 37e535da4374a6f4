package interfaces

import (
	"context"

	"github.com/fetchedhq/fetched/internal/core"
)

// CollectionStore manages collections (directories) and requests (files)
// under a fixed data root.
type CollectionStore interface {
	// ListCollections returns the names of all top-level collections.
	ListCollections(ctx context.Context) ([]string, error)

	// ListChildren returns the request names inside a collection.
	ListChildren(ctx context.Context, collection string) ([]string, error)

	// CreateCollection creates an empty collection.
	CreateCollection(ctx context.Context, name string) error

	// CreateRequest creates a request file populated with the default template.
	CreateRequest(ctx context.Context, collection, name string) error

	// DeleteCollection removes a collection and everything inside it.
	DeleteCollection(ctx context.Context, name string) error

	// DeleteRequest removes a single request file.
	DeleteRequest(ctx context.Context, collection, name string) error

	// ResolvePath returns the file path of a request.
	ResolvePath(collection, name string) string
}

// DocumentStore reads and writes individual request documents.
type DocumentStore interface {
	// Read parses the request document at path.
	Read(path string) (*core.RequestDocument, error)

	// Write replaces the request document at path.
	Write(path string, doc *core.RequestDocument) error
}

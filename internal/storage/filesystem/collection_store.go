package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fetchedhq/fetched/internal/core"
)

const (
	// DirPermissions is the mode used for collection directories.
	DirPermissions = 0755
	// FilePermissions is the mode used for request files.
	FilePermissions = 0644
)

var (
	// ErrNotFound is returned when a collection or request does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidName is returned for names that cannot be used as a single path element.
	ErrInvalidName = errors.New("invalid name")
	// ErrExists is returned when creating something that is already on disk.
	ErrExists = errors.New("already exists")
)

// CollectionStore manages collection directories and request files on disk.
type CollectionStore struct {
	basePath  string
	documents *DocumentStore
}

// NewCollectionStore creates a new filesystem-based collection store.
func NewCollectionStore(basePath string) (*CollectionStore, error) {
	if err := os.MkdirAll(basePath, DirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &CollectionStore{
		basePath:  basePath,
		documents: NewDocumentStore(),
	}, nil
}

// BasePath returns the data root.
func (s *CollectionStore) BasePath() string {
	return s.basePath
}

// ListCollections returns the names of all directories under the data root.
func (s *CollectionStore) ListCollections(ctx context.Context) ([]string, error) {
	return s.listEntries(s.basePath, true)
}

// ListChildren returns the names of all files inside a collection.
func (s *CollectionStore) ListChildren(ctx context.Context, collection string) ([]string, error) {
	if err := ValidateName(collection); err != nil {
		return nil, err
	}
	return s.listEntries(s.collectionPath(collection), false)
}

// CreateCollection creates a new collection directory.
func (s *CollectionStore) CreateCollection(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	path := s.collectionPath(name)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("collection %q: %w", name, ErrExists)
	}

	if err := os.Mkdir(path, DirPermissions); err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}
	return nil
}

// CreateRequest writes a new request file with the default template.
func (s *CollectionStore) CreateRequest(ctx context.Context, collection, name string) error {
	if err := ValidateName(collection); err != nil {
		return err
	}
	if err := ValidateName(name); err != nil {
		return err
	}

	dir := s.collectionPath(collection)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("collection %q: %w", collection, ErrNotFound)
	}

	path := s.ResolvePath(collection, name)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("request %q: %w", name, ErrExists)
	}

	if err := s.documents.Write(path, core.NewRequestDocument()); err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return nil
}

// DeleteCollection removes a collection directory and its requests.
func (s *CollectionStore) DeleteCollection(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	path := s.collectionPath(name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("collection %q: %w", name, ErrNotFound)
	}

	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	return nil
}

// DeleteRequest removes a request file.
func (s *CollectionStore) DeleteRequest(ctx context.Context, collection, name string) error {
	if err := ValidateName(collection); err != nil {
		return err
	}
	if err := ValidateName(name); err != nil {
		return err
	}

	path := s.ResolvePath(collection, name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("request %q: %w", name, ErrNotFound)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete request: %w", err)
	}
	return nil
}

// ResolvePath returns the file path of a request inside a collection.
func (s *CollectionStore) ResolvePath(collection, name string) string {
	return filepath.Join(s.basePath, collection, name)
}

// ValidateName reports whether name can be used as a collection or request name.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	return nil
}

// Internal helpers

func (s *CollectionStore) collectionPath(name string) string {
	return filepath.Join(s.basePath, name)
}

func (s *CollectionStore) listEntries(dir string, dirs bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", dir, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() != dirs {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return names, nil
}

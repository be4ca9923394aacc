// Package filestore is the flat-file JSON fallback store: one pretty-printed
// document per id under <dataDir>/<collection>/<id>.json. Absence is reported,
// never an error. There is no locking; concurrent writers to the same id race
// at the filesystem level and the last write wins.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store reads and writes per-collection JSON documents under a root directory.
type Store struct {
	dataDir string
}

// NewStore creates a Store rooted at dataDir. Collection directories are
// created lazily on first save.
func NewStore(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

func (s *Store) docPath(collection, id string) string {
	return filepath.Join(s.dataDir, collection, id+".json")
}

// Save writes v merged with {id, updatedAt} as pretty-printed JSON.
func (s *Store) Save(collection, id string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal document %s/%s: %w", collection, id, err)
	}
	doc := make(map[string]interface{})
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to flatten document %s/%s: %w", collection, id, err)
	}
	doc["id"] = id
	doc["updatedAt"] = time.Now().UTC().Format(time.RFC3339)

	pretty, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document %s/%s: %w", collection, id, err)
	}
	if err := os.MkdirAll(filepath.Join(s.dataDir, collection), 0o755); err != nil {
		return fmt.Errorf("failed to create collection directory %s: %w", collection, err)
	}
	return os.WriteFile(s.docPath(collection, id), pretty, 0o644)
}

// Get decodes the stored document into out. The second return is false when
// the document does not exist.
func (s *Store) Get(collection, id string, out interface{}) (bool, error) {
	raw, err := os.ReadFile(s.docPath(collection, id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read document %s/%s: %w", collection, id, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("failed to decode document %s/%s: %w", collection, id, err)
	}
	return true, nil
}

// GetAll returns the raw bytes of every *.json document in the collection.
// A missing collection directory yields an empty result.
func (s *Store) GetAll(collection string) ([][]byte, error) {
	dir := filepath.Join(s.dataDir, collection)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}
	var docs [][]byte
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read document %s/%s: %w", collection, entry.Name(), err)
		}
		docs = append(docs, raw)
	}
	return docs, nil
}

// Delete removes the document and reports whether it existed.
func (s *Store) Delete(collection, id string) (bool, error) {
	err := os.Remove(s.docPath(collection, id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete document %s/%s: %w", collection, id, err)
	}
	return true, nil
}

// Find filters the raw documents of a collection with a predicate.
func (s *Store) Find(collection string, predicate func(raw []byte) bool) ([][]byte, error) {
	docs, err := s.GetAll(collection)
	if err != nil {
		return nil, err
	}
	var matched [][]byte
	for _, raw := range docs {
		if predicate(raw) {
			matched = append(matched, raw)
		}
	}
	return matched, nil
}

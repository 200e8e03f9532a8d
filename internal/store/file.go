package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBackend persists each collection as a JSON file in a data
// directory, one file per collection, rewritten wholesale on every save.
type FileBackend struct {
	dir string
}

// NewFileBackend creates a FileBackend rooted at dir, creating the
// directory if needed.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dir, err)
	}
	return &FileBackend{dir: dir}, nil
}

// Load reads the collection file. A missing file reports
// ErrNotInitialized so the store can seed it.
func (b *FileBackend) Load(collection Collection) ([]byte, error) {
	data, err := os.ReadFile(b.path(collection))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotInitialized
		}
		return nil, err
	}
	return data, nil
}

// Save atomically replaces the collection file: the document is written
// to a temp file in the same directory and renamed over the target, so
// readers never observe a partially written file.
func (b *FileBackend) Save(collection Collection, data []byte) error {
	tmp, err := os.CreateTemp(b.dir, string(collection)+"-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, b.path(collection)); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

func (b *FileBackend) path(collection Collection) string {
	return filepath.Join(b.dir, string(collection)+".json")
}

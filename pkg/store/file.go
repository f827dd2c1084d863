package store

import (
	"context"
	"os"
	"path/filepath"

	"github.com/flowcanvas/flowcanvas/pkg/errors"
)

// FileStore keeps the snapshot blob in a single file, written atomically
// via a temp file and rename.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store. The parent directory is
// created if missing.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New(errors.ErrCodeInvalidPath, "file store path must not be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "creating store directory")
	}
	return &FileStore{path: path}, nil
}

// Load reads the snapshot file. A missing file is a clean "nothing saved".
func (s *FileStore) Load(ctx context.Context) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeStore, err, "reading %s", s.path)
	}
	return data, true, nil
}

// Save writes the blob atomically: temp file in the same directory, then
// rename over the target.
func (s *FileStore) Save(ctx context.Context, data []byte) error {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "writing %s", tmp)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeStore, err, "replacing %s", s.path)
	}
	return nil
}

// Close does nothing for a file store.
func (s *FileStore) Close() error { return nil }

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)

package cart

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileSlotStore keeps one JSON file per slot key under a data directory.
// It covers single-node deployments that run without redis. Keys are
// session identifiers (uuids), so they are safe as file names.
type FileSlotStore struct {
	dir string
}

func NewFileSlotStore(dir string) (*FileSlotStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cart data dir: %w", err)
	}
	return &FileSlotStore{dir: dir}, nil
}

func (f *FileSlotStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileSlotStore) Read(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (f *FileSlotStore) Write(_ context.Context, key string, data []byte) error {
	return os.WriteFile(f.path(key), data, 0o644)
}

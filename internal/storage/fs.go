package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

type FSStore struct{ base string }

func NewFSStore(base string) (*FSStore, error) {
	if base == "" {
		base = "./data"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{base: base}, nil
}

func (s *FSStore) Put(fileName string, data []byte) error {
	if fileName == "" {
		return errors.New("empty file name")
	}
	dst := filepath.Join(s.base, filepath.Clean(fileName))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}

func (s *FSStore) FS() fs.FS { return os.DirFS(s.base) }

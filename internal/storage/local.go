package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage implements DocumentStorage on the local filesystem.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

func (s *LocalStorage) Save(fileName string, reader io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	key := uuid.New().String() + ext

	file, err := os.Create(filepath.Join(s.dir, key))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return key, nil
}

func (s *LocalStorage) Open(key string) (io.ReadCloser, error) {
	// Keys are uuid-with-extension; reject anything that looks like a path.
	if key != filepath.Base(key) {
		return nil, fmt.Errorf("invalid storage key %q", key)
	}
	file, err := os.Open(filepath.Join(s.dir, key))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

func (s *LocalStorage) Delete(key string) error {
	if key != filepath.Base(key) {
		return fmt.Errorf("invalid storage key %q", key)
	}
	err := os.Remove(filepath.Join(s.dir, key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

const dirPerms = 0o755

// FileBackend keeps the document in a single JSON file. Writes go through a
// temp file and rename, so readers never observe a partial document.
type FileBackend struct {
	path string
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (b *FileBackend) Path() string {
	return b.path
}

func (b *FileBackend) Read(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if os.IsNotExist(err) {
		return nil, ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%v): %w", b.path, err)
	}
	return data, nil
}

func (b *FileBackend) Write(ctx context.Context, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(b.path), dirPerms); err != nil {
		return fmt.Errorf("os.MkdirAll(%v): %w", filepath.Dir(b.path), err)
	}
	if err := atomic.WriteFile(b.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("atomic.WriteFile(%v): %w", b.path, err)
	}
	return nil
}

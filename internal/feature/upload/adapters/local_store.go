// Package adapters はuploadフィーチャーの保存先実装を提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"cleanneat_backend/internal/feature/upload/usecase"
)

type localStore struct {
	dir string
}

var _ usecase.FileStore = (*localStore)(nil)

// NewLocalStore は dir 配下にファイルを保存します。dir は初回書き込み時に作成されます。
func NewLocalStore(dir string) *localStore {
	return &localStore{dir: dir}
}

func (s *localStore) Put(_ context.Context, name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write upload: %w", err)
	}
	return nil
}

func (s *localStore) Stat(_ context.Context, name string) (string, error) {
	path := filepath.Join(s.dir, name)
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", usecase.ErrFileNotFound
	}
	if err != nil {
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", usecase.ErrFileNotFound
	}
	return path, nil
}

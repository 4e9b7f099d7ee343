// Package storage is the file-storage port for the analysis pipeline. The
// upload flow writes case files under a root directory; the pipeline only
// ever reads them back by stored path.
package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/bart800/Denham-cms-sub000/pkg/logger_i"
)

type Store interface {
	Download(ctx context.Context, path string) ([]byte, error)
}

var ErrOutsideRoot = errors.New("storage path escapes the storage root")

type LocalStore struct {
	root   string
	logger *logger_i.Logger
}

func NewLocalStore(root string) *LocalStore {
	return &LocalStore{
		root:   root,
		logger: logger_i.NewLogger("LocalStorage"),
	}
}

func (s *LocalStore) Download(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	full := filepath.Join(s.root, filepath.Clean("/"+path))
	if !strings.HasPrefix(full, filepath.Clean(s.root)+string(os.PathSeparator)) {
		s.logger.Warn("rejected storage path", "path", path)
		return nil, ErrOutsideRoot
	}

	content, err := os.ReadFile(full)
	if err != nil {
		s.logger.Error("storage read failed", "path", path, "error", err)
		return nil, err
	}
	return content, nil
}

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kulnaak/Data-Manipulator-Web-App/internal/pkg/pkgerror"
)

// DiskStore keeps every file flat under a single root directory.
type DiskStore struct {
	root string
}

// NewDiskStore creates root when it does not exist yet.
func NewDiskStore(root string) (*DiskStore, error) {
	if root == "" {
		return nil, errors.New("store: empty root directory")
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("store: create root: %w", err)
	}

	return &DiskStore{root: root}, nil
}

func (s *DiskStore) Root() string {
	return s.root
}

// Save writes content to name, replacing any previous file.
func (s *DiskStore) Save(ctx context.Context, name string, content []byte) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("store: save %q: %w", name, err)
	}

	return nil
}

func (s *DiskStore) Open(ctx context.Context, name string) (io.ReadSeekCloser, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, pkgerror.ErrNotFound
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
		return nil, pkgerror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: stat %q: %w", name, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", name, err)
	}

	return f, nil
}

// path only accepts plain names that stay directly inside root.
func (s *DiskStore) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return "", fmt.Errorf("store: invalid name %q", name)
	}

	return filepath.Join(s.root, name), nil
}

package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DiskStore writes uploads below a local public directory. It mirrors a
// single-host deployment where the web server serves the directory directly.
type DiskStore struct {
	root string
}

// NewDiskStore creates the root directory if needed and returns the store.
func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, errors.Wrap(err, "failed to create storage root")
	}

	return &DiskStore{root: root}, nil
}

// Store writes the upload to disk and returns its relative path.
func (s *DiskStore) Store(_ context.Context, namespace string, up *Upload) (string, error) {
	if namespace == "" {
		return "", ErrEmptyNamespace
	}

	if up == nil || up.Reader == nil {
		return "", ErrEmptyUpload
	}

	name := objectName(namespace, up)
	target := filepath.Join(s.root, filepath.FromSlash(name))

	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return "", errors.Wrap(err, "failed to create namespace directory")
	}

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", errors.Wrap(err, "failed to create file")
	}

	_, err = io.Copy(f, up.Reader)
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		_ = os.Remove(target)

		return "", errors.Wrap(err, "failed to write file")
	}

	return name, nil
}

// Delete removes the file; a missing file is a no-op.
func (s *DiskStore) Delete(_ context.Context, path string) error {
	if path == "" {
		return nil
	}

	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(path)))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove file")
	}

	return nil
}

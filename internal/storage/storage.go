// Package storage persists uploaded files and hands back the relative paths
// stored on the owning database rows.
package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/uniuri"
)

var (
	// ErrEmptyNamespace is returned when a store call passes no namespace.
	ErrEmptyNamespace = errors.New("storage namespace cannot be empty")

	// ErrEmptyUpload is returned when a store call passes a nil upload.
	ErrEmptyUpload = errors.New("upload cannot be nil")
)

// Upload carries one uploaded file on its way into the object store.
type Upload struct {
	Filename    string // original client filename, only its extension is kept
	ContentType string
	Size        int64
	Reader      io.Reader
}

// Store is the object storage contract used for project images and the
// profile avatar. Deleting an absent path is a no-op, not an error.
type Store interface {
	// Store persists the upload under the namespace and returns the relative
	// path to record on the row, e.g. "projects/a1B2c3D4e5F6g7H8.png".
	Store(ctx context.Context, namespace string, up *Upload) (string, error)

	// Delete removes a previously stored path.
	Delete(ctx context.Context, path string) error
}

// objectName builds a random object name preserving the upload's extension.
func objectName(namespace string, up *Upload) string {
	ext := strings.ToLower(path.Ext(up.Filename))

	return path.Join(namespace, uniuri.New()+ext)
}

package ports

import (
	"context"
	"io"
)

// Object holds metadata for one stored model asset.
type Object struct {
	Name string
	Size int64
}

// AssetStore lists and moves binary 3D model assets kept in the object store.
// Folders are derived from the account role: clients own "clients/<email>/",
// shared collections live under fixed category folder names.
type AssetStore interface {
	List(ctx context.Context, folder string) ([]Object, error)
	Upload(ctx context.Context, folder, name string, body io.Reader) error
	Download(ctx context.Context, folder, name string) (io.ReadCloser, error)
	Delete(ctx context.Context, folder, name string) error
}

package service

import (
	"context"
	"io"
)

// DocumentStore persists uploaded reference documents in object storage.
type DocumentStore interface {
	// Upload stores the document body under the given file name and returns
	// the public address it can be fetched from.
	Upload(ctx context.Context, name string, body io.Reader) (string, error)

	// Remove deletes the document previously uploaded at the given address.
	Remove(ctx context.Context, address string) error
}

package service

import "context"

// StorageService abstracts cover-photo blob storage. Implementations
// return a public URL for a stored object and accept that same URL for
// deletion.
type StorageService interface {
	// Store writes the image bytes under a fresh key derived from the
	// original filename's extension and returns its public URL.
	Store(ctx context.Context, filename string, data []byte) (string, error)

	// Delete removes a previously stored image by its public URL.
	// Deleting an unknown URL is not an error.
	Delete(ctx context.Context, imageURL string) error
}

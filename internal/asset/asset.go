// Package asset talks to the remote object store that holds uploaded
// images and PDFs. Records only ever persist the reference (URL)
// returned by the store; everything else is addressed by namespace plus
// public id.
package asset

import (
	"context"
	"io"
	"log"
	"strings"
)

// File is one uploaded file on its way to the remote store.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// IsPDF reports whether the upload is a PDF document rather than an image.
func (f *File) IsPDF() bool {
	return f != nil && f.ContentType == "application/pdf"
}

// Store uploads and deletes remote assets grouped by namespace.
type Store interface {
	Upload(ctx context.Context, namespace string, file File) (string, error)
	Delete(ctx context.Context, namespace, publicID string) error
}

// PublicID derives the storage identifier from a persisted reference:
// the final path segment with everything from the first dot stripped.
func PublicID(reference string) string {
	trimmed := strings.TrimSpace(reference)
	if trimmed == "" {
		return ""
	}
	if idx := strings.IndexAny(trimmed, "?#"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	if idx := strings.Index(trimmed, "."); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return trimmed
}

// Replace uploads file into namespace and returns the new reference,
// first issuing a best-effort delete of the asset behind current. A nil
// file is a no-op and returns current unchanged. Delete failures are
// logged and never abort the replacement; losing an orphaned object is
// preferred over failing the caller's write.
func Replace(ctx context.Context, store Store, current string, file *File, namespace string) (string, error) {
	if file == nil {
		return current, nil
	}

	if id := PublicID(current); id != "" {
		if err := store.Delete(ctx, namespace, id); err != nil {
			log.Printf("asset: failed to delete %s/%s: %v", namespace, id, err)
		}
	}

	return store.Upload(ctx, namespace, *file)
}

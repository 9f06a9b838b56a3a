// Package storage keeps uploaded document files, on local disk or in an S3 bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"orpheo-api/app/server/constants"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("object not found")

type Storage interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Remove deletes the object; removing a missing object is not an error.
	Remove(ctx context.Context, key string) error
}

// NewDocumentKey returns a fresh object key such as documents/2024/05/<uuid>.pdf.
func NewDocumentKey(now time.Time, ext string) string {
	return fmt.Sprintf("%s%04d/%02d/%s%s", constants.DocumentKeyPrefix, now.Year(), now.Month(), uuid.NewString(), strings.ToLower(ext))
}

// cleanKey rejects keys that would escape the storage root.
func cleanKey(key string) (string, error) {
	if key == "" || strings.Contains(key, `\`) {
		return "", fmt.Errorf("invalid key %q", key)
	}
	cleaned := path.Clean("/" + key)[1:]
	if cleaned == "" || cleaned != key {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return cleaned, nil
}

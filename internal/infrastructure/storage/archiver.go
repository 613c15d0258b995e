package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// ObjectStore is the subset of MinIOClient used for exports
type ObjectStore interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
	ListFiles(ctx context.Context, prefix string) ([]string, error)
}

// ArchivedExport is one stored export
type ArchivedExport struct {
	Key      string `json:"key"`
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}

// ExportArchiver stores exported minutes, retrying uploads with exponential backoff
type ExportArchiver struct {
	store     ObjectStore
	urlExpiry time.Duration

	// NewBackOff builds the retry policy for one upload
	NewBackOff func() backoff.BackOff
}

// NewExportArchiver creates an archiver on top of an object store
func NewExportArchiver(store ObjectStore) *ExportArchiver {
	return &ExportArchiver{
		store:     store,
		urlExpiry: time.Hour,
		NewBackOff: func() backoff.BackOff {
			bo := backoff.NewExponentialBackOff()
			bo.InitialInterval = 500 * time.Millisecond
			bo.MaxInterval = 5 * time.Second
			bo.MaxElapsedTime = 30 * time.Second
			return bo
		},
	}
}

// Archive uploads content under key
func (a *ExportArchiver) Archive(ctx context.Context, key string, content []byte, contentType string) error {
	upload := func() error {
		return a.store.UploadFile(ctx, key, bytes.NewReader(content), int64(len(content)), contentType)
	}
	if err := backoff.Retry(upload, backoff.WithContext(a.NewBackOff(), ctx)); err != nil {
		return fmt.Errorf("archive %s: %w", key, err)
	}
	return nil
}

// List returns the archived exports under prefix with presigned download URLs
func (a *ExportArchiver) List(ctx context.Context, prefix string) ([]ArchivedExport, error) {
	keys, err := a.store.ListFiles(ctx, prefix)
	if err != nil {
		return nil, err
	}
	out := make([]ArchivedExport, 0, len(keys))
	for _, key := range keys {
		url, err := a.store.GetFileURL(ctx, key, a.urlExpiry)
		if err != nil {
			return nil, err
		}
		out = append(out, ArchivedExport{Key: key, FileName: path.Base(key), URL: url})
	}
	return out, nil
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/lshigami/scriptmark/config"
)

var ErrObjectNotFound = errors.New("object not found")

// BlobStore holds uploaded answer images, question images and marking
// principle PDFs. Keys are slash separated and relative to the store root.
type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error) // returns canonical key
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// NewBlobStore picks the backend configured by STORAGE_DRIVER.
func NewBlobStore(cfg *config.Config) (BlobStore, error) {
	switch cfg.Storage.Driver {
	case "", "fs":
		return NewFSStore(cfg.Storage.MediaRoot)
	case "oss":
		return NewOSSStore(cfg.Storage.OSS)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}

// NewKey builds a collision free key under dir keeping the original extension.
func NewKey(dir, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return path.Join(strings.Trim(dir, "/"), uuid.NewString()+ext)
}

// ReadAll reads a whole object.
func ReadAll(ctx context.Context, s BlobStore, key string) ([]byte, error) {
	rc, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func cleanKey(key string) (string, error) {
	k := path.Clean("/" + strings.TrimSpace(key))
	k = strings.TrimPrefix(k, "/")
	if k == "" || k == "." {
		return "", errors.New("empty key")
	}
	return k, nil
}

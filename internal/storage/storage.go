// Package storage puts uploaded images somewhere URL-addressable, so
// the category/product image fields (which stay free-text URLs) have a
// convenient producer. Local disk for dev, S3 for deployments.
package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
)

// MaxUploadSize bounds a single image upload.
const MaxUploadSize = 5 << 20

var ErrUnsupportedType = errors.New("unsupported image type")

type PutInput struct {
	Filename    string
	ContentType string
	Size        int64
}

type PutResult struct {
	Key string
	URL string
}

type Storage interface {
	Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error)
}

// imageExt returns the normalized extension for accepted image files,
// or an error for everything else.
func imageExt(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
		return ext, nil
	default:
		return "", ErrUnsupportedType
	}
}

// Package storage is a disk-backed object store for uploaded images.
// Objects land under <root>/<bucket>/<generated-name> and are served
// statically under <baseURL>/uploads/<bucket>/<generated-name>.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxImageSize is the upload limit, 5 MiB.
const MaxImageSize = 5 * 1024 * 1024

var (
	ErrInvalidType = errors.New("invalid image type: must be JPG, PNG, or WEBP")
	ErrTooLarge    = errors.New("image too large: must be less than 5MB")
)

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

type Store struct {
	Root    string // local directory objects are written under
	BaseURL string // prefix for public URLs, e.g. http://localhost:8000
}

func NewStore(root, baseURL string) *Store {
	return &Store{Root: root, BaseURL: strings.TrimRight(baseURL, "/")}
}

// Save validates and writes one object, returning its public URL.
// Validation order: type first, then size.
func (s *Store) Save(bucket, filename, contentType string, size int64, r io.Reader) (string, error) {
	if !allowedTypes[strings.ToLower(contentType)] {
		return "", ErrInvalidType
	}
	if size > MaxImageSize {
		return "", ErrTooLarge
	}

	name := generateName(filename)
	dir := filepath.Join(s.Root, bucket)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(r, MaxImageSize)); err != nil {
		return "", err
	}
	return s.PublicURL(bucket, name), nil
}

// SaveUpload stores a multipart file part.
func (s *Store) SaveUpload(bucket string, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return s.Save(bucket, fh.Filename, fh.Header.Get("Content-Type"), fh.Size, f)
}

// PublicURL resolves the URL an object is served under.
func (s *Store) PublicURL(bucket, name string) string {
	return fmt.Sprintf("%s/uploads/%s/%s", s.BaseURL, bucket, name)
}

// generateName builds a collision-resistant filename: millisecond timestamp
// plus a random token, keeping the original extension.
func generateName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), token, ext)
}

// Package upload stores profile pictures on local disk.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var ErrNotAnImage = errors.New("file must be a jpeg, jpg or png image")
var ErrFileTooLarge = errors.New("file exceeds the maximum allowed size")

const DefaultMaxBytes = 5 << 20 // 5 MiB

var allowedExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// Config controls where files land and how large they may be.
type Config struct {
	Dir      string
	MaxBytes int64
}

// Store writes uploaded images under a single directory, naming them with a
// millisecond timestamp plus the original extension.
type Store struct {
	dir      string
	maxBytes int64
}

// NewStore creates the upload directory if needed and returns the store.
func NewStore(cfg Config) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "uploads"
	}
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, maxBytes: maxBytes}, nil
}

// Save validates and persists one uploaded file, returning the stored
// relative path. Both the extension and the declared content type must look
// like an allowed image.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > s.maxBytes {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	wantType, ok := allowedExts[ext]
	if !ok {
		return "", ErrNotAnImage
	}
	if ct := fh.Header.Get("Content-Type"); ct != "" && ct != wantType {
		return "", ErrNotAnImage
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d%s", time.Now().UnixMilli(), ext)
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, s.maxBytes)); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}
	return path, nil
}

// internal/storage/local.go
package storage

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// BlobStore stores uploaded bytes and returns a publicly fetchable URL.
type BlobStore interface {
	Put(profileID, filename string, data []byte) (string, error)
}

// LocalStore writes blobs under a base directory served as static files.
type LocalStore struct {
	baseDir string
	baseURL string
}

// NewLocalStore creates the base directory if needed. baseURL is the
// public prefix the files are served under (e.g. http://host/uploads).
func NewLocalStore(baseDir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStore{baseDir: baseDir, baseURL: baseURL}, nil
}

// Put stores the bytes under a per-profile directory with a random name
// that keeps the original extension. Provider subjects contain characters
// like '|', so the directory is the hex encoding of the subject: hex
// survives URL percent-decoding unchanged, which keeps the returned URL
// and the path on disk in agreement when the file is served statically.
func (s *LocalStore) Put(profileID, filename string, data []byte) (string, error) {
	dir := hex.EncodeToString([]byte(profileID))
	name := uuid.NewString() + filepath.Ext(filename)

	if err := os.MkdirAll(filepath.Join(s.baseDir, dir), 0o755); err != nil {
		return "", fmt.Errorf("failed to create profile dir: %w", err)
	}

	path := filepath.Join(s.baseDir, dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write blob: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.baseURL, dir, name), nil
}

var _ BlobStore = (*LocalStore)(nil)

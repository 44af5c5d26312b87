// storage/storage.go - Blob storage for avatars and certificates
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// BlobStore is the upload-by-path / public-URL interface the handlers
// talk to. The production deployment can swap in an object-store backed
// implementation without touching call sites.
type BlobStore interface {
	Upload(path string, r io.Reader) (url string, err error)
	PublicURL(path string) string
}

// DiskStore keeps blobs on the local filesystem, served as static files
// under baseURL.
type DiskStore struct {
	root    string
	baseURL string
}

func NewDiskStore(root, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &DiskStore{root: root, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Upload writes the blob under the given path, creating parents as
// needed, and returns its public URL. Path traversal is rejected.
func (s *DiskStore) Upload(path string, r io.Reader) (string, error) {
	clean := filepath.Clean("/" + path)
	dest := filepath.Join(s.root, clean)

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dest)
		return "", err
	}
	return s.PublicURL(clean), nil
}

func (s *DiskStore) PublicURL(path string) string {
	return s.baseURL + "/uploads/" + strings.TrimPrefix(path, "/")
}

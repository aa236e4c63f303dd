// Package storage persists gallery uploads on the local filesystem.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"delacream-park/internal/pkg/config"
	"delacream-park/internal/pkg/errs"

	"github.com/google/uuid"
)

const fieldName = "images"

type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(cfg config.UploadConfig) *DiskStore {
	return &DiskStore{
		dir:     cfg.Dir,
		baseURL: "/" + strings.Trim(filepath.ToSlash(cfg.Dir), "/"),
	}
}

// Save writes the payload under a collision-resistant generated name:
// images-<unix millis>-<random>.<original extension>.
func (d *DiskStore) Save(originalName string, r io.Reader) (string, error) {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", errs.Wrap(err, "failed to create upload directory")
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	filename := fmt.Sprintf("%s-%d-%s%s", fieldName, time.Now().UnixMilli(), uuid.NewString()[:8], ext)

	f, err := os.Create(filepath.Join(d.dir, filename))
	if err != nil {
		return "", errs.Wrap(err, "failed to create upload file")
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		// Leave no partial file behind.
		_ = os.Remove(filepath.Join(d.dir, filename))
		return "", errs.Wrap(err, "failed to write upload file")
	}

	return filename, nil
}

// Remove deletes the backing file; a file that is already gone is a no-op.
func (d *DiskStore) Remove(filename string) error {
	err := os.Remove(filepath.Join(d.dir, filepath.Base(filename)))
	if err != nil && !os.IsNotExist(err) {
		return errs.Wrap(err, "failed to remove upload file")
	}
	return nil
}

func (d *DiskStore) URL(filename string) string {
	return d.baseURL + "/" + filename
}

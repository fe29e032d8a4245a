package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStore keeps uploaded documents on local disk under a single directory.
// Stored paths are the durable reference used for later deletion.
type LocalStore struct{ dir string }

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create dir %q: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Dir() string { return s.dir }

// StoredFile is the durable metadata of a saved upload.
type StoredFile struct {
	FileName string
	Path     string
	Size     int64
}

// Save writes the stream under a collision-resistant generated name:
// app-doc-<unix-ms>-<random>.<ext>. The extension comes from the original
// filename, lowercased.
func (s *LocalStore) Save(r io.Reader, originalName string) (*StoredFile, error) {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	ext := strings.ToLower(filepath.Ext(originalName))
	name := fmt.Sprintf("app-doc-%d-%s%s", time.Now().UnixMilli(), hex.EncodeToString(b), ext)
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, err
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, err
	}
	return &StoredFile{FileName: name, Path: path, Size: n}, nil
}

// Remove deletes a stored file. A missing file is not an error.
func (s *LocalStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Package fs implements the file system port on the local disk.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/stay/internal/core/domain"
	"go.trai.ch/stay/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*Local)(nil)

// Local is a ports.FileSystem scoped to a root directory. Relative names are
// resolved against the root and names that escape it are rejected.
type Local struct {
	root string
}

// NewLocal creates a file system rooted at root.
func NewLocal(root string) (*Local, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve root"), "root", root)
	}
	return &Local{root: abs}, nil
}

// Root returns the absolute root directory.
func (l *Local) Root() string {
	return l.root
}

// ReadFile reads the whole file at name.
func (l *Local) ReadFile(name string) ([]byte, error) {
	path, err := l.resolve(name)
	if err != nil {
		return nil, err
	}
	// #nosec G304 -- path is scoped to the root
	return os.ReadFile(path)
}

// WriteFile replaces the file at name with data. The content is written to a
// temporary file in the same directory and renamed over the target, so readers
// never observe a partial file.
func (l *Local) WriteFile(name string, data []byte) error {
	path, err := l.resolve(name)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp file")
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, err := os.Stat(tmpName); err == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, "failed to write temp file")
	}
	if err := tmpFile.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temp file")
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to chmod temp file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.Wrap(err, "failed to rename temp file")
	}
	return nil
}

// Exists reports whether name exists.
func (l *Local) Exists(name string) (bool, error) {
	path, err := l.resolve(name)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// MkdirAll creates dir and any missing parents.
func (l *Local) MkdirAll(dir string) error {
	path, err := l.resolve(dir)
	if err != nil {
		return err
	}
	return os.MkdirAll(path, domain.DirPerm)
}

func (l *Local) resolve(name string) (string, error) {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.root, path)
	}
	path = filepath.Clean(path)

	rel, err := filepath.Rel(l.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(domain.ErrPathOutsideScope, "path", name)
	}
	return path, nil
}

// Package osfilesystem provides a filesystem implementation using the os package.
package osfilesystem

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/user/dreamframes/pkg/ports"
)

// FileSystem implements ports.FileSystem using the os package.
type FileSystem struct{}

// New creates a new FileSystem.
func New() *FileSystem {
	return &FileSystem{}
}

// IsFile reports whether path exists and is a regular file.
func (fsys *FileSystem) IsFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// IsDir reports whether path exists and is a directory.
func (fsys *FileSystem) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// Mkdir creates a single directory.
func (fsys *FileSystem) Mkdir(path string) error {
	return os.Mkdir(path, 0755)
}

// MkdirTemp creates a new unique temporary directory.
func (fsys *FileSystem) MkdirTemp(dir, pattern string) (string, error) {
	return os.MkdirTemp(dir, pattern)
}

// RemoveAll deletes path recursively.
func (fsys *FileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// ReadDir returns the regular files directly inside dir, sorted by name.
func (fsys *FileSystem) ReadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Open opens path for reading.
func (fsys *FileSystem) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// ListTree walks root top-down, like os.walk, grouping files by directory.
func (fsys *FileSystem) ListTree(root string) ([]ports.DirListing, error) {
	var listings []ports.DirListing
	index := map[string]int{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			index[path] = len(listings)
			listings = append(listings, ports.DirListing{Dir: path})
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		i := index[filepath.Dir(path)]
		listings[i].Files = append(listings[i].Files, d.Name())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// Ensure FileSystem implements ports.FileSystem
var _ ports.FileSystem = (*FileSystem)(nil)

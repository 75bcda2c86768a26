package ports

import "io"

// DirListing is one directory visited by FileSystem.ListTree together with
// the regular files it directly contains, in lexical order.
type DirListing struct {
	Dir   string
	Files []string // base names
}

// FileSystem abstracts file system operations.
type FileSystem interface {
	// IsFile reports whether path exists and is a regular file.
	IsFile(path string) (bool, error)

	// IsDir reports whether path exists and is a directory.
	IsDir(path string) (bool, error)

	// Mkdir creates a single directory. The parent must exist.
	Mkdir(path string) error

	// MkdirTemp creates a new unique directory under dir (os.TempDir when empty).
	MkdirTemp(dir, pattern string) (string, error)

	// RemoveAll deletes path and everything below it.
	RemoveAll(path string) error

	// ReadDir returns the base names of the regular files directly inside
	// dir, in lexical order.
	ReadDir(dir string) ([]string, error)

	// Open opens path for reading.
	Open(path string) (io.ReadCloser, error)

	// ListTree walks root top-down and returns every directory with its files.
	ListTree(root string) ([]DirListing, error)
}

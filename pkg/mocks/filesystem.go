package mocks

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/user/dreamframes/pkg/ports"
)

// FileSystem is an in-memory implementation of ports.FileSystem.
// Paths use forward slashes.
type FileSystem struct {
	mu    sync.RWMutex
	files map[string]bool
	data  map[string][]byte
	dirs  map[string]bool
	temps int

	MkdirFunc     func(path string) error
	RemoveAllFunc func(path string) error
}

// NewFileSystem creates a new mock FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files: make(map[string]bool),
		data:  make(map[string][]byte),
		dirs:  map[string]bool{"/": true},
	}
}

// AddFile registers a file and its parent directories.
func (m *FileSystem) AddFile(p string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[p] = true
	m.addDirs(path.Dir(p))
}

// WriteFile registers a file with content returned by Open.
func (m *FileSystem) WriteFile(p string, content []byte) {
	m.AddFile(p)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[p] = content
}

// AddDir registers a directory and its parents.
func (m *FileSystem) AddDir(p string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addDirs(p)
}

func (m *FileSystem) addDirs(p string) {
	for p != "/" && p != "." && p != "" {
		m.dirs[p] = true
		p = path.Dir(p)
	}
}

func (m *FileSystem) IsFile(p string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files[p], nil
}

func (m *FileSystem) IsDir(p string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dirs[p], nil
}

// Exists reports whether p is a known file or directory (for test verification).
func (m *FileSystem) Exists(p string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files[p] || m.dirs[p], nil
}

func (m *FileSystem) Mkdir(p string) error {
	if m.MkdirFunc != nil {
		return m.MkdirFunc(p)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.files[p] || m.dirs[p] {
		return fmt.Errorf("mkdir %s: file exists", p)
	}
	if !m.dirs[path.Dir(p)] {
		return fmt.Errorf("mkdir %s: no such file or directory", p)
	}
	m.dirs[p] = true
	return nil
}

func (m *FileSystem) MkdirTemp(dir, pattern string) (string, error) {
	m.mu.Lock()
	m.temps++
	if dir == "" {
		dir = "/tmp"
	}
	p := path.Join(dir, strings.Replace(pattern, "*", fmt.Sprint(m.temps), 1))
	m.mu.Unlock()
	m.AddDir(p)
	return p, nil
}

func (m *FileSystem) RemoveAll(p string) error {
	if m.RemoveAllFunc != nil {
		return m.RemoveAllFunc(p)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for f := range m.files {
		if f == p || strings.HasPrefix(f, p+"/") {
			delete(m.files, f)
			delete(m.data, f)
		}
	}
	for d := range m.dirs {
		if d == p || strings.HasPrefix(d, p+"/") {
			delete(m.dirs, d)
		}
	}
	return nil
}

func (m *FileSystem) ReadDir(dir string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.dirs[dir] {
		return nil, fmt.Errorf("open %s: no such file or directory", dir)
	}
	var names []string
	for f := range m.files {
		if path.Dir(f) == dir {
			names = append(names, path.Base(f))
		}
	}
	sort.Strings(names)
	return names, nil
}

func (m *FileSystem) Open(p string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.files[p] {
		return nil, fmt.Errorf("open %s: no such file or directory", p)
	}
	return io.NopCloser(bytes.NewReader(m.data[p])), nil
}

func (m *FileSystem) ListTree(root string) ([]ports.DirListing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.dirs[root] {
		return nil, fmt.Errorf("lstat %s: no such file or directory", root)
	}

	var dirs []string
	for d := range m.dirs {
		if d == root || strings.HasPrefix(d, root+"/") {
			dirs = append(dirs, d)
		}
	}
	sort.Strings(dirs)

	listings := make([]ports.DirListing, 0, len(dirs))
	for _, d := range dirs {
		listing := ports.DirListing{Dir: d}
		for f := range m.files {
			if path.Dir(f) == d {
				listing.Files = append(listing.Files, path.Base(f))
			}
		}
		sort.Strings(listing.Files)
		listings = append(listings, listing)
	}
	return listings, nil
}

// Files returns all file paths, sorted (for test verification).
func (m *FileSystem) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []string
	for f := range m.files {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

var _ ports.FileSystem = (*FileSystem)(nil)

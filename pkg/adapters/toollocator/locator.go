// Package toollocator finds external executables on the host.
package toollocator

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/user/dreamframes/pkg/ports"
)

// Locator resolves tool names to executable paths.
// Priority: 1) configured override, 2) PATH, 3) common install locations.
type Locator struct {
	overrides  map[string]string
	searchDirs []string
}

// New creates a Locator. overrides maps tool names (e.g. "ffmpeg") to
// explicit executable paths; empty values are ignored.
func New(overrides map[string]string) *Locator {
	clean := make(map[string]string, len(overrides))
	for name, path := range overrides {
		if path != "" {
			clean[name] = path
		}
	}
	return &Locator{
		overrides:  clean,
		searchDirs: commonDirs(),
	}
}

// Find returns the executable path for name.
func (l *Locator) Find(name string) (string, error) {
	if custom, ok := l.overrides[name]; ok {
		if _, err := os.Stat(custom); err == nil {
			return custom, nil
		}
		return "", fmt.Errorf("%w: %s (configured path %s does not exist)", ports.ErrToolNotFound, name, custom)
	}

	execName := name
	if runtime.GOOS == "windows" {
		execName = name + ".exe"
	}

	if path, err := exec.LookPath(execName); err == nil {
		return path, nil
	}

	for _, dir := range l.searchDirs {
		p := filepath.Join(dir, execName)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ports.ErrToolNotFound, name)
}

func commonDirs() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			`C:\ffmpeg\bin`,
			`C:\Program Files\ffmpeg\bin`,
			`C:\Program Files (x86)\ffmpeg\bin`,
			`C:\Program Files\MPlayer`,
		}
	case "darwin":
		return []string{
			"/opt/homebrew/bin",
			"/usr/local/bin",
			"/usr/bin",
		}
	default:
		return []string{
			"/usr/bin",
			"/usr/local/bin",
			"/opt/homebrew/bin",
			"/snap/bin",
		}
	}
}

var _ ports.ToolLocator = (*Locator)(nil)

// Package pngcrushcmd builds pngcrush invocations.
package pngcrushcmd

import (
	"strconv"

	"github.com/user/dreamframes/pkg/ports"
)

// Tool is the pngcrush executable name.
const Tool = "pngcrush"

// DefaultMethod is the pngcrush filter/compression method used when none is
// configured.
const DefaultMethod = 115

// Overwrite recompresses file in place. Output is discarded.
//
//	pngcrush -ow -m <method> <file>
func Overwrite(pngcrushPath string, method int, file string) ports.Command {
	return ports.Command{
		Name:  Tool,
		Path:  pngcrushPath,
		Args:  []string{"-ow", "-m", strconv.Itoa(method), file},
		Quiet: true,
	}
}

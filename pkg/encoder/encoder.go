// Package encoder defines the closed set of external encoder toolchains.
package encoder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknown is returned by Parse for names outside the supported set.
var ErrUnknown = errors.New("encoder: unknown encoder")

// Kind identifies an encoder toolchain.
type Kind int

const (
	// FFmpeg uses ffmpeg for encoding and ffprobe for metadata.
	FFmpeg Kind = iota + 1
	// MPlayer uses mencoder for encoding and mplayer for metadata.
	MPlayer
)

var names = map[Kind]string{
	FFmpeg:  "ffmpeg",
	MPlayer: "mplayer",
}

// String returns the command-line name of the encoder.
func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return "unknown"
}

// Parse converts a command-line name into a Kind.
func Parse(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ffmpeg":
		return FFmpeg, nil
	case "mplayer":
		return MPlayer, nil
	default:
		return 0, fmt.Errorf("%w: %q (choose from %s)", ErrUnknown, s, strings.Join(Names(), ", "))
	}
}

// Names lists the accepted command-line names.
func Names() []string {
	return []string{FFmpeg.String(), MPlayer.String()}
}

// Tools returns the external executables the toolchain needs for reassembly,
// metadata tool first.
func (k Kind) Tools() []string {
	switch k {
	case FFmpeg:
		return []string{"ffprobe", "ffmpeg"}
	case MPlayer:
		return []string{"mplayer", "mencoder"}
	default:
		return nil
	}
}

// Package mplayercmd builds mplayer and mencoder invocations.
package mplayercmd

import (
	"fmt"

	"github.com/user/dreamframes/pkg/ports"
)

// Tool names.
const (
	MPlayer  = "mplayer"
	MEncoder = "mencoder"
)

// Identify prints ID_* metadata lines for source without playing it.
//
//	mplayer -really-quiet -vo null -ao null -frames 0 -identify <source>
func Identify(mplayerPath, source string) ports.Command {
	return ports.Command{
		Name: MPlayer,
		Path: mplayerPath,
		Args: []string{
			"-really-quiet",
			"-vo", "null",
			"-ao", "null",
			"-frames", "0",
			"-identify", source,
		},
	}
}

// ExtractAudio re-encodes the audio of source to raw MP3.
//
//	mencoder <source> -of rawaudio -oac mp3lame -ovc copy -o <output>
func ExtractAudio(mencoderPath, source, output string) ports.Command {
	return ports.Command{
		Name: MEncoder,
		Path: mencoderPath,
		Args: []string{
			source,
			"-of", "rawaudio",
			"-oac", "mp3lame",
			"-ovc", "copy",
			"-o", output,
		},
	}
}

// EncodeOptions configures EncodeWithAudio.
type EncodeOptions struct {
	Pattern     string // printf-style frame path
	ImageType   string // jpg or png
	FrameRate   string // passed through verbatim
	BitrateKbps int
	Audio       string
	Output      string
}

// EncodeWithAudio encodes an image sequence with x264 and muxes the audio
// file in a single pass.
func EncodeWithAudio(mencoderPath string, opts EncodeOptions) ports.Command {
	return ports.Command{
		Name: MEncoder,
		Path: mencoderPath,
		Args: []string{
			"mf://" + opts.Pattern,
			"-mf", fmt.Sprintf("fps=%s:type=%s", opts.FrameRate, opts.ImageType),
			"-ovc", "x264",
			"-x264encopts", fmt.Sprintf("bitrate=%d", opts.BitrateKbps),
			"-ofps", opts.FrameRate,
			"-audiofile", opts.Audio,
			"-oac", "mp3lame",
			"-o", opts.Output,
		},
	}
}

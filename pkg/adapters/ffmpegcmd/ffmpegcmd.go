// Package ffmpegcmd builds ffmpeg and ffprobe invocations.
//
// ffmpeg argument vectors are assembled with ffmpeg-go's stream graph so
// input options, output options and the trailing overwrite flag always end
// up in the position ffmpeg expects.
package ffmpegcmd

import (
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/user/dreamframes/pkg/ports"
)

// Tool names.
const (
	FFmpeg  = "ffmpeg"
	FFprobe = "ffprobe"
)

// ExtractFrames writes every frame of source to an image2 sequence.
//
//	ffmpeg -i <source> -f image2 <pattern>
func ExtractFrames(ffmpegPath, source, pattern string) ports.Command {
	args := ffmpeg.Input(source).
		Output(pattern, ffmpeg.KwArgs{"format": "image2"}).
		GetArgs()
	return ports.Command{Name: FFmpeg, Path: ffmpegPath, Args: args}
}

// EncodeOptions configures EncodeSequence.
type EncodeOptions struct {
	Pattern   string // printf-style frame path
	FrameRate string // passed through verbatim, e.g. "25/1"
	Codec     string // e.g. libx264
	Output    string
}

// EncodeSequence encodes a numbered image sequence into a silent video.
//
//	ffmpeg -framerate <fps> -i <pattern> -c:v <codec> -profile:v baseline
//	       -tune fastdecode,zerolatency -vf fps=<fps>,format=yuv420p <output> -y
func EncodeSequence(ffmpegPath string, opts EncodeOptions) ports.Command {
	args := ffmpeg.Input(opts.Pattern, ffmpeg.KwArgs{"framerate": opts.FrameRate}).
		Output(opts.Output, ffmpeg.KwArgs{
			"c:v":       opts.Codec,
			"vf":        "fps=" + opts.FrameRate + ",format=yuv420p",
			"tune":      "fastdecode,zerolatency",
			"profile:v": "baseline",
		}).
		OverWriteOutput().
		GetArgs()
	return ports.Command{Name: FFmpeg, Path: ffmpegPath, Args: args}
}

// ExtractAudio transcodes the audio track of source into output, whose
// extension selects the audio format.
//
//	ffmpeg -i <source> -strict -2 <output> -y
func ExtractAudio(ffmpegPath, source, output string) ports.Command {
	args := ffmpeg.Input(source).
		Output(output, ffmpeg.KwArgs{"strict": "-2"}).
		OverWriteOutput().
		GetArgs()
	return ports.Command{Name: FFmpeg, Path: ffmpegPath, Args: args}
}

// Mux combines an audio file and a video file, copying the video stream and
// stopping at the end of the shorter input. ffmpeg-go maps every input
// explicitly when an output has several, which selects the same streams as
// ffmpeg's default for these single-stream intermediates.
//
//	ffmpeg -i <audio> -i <video> -map 0 -map 1 -c:v copy -movflags faststart
//	       -shortest -strict -2 <output>
func Mux(ffmpegPath, audio, video, output string) ports.Command {
	streams := []*ffmpeg.Stream{ffmpeg.Input(audio), ffmpeg.Input(video)}
	args := ffmpeg.Output(streams, output, ffmpeg.KwArgs{
		"strict":   "-2",
		"c:v":      "copy",
		"movflags": "faststart",
		"shortest": "",
	}).GetArgs()
	return ports.Command{Name: FFmpeg, Path: ffmpegPath, Args: args}
}

// ProbeStreams prints the video stream properties of source as key=value
// lines.
//
//	ffprobe -show_streams -select_streams v -i <source>
func ProbeStreams(ffprobePath, source string) ports.Command {
	return ports.Command{
		Name: FFprobe,
		Path: ffprobePath,
		Args: []string{"-show_streams", "-select_streams", "v", "-i", source},
	}
}

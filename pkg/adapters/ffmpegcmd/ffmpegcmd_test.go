package ffmpegcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// valueOf returns the argument following flag.
func valueOf(t *testing.T, args []string, flag string) string {
	t.Helper()
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag {
			return args[i+1]
		}
	}
	t.Fatalf("flag %s not found in %v", flag, args)
	return ""
}

func indexOf(args []string, s string) int {
	for i, a := range args {
		if a == s {
			return i
		}
	}
	return -1
}

func TestExtractFrames(t *testing.T) {
	cmd := ExtractFrames("/usr/bin/ffmpeg", "/videos/clip.mp4", "/work/source_frames/%08d.jpg")

	assert.Equal(t, FFmpeg, cmd.Name)
	assert.Equal(t, "/usr/bin/ffmpeg", cmd.Path)
	assert.Equal(t, "/videos/clip.mp4", valueOf(t, cmd.Args, "-i"))
	assert.Equal(t, "image2", valueOf(t, cmd.Args, "-f"))
	assert.Equal(t, "/work/source_frames/%08d.jpg", cmd.Args[len(cmd.Args)-1])
}

func TestEncodeSequence(t *testing.T) {
	cmd := EncodeSequence("ffmpeg", EncodeOptions{
		Pattern:   "/frames/%08d.png",
		FrameRate: "25/1",
		Codec:     "libx264",
		Output:    "/tmp/work/video.mp4",
	})
	args := cmd.Args

	assert.Equal(t, "25/1", valueOf(t, args, "-framerate"))
	assert.Less(t, indexOf(args, "-framerate"), indexOf(args, "-i"), "framerate must be an input option")
	assert.Equal(t, "/frames/%08d.png", valueOf(t, args, "-i"))
	assert.Equal(t, "libx264", valueOf(t, args, "-c:v"))
	assert.Equal(t, "fps=25/1,format=yuv420p", valueOf(t, args, "-vf"))
	assert.Equal(t, "baseline", valueOf(t, args, "-profile:v"))
	assert.Equal(t, "fastdecode,zerolatency", valueOf(t, args, "-tune"))
	assert.Contains(t, args, "/tmp/work/video.mp4")
	assert.Contains(t, args, "-y")
}

func TestExtractAudio(t *testing.T) {
	cmd := ExtractAudio("ffmpeg", "/videos/clip.mp4", "/tmp/work/audio.aac")

	assert.Equal(t, "/videos/clip.mp4", valueOf(t, cmd.Args, "-i"))
	assert.Equal(t, "-2", valueOf(t, cmd.Args, "-strict"))
	assert.Contains(t, cmd.Args, "/tmp/work/audio.aac")
	assert.Contains(t, cmd.Args, "-y")
}

func TestMux(t *testing.T) {
	cmd := Mux("ffmpeg", "/tmp/work/audio.aac", "/tmp/work/video.mp4", "out.mp4")

	assert.Equal(t, FFmpeg, cmd.Name)
	assert.Equal(t, []string{
		"-i", "/tmp/work/audio.aac",
		"-i", "/tmp/work/video.mp4",
		"-map", "0", "-map", "1",
		"-c:v", "copy",
		"-movflags", "faststart",
		"-shortest",
		"-strict", "-2",
		"out.mp4",
	}, cmd.Args)
}

func TestProbeStreams(t *testing.T) {
	cmd := ProbeStreams("/usr/bin/ffprobe", "/videos/clip.mp4")

	assert.Equal(t, FFprobe, cmd.Name)
	assert.Equal(t, []string{"-show_streams", "-select_streams", "v", "-i", "/videos/clip.mp4"}, cmd.Args)
}

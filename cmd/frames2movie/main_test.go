package main

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{
		"DREAMFRAMES_FFMPEG", "DREAMFRAMES_FFPROBE", "DREAMFRAMES_MPLAYER",
		"DREAMFRAMES_MENCODER", "DREAMFRAMES_PNGCRUSH", "DREAMFRAMES_LOG_LEVEL",
		"DREAMFRAMES_CODEC",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return home
}

// fakeTool writes a shell script that appends its arguments to log and
// prints body to stdout.
func fakeTool(t *testing.T, dir, name, log, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\necho \"$@\" >> " + log + "\n" + body
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func writeFrames(t *testing.T, dir string, n int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for i := 1; i <= n; i++ {
		f, err := os.Create(filepath.Join(dir, fmt.Sprintf("%08d.png", i)))
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 16, 8))))
		require.NoError(t, f.Close())
	}
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{"frames2movie"}, args...), strings.NewReader(""), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Version(t *testing.T) {
	isolate(t)
	code, stdout, _ := runCLI(t, "--version")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, version)
}

func TestRun_MissingArguments(t *testing.T) {
	isolate(t)
	code, _, _ := runCLI(t, "-q", t.TempDir())
	assert.Equal(t, 1, code)
}

func TestRun_MissingInputs(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	output := filepath.Join(dir, "out.mp4")

	code, _, _ := runCLI(t, "-q", "-o", output, filepath.Join(dir, "frames"), filepath.Join(dir, "clip.mp4"))

	assert.Equal(t, 1, code)
	assert.NoFileExists(t, output)
}

func TestRun_UnknownEncoder(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	source := filepath.Join(dir, "clip.mp4")
	require.NoError(t, os.WriteFile(source, []byte("video"), 0o644))

	code, _, _ := runCLI(t, "-q", "-e", "vlc", dir, source)
	assert.Equal(t, 1, code)
}

func TestRun_ReassemblesWithFakeTools(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script tools")
	}
	isolate(t)
	bin := t.TempDir()
	work := t.TempDir()
	log := filepath.Join(bin, "args.log")
	t.Setenv("DREAMFRAMES_FFMPEG", fakeTool(t, bin, "ffmpeg", log, ""))
	t.Setenv("DREAMFRAMES_FFPROBE", fakeTool(t, bin, "ffprobe", log, "echo r_frame_rate=30000/1001\n"))

	frames := filepath.Join(work, "frames")
	writeFrames(t, frames, 3)
	source := filepath.Join(work, "clip.mp4")
	require.NoError(t, os.WriteFile(source, []byte("video"), 0o644))
	output := filepath.Join(work, "out.mkv")

	code, _, stderr := runCLI(t, "-t", "png", "-c", "libx265", "-o", output, frames, source)
	require.Equal(t, 0, code, stderr)

	data, err := os.ReadFile(log)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4, "probe, encode, audio, mux")
	assert.Contains(t, lines[0], "-show_streams")
	assert.Contains(t, lines[1], "-framerate 30000/1001")
	assert.Contains(t, lines[1], "libx265")
	assert.Contains(t, lines[1], filepath.Join(frames, "%08d.png"))
	assert.Contains(t, lines[3], output)
}

func TestRun_MissingFFprobe(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script tools")
	}
	isolate(t)
	bin := t.TempDir()
	work := t.TempDir()
	log := filepath.Join(bin, "args.log")
	t.Setenv("DREAMFRAMES_FFMPEG", fakeTool(t, bin, "ffmpeg", log, ""))
	t.Setenv("DREAMFRAMES_FFPROBE", filepath.Join(bin, "missing-ffprobe"))

	frames := filepath.Join(work, "frames")
	writeFrames(t, frames, 1)
	source := filepath.Join(work, "clip.mp4")
	require.NoError(t, os.WriteFile(source, []byte("video"), 0o644))

	code, _, _ := runCLI(t, "-q", "-t", "png", "-o", filepath.Join(work, "out.mp4"), frames, source)

	assert.Equal(t, 1, code)
	assert.NoFileExists(t, log)
}

package orchestrator

import (
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/dreamframes/pkg/adapters/mp4inspect"
	"github.com/user/dreamframes/pkg/adapters/osfilesystem"
	"github.com/user/dreamframes/pkg/encoder"
	"github.com/user/dreamframes/pkg/frameseq"
	"github.com/user/dreamframes/pkg/metadata"
	"github.com/user/dreamframes/pkg/mocks"
	"github.com/user/dreamframes/pkg/ports"
)

var clockStart = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

type reassembleFixture struct {
	root     string
	source   string
	imageDir string
	tempRoot string
	runner   *mocks.CommandRunner
	locator  *mocks.ToolLocator
	logger   *mocks.Logger
	inspect  func(path string) (mp4inspect.Report, error)
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))))
}

func newReassembleFixture(t *testing.T, frames int, tools ...string) *reassembleFixture {
	t.Helper()
	root := t.TempDir()
	f := &reassembleFixture{
		root:     root,
		source:   filepath.Join(root, "clip.mp4"),
		imageDir: filepath.Join(root, "dream_frames"),
		tempRoot: filepath.Join(root, "tmp"),
		runner: &mocks.CommandRunner{Outputs: map[string][]byte{
			"ffprobe": []byte("[STREAM]\nindex=0\nr_frame_rate=25/1\n[/STREAM]\n"),
			"mplayer": []byte("ID_VIDEO_BITRATE=2048000\nID_VIDEO_FPS=23.976\n"),
		}},
		locator: mocks.NewToolLocator(tools...),
		logger:  mocks.NewLogger(),
		inspect: func(path string) (mp4inspect.Report, error) {
			return mp4inspect.Report{VideoCodec: "avc1", AudioCodec: "mp4a", Tracks: 2}, nil
		},
	}
	require.NoError(t, os.WriteFile(f.source, []byte("video"), 0644))
	require.NoError(t, os.MkdirAll(f.imageDir, 0755))
	require.NoError(t, os.MkdirAll(f.tempRoot, 0755))
	for i := 1; i <= frames; i++ {
		writePNG(t, filepath.Join(f.imageDir, frameseq.Name(i, frameseq.PNG)), 16, 8)
	}
	return f
}

func (f *reassembleFixture) reassembler() *Reassembler {
	return NewReassembler(Deps{
		FS:      osfilesystem.New(),
		Runner:  f.runner,
		Locator: f.locator,
		Logger:  f.logger,
		Now:     tickingClock(clockStart),
		NewID:   func() string { return "run-2" },
		Inspect: f.inspect,
	})
}

func (f *reassembleFixture) config() ReassembleConfig {
	return ReassembleConfig{
		ImageDir:  f.imageDir,
		Source:    f.source,
		Output:    filepath.Join(f.root, "out.mp4"),
		Encoder:   encoder.FFmpeg,
		ImageType: frameseq.PNG,
		Codec:     "libx264",
		TempRoot:  f.tempRoot,
	}
}

func argAfter(args []string, flag string) string {
	for i := 0; i+1 < len(args); i++ {
		if args[i] == flag {
			return args[i+1]
		}
	}
	return ""
}

func TestReassembler_Run(t *testing.T) {
	f := newReassembleFixture(t, 3, "ffmpeg", "ffprobe")

	result, err := f.reassembler().Run(context.Background(), f.config())
	require.NoError(t, err)

	assert.Equal(t, "25/1", result.Probe.FrameRate)
	assert.Equal(t, 3, result.Frames.Count)
	require.Len(t, f.runner.RunCalls, 3)

	encode := f.runner.RunCalls[0].Args
	assert.Equal(t, "25/1", argAfter(encode, "-framerate"))
	assert.Equal(t, filepath.Join(f.imageDir, "%08d.png"), argAfter(encode, "-i"))
	assert.Equal(t, "fps=25/1,format=yuv420p", argAfter(encode, "-vf"))

	mux := f.runner.RunCalls[2].Args
	assert.Equal(t, filepath.Join(f.root, "out.mp4"), mux[len(mux)-1])

	require.NotNil(t, result.Report)
	assert.Equal(t, "avc1", result.Report.VideoCodec)
	assert.Empty(t, result.TempDir)

	entries, err := os.ReadDir(f.tempRoot)
	require.NoError(t, err)
	assert.Empty(t, entries, "work directory must be removed")

	assert.True(t, f.logger.Contains(ports.LevelInfo, " START TIME"))
	assert.True(t, f.logger.Contains(ports.LevelInfo, " TOOK"))
}

func TestReassembler_DefaultOutputName(t *testing.T) {
	f := newReassembleFixture(t, 1, "ffmpeg", "ffprobe")
	config := f.config()
	config.Output = ""

	result, err := f.reassembler().Run(context.Background(), config)
	require.NoError(t, err)

	want := DefaultOutputName(f.source, clockStart)
	assert.Equal(t, want, filepath.Base(result.Output))
	assert.True(t, filepath.IsAbs(result.Output))
}

func TestDefaultOutputName(t *testing.T) {
	first := DefaultOutputName("/videos/clip.mkv", time.Unix(1700000000, 0))
	second := DefaultOutputName("/videos/clip.mkv", time.Unix(1700000001, 0))

	assert.Equal(t, "deepdream-clip-1700000000.mkv", first)
	assert.NotEqual(t, first, second)
	assert.Equal(t, "deepdream-clip-1700000000.mp4", DefaultOutputName("/videos/clip", time.Unix(1700000000, 0)))
	assert.Equal(t, "deepdream-my.clip-1700000000.avi", DefaultOutputName("my.clip.avi", time.Unix(1700000000, 0)))
}

func TestReassembler_MissingInputsInvokeNothing(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *reassembleFixture, c *ReassembleConfig)
	}{
		{"source", func(f *reassembleFixture, c *ReassembleConfig) { c.Source = filepath.Join(f.root, "nope.mp4") }},
		{"imagedir", func(f *reassembleFixture, c *ReassembleConfig) { c.ImageDir = filepath.Join(f.root, "nope") }},
		{"imagedir is a file", func(f *reassembleFixture, c *ReassembleConfig) { c.ImageDir = f.source }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newReassembleFixture(t, 1, "ffmpeg", "ffprobe")
			config := f.config()
			tt.mutate(f, &config)

			_, err := f.reassembler().Run(context.Background(), config)
			assert.ErrorIs(t, err, ErrInputsNotFound)
			assert.Empty(t, f.runner.Calls())
			assert.Empty(t, f.locator.Lookups)
		})
	}
}

func TestReassembler_MissingTool(t *testing.T) {
	f := newReassembleFixture(t, 1, "ffmpeg")

	_, err := f.reassembler().Run(context.Background(), f.config())
	var missing *MissingToolError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "ffprobe", missing.Tool)
	assert.Empty(t, f.runner.Calls())
}

func TestReassembler_NoFrames(t *testing.T) {
	f := newReassembleFixture(t, 0, "ffmpeg", "ffprobe")

	_, err := f.reassembler().Run(context.Background(), f.config())
	assert.ErrorIs(t, err, ErrNoFrames)
	assert.Empty(t, f.runner.Calls())
}

func TestReassembler_FrameWarnings(t *testing.T) {
	f := newReassembleFixture(t, 0, "ffmpeg", "ffprobe")
	writePNG(t, filepath.Join(f.imageDir, frameseq.Name(2, frameseq.PNG)), 15, 9)

	_, err := f.reassembler().Run(context.Background(), f.config())
	require.NoError(t, err)
	assert.True(t, f.logger.Contains(ports.LevelWarn, "00000001.png not found"))
	assert.True(t, f.logger.Contains(ports.LevelWarn, "15x9"))
}

func TestReassembler_MetadataUnavailable(t *testing.T) {
	f := newReassembleFixture(t, 1, "ffmpeg", "ffprobe")
	f.runner.Outputs["ffprobe"] = []byte("[STREAM]\nindex=0\n[/STREAM]\n")

	_, err := f.reassembler().Run(context.Background(), f.config())
	assert.ErrorIs(t, err, metadata.ErrMetadataUnavailable)
	assert.Empty(t, f.runner.RunCalls)
}

func TestReassembler_StepFailureStopsAndCleansUp(t *testing.T) {
	f := newReassembleFixture(t, 1, "ffmpeg", "ffprobe")
	f.runner.RunFunc = func(ctx context.Context, cmd ports.Command) error {
		return errors.New("exit status 1")
	}

	result, err := f.reassembler().Run(context.Background(), f.config())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode video")
	assert.Len(t, f.runner.RunCalls, 1)
	assert.Len(t, result.Commands, 1)

	entries, _ := os.ReadDir(f.tempRoot)
	assert.Empty(t, entries)
}

func TestReassembler_KeepTemp(t *testing.T) {
	f := newReassembleFixture(t, 1, "ffmpeg", "ffprobe")
	config := f.config()
	config.KeepTemp = true

	result, err := f.reassembler().Run(context.Background(), config)
	require.NoError(t, err)
	require.NotEmpty(t, result.TempDir)

	info, err := os.Stat(result.TempDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, f.tempRoot, filepath.Dir(result.TempDir))
}

func TestReassembler_MPlayer(t *testing.T) {
	f := newReassembleFixture(t, 2, "mplayer", "mencoder")
	config := f.config()
	config.Encoder = encoder.MPlayer

	result, err := f.reassembler().Run(context.Background(), config)
	require.NoError(t, err)
	assert.Equal(t, "23.976", result.Probe.FrameRate)
	assert.Equal(t, 2048, result.Probe.BitrateKbps)

	require.Len(t, f.runner.RunCalls, 2)
	for _, cmd := range f.runner.RunCalls {
		assert.Equal(t, "/usr/bin/mencoder", cmd.Path)
	}
	assert.Equal(t, "bitrate=2048", argAfter(f.runner.RunCalls[1].Args, "-x264encopts"))
}

func TestReassembler_InspectFailureIsWarning(t *testing.T) {
	f := newReassembleFixture(t, 1, "ffmpeg", "ffprobe")
	f.inspect = func(path string) (mp4inspect.Report, error) {
		return mp4inspect.Report{}, errors.New("truncated")
	}

	result, err := f.reassembler().Run(context.Background(), f.config())
	require.NoError(t, err)
	assert.Nil(t, result.Report)
	assert.True(t, f.logger.Contains(ports.LevelWarn, "Could not inspect"))
}

func TestReassembler_SkipsInspectionForOtherContainers(t *testing.T) {
	f := newReassembleFixture(t, 1, "ffmpeg", "ffprobe")
	called := false
	f.inspect = func(path string) (mp4inspect.Report, error) {
		called = true
		return mp4inspect.Report{}, nil
	}
	config := f.config()
	config.Output = filepath.Join(f.root, "out.mkv")

	_, err := f.reassembler().Run(context.Background(), config)
	require.NoError(t, err)
	assert.False(t, called)
}

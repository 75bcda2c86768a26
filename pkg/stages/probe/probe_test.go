package probe

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/dreamframes/pkg/adapters/logger"
	"github.com/user/dreamframes/pkg/encoder"
	"github.com/user/dreamframes/pkg/metadata"
	"github.com/user/dreamframes/pkg/mocks"
	"github.com/user/dreamframes/pkg/pipeline"
	"github.com/user/dreamframes/pkg/ports"
)

const ffprobeOutput = `[STREAM]
index=0
codec_name=h264
width=1280
height=720
r_frame_rate=25/1
avg_frame_rate=25/1
[/STREAM]
`

const identifyOutput = `ID_VIDEO_ID=0
ID_VIDEO_FORMAT=H264
ID_VIDEO_BITRATE=1536000
ID_VIDEO_WIDTH=1280
ID_VIDEO_FPS=29.970
`

func TestStage_FFprobe(t *testing.T) {
	runner := &mocks.CommandRunner{Outputs: map[string][]byte{"ffprobe": []byte(ffprobeOutput)}}
	stage := NewStage(runner, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.ProbeInput{
		Encoder:  encoder.FFmpeg,
		ToolPath: "/usr/bin/ffprobe",
		Source:   "/videos/clip.mp4",
	})
	require.NoError(t, err)
	assert.Equal(t, "25/1", result.FrameRate)
	assert.Zero(t, result.BitrateKbps)

	require.Len(t, runner.OutputCalls, 1)
	assert.Equal(t, []string{"-show_streams", "-select_streams", "v", "-i", "/videos/clip.mp4"}, runner.OutputCalls[0].Args)
}

func TestStage_MPlayer(t *testing.T) {
	runner := &mocks.CommandRunner{Outputs: map[string][]byte{"mplayer": []byte(identifyOutput)}}
	stage := NewStage(runner, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.ProbeInput{
		Encoder:  encoder.MPlayer,
		ToolPath: "/usr/bin/mplayer",
		Source:   "/videos/clip.avi",
	})
	require.NoError(t, err)
	assert.Equal(t, "29.970", result.FrameRate)
	assert.Equal(t, 1536, result.BitrateKbps)
	assert.Len(t, runner.OutputCalls, 1)
}

func TestStage_MissingKey(t *testing.T) {
	runner := &mocks.CommandRunner{Outputs: map[string][]byte{"ffprobe": []byte("[STREAM]\nindex=0\n[/STREAM]\n")}}
	stage := NewStage(runner, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.ProbeInput{Encoder: encoder.FFmpeg, Source: "/videos/clip.mp4"})
	assert.ErrorIs(t, err, metadata.ErrMetadataUnavailable)
}

func TestStage_ToolFailure(t *testing.T) {
	boom := errors.New("exit status 1")
	runner := &mocks.CommandRunner{
		OutputFunc: func(ctx context.Context, cmd ports.Command) ([]byte, error) { return nil, boom },
	}
	stage := NewStage(runner, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.ProbeInput{Encoder: encoder.FFmpeg, Source: "/videos/clip.mp4"})
	assert.ErrorIs(t, err, boom)
}

func TestStage_UnknownEncoder(t *testing.T) {
	runner := &mocks.CommandRunner{}
	stage := NewStage(runner, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.ProbeInput{Source: "/videos/clip.mp4"})
	assert.ErrorIs(t, err, encoder.ErrUnknown)
	assert.Empty(t, runner.OutputCalls)
}

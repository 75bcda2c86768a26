package mp4inspect

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Eyevinn/mp4ff/mp4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func track(handler string, entry mp4.Box) *mp4.TrakBox {
	stsd := &mp4.StsdBox{}
	if entry != nil {
		stsd.Children = append(stsd.Children, entry)
	}
	return &mp4.TrakBox{
		Mdia: &mp4.MdiaBox{
			Hdlr: &mp4.HdlrBox{HandlerType: handler},
			Minf: &mp4.MinfBox{Stbl: &mp4.StblBox{Stsd: stsd}},
		},
	}
}

func TestReportFromTracks(t *testing.T) {
	r := reportFromTracks([]*mp4.TrakBox{
		track("soun", mp4.CreateAudioSampleEntryBox("mp4a", 2, 16, 48000, nil)),
		track("vide", mp4.CreateVisualSampleEntryBox("avc1", 640, 360, nil)),
	})

	assert.Equal(t, 2, r.Tracks)
	assert.Equal(t, "h264", r.VideoCodec)
	assert.Equal(t, "aac", r.AudioCodec)
	assert.True(t, r.HasAudio())
}

func TestReportFromTracks_VideoOnly(t *testing.T) {
	r := reportFromTracks([]*mp4.TrakBox{
		track("vide", mp4.CreateVisualSampleEntryBox("hvc1", 640, 360, nil)),
		{}, // track without media box is ignored
	})

	assert.Equal(t, 1, r.Tracks)
	assert.Equal(t, "hevc", r.VideoCodec)
	assert.False(t, r.HasAudio())
}

func TestReportFromTracks_MissingSampleEntry(t *testing.T) {
	r := reportFromTracks([]*mp4.TrakBox{track("vide", nil)})

	assert.Equal(t, "unknown", r.VideoCodec)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("out.mp4"))
	assert.True(t, Supported("/a/b/OUT.MOV"))
	assert.True(t, Supported("clip.m4v"))
	assert.False(t, Supported("clip.avi"))
	assert.False(t, Supported("clip"))
}

func TestInspect_InvalidData(t *testing.T) {
	_, err := Inspect(bytes.NewReader([]byte("definitely not an mp4 file")))
	assert.Error(t, err)
}

func TestInspectFile_Missing(t *testing.T) {
	_, err := InspectFile(filepath.Join(t.TempDir(), "missing.mp4"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// Package mp4inspect reports the tracks of a finished ISO-BMFF (MP4/MOV) file.
package mp4inspect

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Eyevinn/mp4ff/mp4"
)

// Report summarizes the tracks of a container.
type Report struct {
	VideoCodec string // empty when there is no video track
	AudioCodec string // empty when there is no audio track
	Tracks     int
}

// HasAudio reports whether an audio track was found.
func (r Report) HasAudio() bool {
	return r.AudioCodec != ""
}

// Supported reports whether path has an extension this package can parse.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".m4v", ".mov":
		return true
	default:
		return false
	}
}

// InspectFile parses the MP4 at path.
func InspectFile(path string) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return Inspect(f)
}

// Inspect parses an MP4 from reader.
func Inspect(reader io.ReadSeeker) (Report, error) {
	mp4File, err := mp4.DecodeFile(reader)
	if err != nil {
		return Report{}, fmt.Errorf("decode mp4: %w", err)
	}

	var traks []*mp4.TrakBox
	switch {
	case mp4File.Moov != nil:
		traks = mp4File.Moov.Traks
	case mp4File.Init != nil && mp4File.Init.Moov != nil:
		traks = mp4File.Init.Moov.Traks
	default:
		return Report{}, fmt.Errorf("no moov box")
	}

	return reportFromTracks(traks), nil
}

func reportFromTracks(traks []*mp4.TrakBox) Report {
	var r Report
	for _, trak := range traks {
		handler, entry := describeTrack(trak)
		if handler == "" {
			continue
		}
		r.Tracks++
		switch handler {
		case "vide":
			if r.VideoCodec == "" {
				r.VideoCodec = codecName(entry)
			}
		case "soun":
			if r.AudioCodec == "" {
				r.AudioCodec = codecName(entry)
			}
		}
	}
	return r
}

// describeTrack returns the handler type and first sample entry type of trak.
func describeTrack(trak *mp4.TrakBox) (string, string) {
	if trak.Mdia == nil || trak.Mdia.Hdlr == nil {
		return "", ""
	}
	handler := trak.Mdia.Hdlr.HandlerType

	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil || trak.Mdia.Minf.Stbl.Stsd == nil {
		return handler, ""
	}
	for _, child := range trak.Mdia.Minf.Stbl.Stsd.Children {
		return handler, child.Type()
	}
	return handler, ""
}

func codecName(sampleEntry string) string {
	switch sampleEntry {
	case "avc1", "avc3":
		return "h264"
	case "hvc1", "hev1":
		return "hevc"
	case "av01":
		return "av1"
	case "mp4a":
		return "aac"
	case "ac-3":
		return "ac3"
	case "ec-3":
		return "eac3"
	case "Opus":
		return "opus"
	case ".mp3":
		return "mp3"
	case "":
		return "unknown"
	default:
		return sampleEntry
	}
}

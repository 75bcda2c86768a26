// Package frameseq defines the on-disk naming of extracted frame sequences.
//
// Frames are named with an 8-digit, zero-padded, 1-based index followed by
// the image extension (00000001.jpg, 00000002.jpg, ...). The extractor
// writes this layout and the reassembler reads it back through the same
// printf-style pattern.
package frameseq

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register decoder for FrameSize
	_ "image/png"  // register decoder for FrameSize
	"io"
	"path/filepath"
	"regexp"
	"strings"
)

// DirName is the name of the directory the extractor creates under its
// working directory.
const DirName = "source_frames"

// ErrUnknownImageType is returned by ParseImageType.
var ErrUnknownImageType = errors.New("frameseq: unknown image type")

// ImageType is the image file format of a frame sequence.
type ImageType string

const (
	JPG ImageType = "jpg"
	PNG ImageType = "png"
)

// ParseImageType converts a command-line value into an ImageType.
func ParseImageType(s string) (ImageType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "jpg":
		return JPG, nil
	case "png":
		return PNG, nil
	default:
		return "", fmt.Errorf("%w: %q (choose from jpg, png)", ErrUnknownImageType, s)
	}
}

// Ext returns the file extension without the leading dot.
func (t ImageType) Ext() string {
	return string(t)
}

// Pattern returns the printf-style path of frames in dir, as understood by
// ffmpeg's image2 muxer/demuxer.
func Pattern(dir string, t ImageType) string {
	return filepath.Join(dir, "%08d."+t.Ext())
}

// Name returns the file name of the frame with the given 1-based index.
func Name(index int, t ImageType) string {
	return fmt.Sprintf("%08d.%s", index, t.Ext())
}

// Sequence describes the frames found in a directory.
type Sequence struct {
	Count    int    // files matching the naming pattern
	First    string // path of the lowest-numbered frame, empty when Count is 0
	HasFirst bool   // whether frame 00000001 is present
}

// FS is the file access Scan and FrameSize need; ports.FileSystem
// satisfies it.
type FS interface {
	ReadDir(dir string) ([]string, error)
	Open(path string) (io.ReadCloser, error)
}

// Scan counts the frames of type t directly inside dir.
func Scan(fsys FS, dir string, t ImageType) (Sequence, error) {
	names, err := fsys.ReadDir(dir)
	if err != nil {
		return Sequence{}, fmt.Errorf("read frame directory: %w", err)
	}

	re := regexp.MustCompile(`^\d{8}\.` + regexp.QuoteMeta(t.Ext()) + `$`)
	var seq Sequence
	first := ""
	for _, name := range names {
		if !re.MatchString(name) {
			continue
		}
		seq.Count++
		// fixed-width names sort numerically
		if first == "" || name < first {
			first = name
		}
		if name == Name(1, t) {
			seq.HasFirst = true
		}
	}
	if first != "" {
		seq.First = filepath.Join(dir, first)
	}
	return seq, nil
}

// FrameSize returns the pixel dimensions of an image file without decoding
// the full image.
func FrameSize(fsys FS, path string) (int, int, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return cfg.Width, cfg.Height, nil
}

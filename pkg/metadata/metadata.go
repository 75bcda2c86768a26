// Package metadata parses the key=value text printed by media probing tools.
package metadata

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMetadataUnavailable is returned when the probe output does not carry
// the requested field or its value cannot be interpreted.
var ErrMetadataUnavailable = errors.New("metadata unavailable")

// Keys printed by the supported probing tools.
const (
	KeyFFprobeFrameRate = "r_frame_rate"     // ffprobe -show_streams
	KeyMPlayerFPS       = "ID_VIDEO_FPS"     // mplayer -identify
	KeyMPlayerBitrate   = "ID_VIDEO_BITRATE" // mplayer -identify, bits per second
)

// Lookup returns the value of the first line of output containing key.
// The value is the text after the last '=' on that line.
func Lookup(output []byte, key string) (string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, key) {
			continue
		}
		i := strings.LastIndex(line, "=")
		if i < 0 {
			return "", fmt.Errorf("%w: %s has no value", ErrMetadataUnavailable, key)
		}
		value := strings.TrimSpace(line[i+1:])
		if value == "" {
			return "", fmt.Errorf("%w: %s is empty", ErrMetadataUnavailable, key)
		}
		return value, nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMetadataUnavailable, err)
	}
	return "", fmt.Errorf("%w: %s not found", ErrMetadataUnavailable, key)
}

// FFprobeFrameRate extracts the video frame rate (e.g. "25/1") verbatim.
func FFprobeFrameRate(output []byte) (string, error) {
	return Lookup(output, KeyFFprobeFrameRate)
}

// MPlayerFPS extracts the video frame rate (e.g. "25.000") verbatim.
func MPlayerFPS(output []byte) (string, error) {
	return Lookup(output, KeyMPlayerFPS)
}

// MPlayerBitrateKbps extracts the video bitrate and converts it to whole kbps.
func MPlayerBitrateKbps(output []byte) (int, error) {
	raw, err := Lookup(output, KeyMPlayerBitrate)
	if err != nil {
		return 0, err
	}
	bps, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a number", ErrMetadataUnavailable, KeyMPlayerBitrate, raw)
	}
	return int(bps / 1000), nil
}

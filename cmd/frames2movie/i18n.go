// Package main provides localization for the frames2movie CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Output":   "出力先",
		"Encoding": "エンコード",
		"Logging":  "ログ",

		// Root command
		"Reassemble processed frames into a video with the original audio": "加工済みフレームを元の音声付きの動画に再構成する",

		// Flags
		"name of final video file (default: deepdream-<source>-<timestamp>.<ext>)": "最終動画ファイル名（デフォルト: deepdream-<source>-<timestamp>.<ext>）",
		"select which encoder to use (ffmpeg, mplayer)":                            "使用するエンコーダー (ffmpeg, mplayer)",
		"image type of the frames (jpg, png)":                                      "フレームの画像形式 (jpg, png)",
		"codec to encode video with, ffmpeg only (default: from config, libx264)":  "動画エンコードに使うコーデック、ffmpeg のみ（デフォルト: 設定値, libx264）",
		"keep intermediate audio and video files":                                  "中間の音声・動画ファイルを残す",
		"write a run report to this file (.md or .yaml)":                           "実行レポートをこのファイルに書き出す (.md または .yaml)",
		"configuration file (default: ~/.config/dreamframes/config.yaml)":          "設定ファイル（デフォルト: ~/.config/dreamframes/config.yaml）",
		"log level (debug, info, warn, error)":                                     "ログレベル (debug, info, warn, error)",
		"suppress all log output":                                                  "すべてのログ出力を抑制",
	})
}

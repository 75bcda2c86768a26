// Package main provides localization for the movie2frames CLI.
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
		"Extract the frames of a video into a numbered image sequence": "動画のフレームを連番画像として書き出す",

		// Flags
		"root working directory to use (default: current directory)":         "作業ルートディレクトリ（デフォルト: カレントディレクトリ）",
		"select which encoder to use (ffmpeg, mplayer)":                      "使用するエンコーダー (ffmpeg, mplayer)",
		"image type to output (jpg, png)":                                    "出力する画像形式 (jpg, png)",
		"pngcrush -m method used for png output (default: from config, 115)": "png 出力時の pngcrush -m メソッド（デフォルト: 設定値, 115）",
		"overwrite an existing source_frames directory without asking":       "既存の source_frames ディレクトリを確認せずに上書きする",
		"write a run report to this file (.md or .yaml)":                     "実行レポートをこのファイルに書き出す (.md または .yaml)",
		"configuration file (default: ~/.config/dreamframes/config.yaml)":    "設定ファイル（デフォルト: ~/.config/dreamframes/config.yaml）",
		"log level (debug, info, warn, error)":                               "ログレベル (debug, info, warn, error)",
		"suppress all log output":                                            "すべてのログ出力を抑制",
	})
}

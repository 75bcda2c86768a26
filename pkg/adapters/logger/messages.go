package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Run reporting (info)
		" START TIME: %s":                   " 開始時刻: %s",
		" END TIME: %s":                     " 終了時刻: %s",
		" TOOK %s":                          " 所要時間 %s",
		"Output saved to %s":                "出力を %s に保存しました",
		"Summary saved to %s":               "サマリーを %s に保存しました",
		"Intermediate files kept in %s":     "中間ファイルを %s に残しました",
		"Encoding %d frames at %s fps":      "%d フレームを %s fps でエンコード中",
		"Output tracks: video %s, audio %s": "出力トラック: 映像 %s, 音声 %s",

		// pngcrush stage
		"Running pngcrush on files in \"%s\"":    "\"%s\" のファイルに pngcrush を実行中",
		"pngcrush is not installed, skipping...": "pngcrush がインストールされていないため、スキップします...",
		"pngcrush failed on %s: %v":              "%s の pngcrush に失敗しました: %v",
		"Recompressed %d files (%d failed)":      "%d ファイルを再圧縮しました (失敗 %d)",

		// Frame sequence checks
		"%s not found in %s, the sequence starts at %s":                   "%s が %s にありません。連番は %s から始まります",
		"Could not read frame size: %v":                                   "フレームサイズを読み取れませんでした: %v",
		"Frame size %dx%d is odd, yuv420p encoding needs even dimensions": "フレームサイズ %dx%d が奇数です。yuv420p エンコードには偶数の寸法が必要です",
		"Frame size %dx%d":     "フレームサイズ %dx%d",
		"Source frame rate %s": "ソースのフレームレート %s",

		// Output inspection and cleanup
		"Could not inspect %s: %v":             "%s を検査できませんでした: %v",
		"Output has no audio track (video %s)": "出力に音声トラックがありません (映像 %s)",
		"Could not remove %s: %v":              "%s を削除できませんでした: %v",
		"Failed to write summary: %v":          "サマリーの書き込みに失敗しました: %v",

		// Directory preparation
		"Created %s":  "%s を作成しました",
		"Removing %s": "%s を削除中",

		// Command execution (debug)
		"Running %s": "%s を実行中",

		// Failures
		"ERROR! File not found":                                         "エラー: ファイルが見つかりません",
		"ERROR! imagedir or source file not found":                      "エラー: 画像ディレクトリまたはソースファイルが見つかりません",
		"ERROR! \"%s\" not found. Please make sure it's in your $PATH":  "エラー: \"%s\" が見つかりません。$PATH に含まれていることを確認してください",
		"Support for mplayer is currently disabled, use ffmpeg instead": "mplayer のサポートは現在無効です。ffmpeg を使用してください",
		"Directory exists, exiting...":                                  "ディレクトリが存在するため終了します...",
		"ERROR! %v":                                                     "エラー: %v",
		"Interrupted, shutting down...":                                 "中断されました。終了します...",
	})
}

// Package main provides localization for the breakstudio CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Design break-screen backgrounds for live streams": "ライブ配信の休憩画面背景をデザイン",

		// Global flags
		"Path to a YAML configuration file":                   "YAML設定ファイルのパス",
		"Log level (debug, info, warn, error)":                "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                             "すべてのログ出力を抑制",
		"Storage driver (sqlite or memory), overrides config": "ストレージドライバ（sqliteまたはmemory）、設定を上書き",
		"SQLite database path, overrides config":              "SQLiteデータベースのパス、設定を上書き",

		// Edit command
		"Edit a design in the terminal":   "ターミナルでデザインを編集",
		"Name for a newly created design": "新規作成するデザインの名前",

		// Export command
		"Export a stored design as a PNG image":               "保存済みデザインをPNG画像として出力",
		"Output PNG file path (required)":                     "出力PNGファイルパス（必須）",
		"Scale factor applied to the canvas, overrides config": "キャンバスに適用する倍率、設定を上書き",
		"TrueType font file for text widgets, overrides config": "テキストウィジェット用TrueTypeフォントファイル、設定を上書き",
		"a design id is required":                             "デザインIDが必要です",
		"Exporting %s (%dx%d)...":                             "%s（%dx%d）を出力中...",
		"Output saved to %s":                                  "出力を%sに保存しました",

		// Serve command
		"Run the design persistence HTTP service":   "デザイン永続化HTTPサービスを起動",
		"Listen address, overrides config (e.g. :8723)": "待ち受けアドレス、設定を上書き（例: :8723）",
		"Listening on %s":                            "%sで待ち受け中",
		"Interrupted, shutting down...":              "中断されました。シャットダウンしています...",

		// Inspect command
		"Print a Markdown summary of a stored design":  "保存済みデザインのMarkdownサマリーを表示",
		"Write the summary to a file instead of stdout": "サマリーを標準出力ではなくファイルに書き込む",
		"Design Summary": "デザインサマリー",
		"Document":       "ドキュメント",
		"Name":           "名前",
		"Updated":        "更新日時",
		"Canvas":         "キャンバス",
		"Background":     "背景",
		"Widgets":        "ウィジェット",
		"Total":          "合計",
		"Z":              "Z",
		"Type":           "種類",
		"Position":       "位置",
		"Size":           "サイズ",
		"Label":          "ラベル",
		"Generated":      "生成日時",

		// List command
		"List stored designs": "保存済みデザインの一覧を表示",
		"No designs stored.":  "デザインは保存されていません。",
		"%d widgets":          "ウィジェット%d個",
	})
}

package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Designer core
		"Skipping duplicate widget id %s":           "重複するウィジェットID %s をスキップします",
		"Dropping invalid widget %s: %v":            "不正なウィジェット %s を破棄します: %v",
		"Cannot restore widget %s: %v":              "ウィジェット %s を復元できません: %v",
		"Skipping unpastable widget %s: %v":         "貼り付けできないウィジェット %s をスキップします: %v",
		"Could not persist toolbox positions: %v":   "ツールボックス位置を保存できませんでした: %v",
		"Could not read toolbox positions: %v":      "ツールボックス位置を読み込めませんでした: %v",
		"Ignoring malformed toolbox positions: %v":  "破損したツールボックス位置を無視します: %v",

		// Export
		"Rendering design %s (%dx%d)":      "デザイン %s をレンダリング中 (%dx%d)",
		"Exported design to %s":            "デザインを %s に書き出しました",
		"Image %s failed to load: %v":      "画像 %s を読み込めませんでした: %v",
		"Capturing HTML content widget %s": "HTMLコンテンツウィジェット %s をキャプチャ中",

		// Persistence service
		"Listening on %s":              "%s で待機中",
		"Stored design %s":             "デザイン %s を保存しました",
		"Deleted design %s":            "デザイン %s を削除しました",
		"Design store unavailable: %v": "デザインストアを利用できません: %v",

		// Editor
		"Loaded design %s with %d widgets": "デザイン %s を読み込みました (ウィジェット %d 個)",
		"Saved design %s":                  "デザイン %s を保存しました",
		"Copied design JSON to clipboard":  "デザインJSONをクリップボードにコピーしました",
	})
}

package widget

import "github.com/user/breakstudio/pkg/events"

// Text displays a styled line or block of text.
type Text struct {
	Base
}

// NewText wraps text data in a live widget.
func NewText(data Data, bus *events.Bus) *Text {
	t := &Text{Base: newBase(data, bus)}
	if t.data.Text == nil {
		t.data.Text = &TextProps{
			Text:      "Text",
			FontSize:  16,
			FontColor: "#000000",
			TextAlign: "left",
		}
	}
	return t
}

// SetText replaces the text content and notifies listeners.
func (t *Text) SetText(s string) {
	if t.data.Text.Text == s {
		return
	}
	t.data.Text.Text = s
	t.publish(events.WidgetTextChanged{ID: t.data.ID, Text: s})
}

// SetFontFamily changes the font family name.
func (t *Text) SetFontFamily(family string) { t.data.Text.FontFamily = family }

// SetFontSize changes the font size in pixels. Sizes below 1 are
// clamped to 1.
func (t *Text) SetFontSize(size float64) {
	if size < 1 {
		size = 1
	}
	t.data.Text.FontSize = size
}

// SetFontColor changes the text color (hex string).
func (t *Text) SetFontColor(hex string) { t.data.Text.FontColor = hex }

// SetFontWeight changes the font weight ("normal", "bold").
func (t *Text) SetFontWeight(weight string) { t.data.Text.FontWeight = weight }

// SetFontStyle changes the font style ("normal", "italic").
func (t *Text) SetFontStyle(style string) { t.data.Text.FontStyle = style }

// SetTextDecoration changes the decoration ("none", "underline",
// "line-through").
func (t *Text) SetTextDecoration(deco string) { t.data.Text.TextDecoration = deco }

// SetTextAlign changes the horizontal alignment ("left", "center",
// "right").
func (t *Text) SetTextAlign(align string) { t.data.Text.TextAlign = align }

// Props returns a copy of the text property bag.
func (t *Text) Props() TextProps { return *t.data.Text }

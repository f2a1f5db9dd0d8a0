package events

import "github.com/user/breakstudio/pkg/geometry"

// WidgetAdded fires after a widget enters the designer's widget map.
type WidgetAdded struct {
	ID string
}

// WidgetRemoved fires after a widget leaves the designer's widget map.
type WidgetRemoved struct {
	ID string
}

// WidgetMoved fires after a widget's position changes, including every
// intermediate frame of a live drag.
type WidgetMoved struct {
	ID       string
	Position geometry.Point
}

// WidgetResized fires after a widget's size changes. The size has
// already been clamped to the widget floor.
type WidgetResized struct {
	ID   string
	Size geometry.Size
}

// WidgetTextChanged fires when a text widget's content changes.
type WidgetTextChanged struct {
	ID   string
	Text string
}

// QRWidgetResized fires when a QR widget is forced square after a
// resize, so property panels can show the corrected dimensions.
type QRWidgetResized struct {
	ID   string
	Side float64
}

// ImageChangeRequested fires when the user re-triggers the external
// change-image flow on an image or QR widget (double-click in the
// original UI).
type ImageChangeRequested struct {
	ID         string
	CurrentURL string
}

// SelectionChanged fires whenever the selection set or the reference
// widget changes.
type SelectionChanged struct {
	Selected    []string
	ReferenceID string
}

// HistoryChanged fires after every command execute/undo/redo so button
// enablement can be refreshed.
type HistoryChanged struct {
	CanUndo bool
	CanRedo bool
}

// PreviewModeChanged fires when editing chrome is toggled on or off.
type PreviewModeChanged struct {
	Preview bool
}

func (WidgetAdded) eventName() string          { return "widget-added" }
func (WidgetRemoved) eventName() string        { return "widget-removed" }
func (WidgetMoved) eventName() string          { return "widget-position-update" }
func (WidgetResized) eventName() string        { return "widget-size-update" }
func (WidgetTextChanged) eventName() string    { return "widget-text-update" }
func (QRWidgetResized) eventName() string      { return "qr-widget-resize" }
func (ImageChangeRequested) eventName() string { return "image-widget-change-request" }
func (SelectionChanged) eventName() string     { return "selection-changed" }
func (HistoryChanged) eventName() string       { return "history-changed" }
func (PreviewModeChanged) eventName() string   { return "preview-mode-changed" }

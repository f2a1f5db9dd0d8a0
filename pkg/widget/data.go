// Package widget implements the designer's widget model: the
// serializable widget data, the live widget types built on top of it,
// and the factory that constructs the right subtype.
package widget

import (
	"encoding/json"
	"fmt"

	"github.com/user/breakstudio/pkg/geometry"
)

// Type identifies a widget subtype.
type Type string

const (
	TypeBox   Type = "box"
	TypeText  Type = "text"
	TypeQR    Type = "qr"
	TypeImage Type = "image"
	TypeGroup Type = "group"
)

// Valid reports whether the type is one of the known widget types.
func (t Type) Valid() bool {
	switch t {
	case TypeBox, TypeText, TypeQR, TypeImage, TypeGroup:
		return true
	}
	return false
}

// BoxProps holds box-specific style properties.
type BoxProps struct {
	BackgroundColor string  `json:"backgroundColor,omitempty"`
	BorderRadius    float64 `json:"borderRadius,omitempty"`
}

// TextProps holds text-specific properties.
type TextProps struct {
	Text           string  `json:"text"`
	FontFamily     string  `json:"fontFamily,omitempty"`
	FontSize       float64 `json:"fontSize,omitempty"`
	FontColor      string  `json:"fontColor,omitempty"`
	FontWeight     string  `json:"fontWeight,omitempty"`
	FontStyle      string  `json:"fontStyle,omitempty"`
	TextDecoration string  `json:"textDecoration,omitempty"`
	TextAlign      string  `json:"textAlign,omitempty"`
}

// ImageProps holds the external image reference shared by image and QR
// widgets. The file bytes themselves live behind the image upload
// collaborator; the widget only carries the reference.
type ImageProps struct {
	ImageURL     string `json:"imageUrl"`
	ImageName    string `json:"imageName,omitempty"`
	UserID       string `json:"userId,omitempty"`
	BreakTypeID  string `json:"breakTypeId,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// GroupProps holds the ordered child references of a group frame.
type GroupProps struct {
	ChildIDs []string `json:"childIds"`
}

// Data is the canonical serializable state of one widget.
type Data struct {
	ID       string         `json:"id"`
	Type     Type           `json:"type"`
	Position geometry.Point `json:"position"`
	Size     geometry.Size  `json:"size"`
	ZIndex   int            `json:"zIndex"`

	// Content carries raw HTML for legacy free-content widgets.
	Content string `json:"content,omitempty"`

	Box   *BoxProps   `json:"box,omitempty"`
	Text  *TextProps  `json:"text,omitempty"`
	Image *ImageProps `json:"image,omitempty"`
	Group *GroupProps `json:"group,omitempty"`
}

// Rect returns the widget's bounding rectangle.
func (d Data) Rect() geometry.Rect {
	return geometry.RectFrom(d.Position, d.Size)
}

// Clone returns a deep copy so snapshots held by the command stacks and
// the clipboard never alias live state.
func (d Data) Clone() Data {
	out := d
	if d.Box != nil {
		b := *d.Box
		out.Box = &b
	}
	if d.Text != nil {
		t := *d.Text
		out.Text = &t
	}
	if d.Image != nil {
		i := *d.Image
		out.Image = &i
	}
	if d.Group != nil {
		g := GroupProps{ChildIDs: append([]string(nil), d.Group.ChildIDs...)}
		out.Group = &g
	}
	return out
}

// Validate checks the structural invariants a Data must satisfy before
// it can back a live widget.
func (d Data) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("widget has no id")
	}
	if !d.Type.Valid() {
		return fmt.Errorf("widget %s has unknown type %q", d.ID, d.Type)
	}
	if d.Type == TypeGroup && d.Group == nil {
		return fmt.Errorf("group widget %s has no child list", d.ID)
	}
	return nil
}

// MarshalJSON keeps the serialized size clamped so persisted designs
// never round-trip a sub-floor widget.
func (d Data) MarshalJSON() ([]byte, error) {
	type alias Data
	a := alias(d)
	a.Size = a.Size.Clamped()
	return json.Marshal(a)
}

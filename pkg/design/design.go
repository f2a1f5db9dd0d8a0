// Package design defines the persistence boundary object: a named
// canvas with its widget data, serializable to JSON with round-trip
// fidelity.
package design

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/user/breakstudio/pkg/widget"
)

// DefaultWidth and DefaultHeight are the canvas dimensions of a fresh
// break-screen design.
const (
	DefaultWidth  = 1920.0
	DefaultHeight = 1080.0
)

// Design is one break-screen background layout.
type Design struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Width      float64       `json:"width"`
	Height     float64       `json:"height"`
	Background string        `json:"background,omitempty"`
	Widgets    []widget.Data `json:"widgets"`
	CreatedAt  time.Time     `json:"createdAt,omitempty"`
	UpdatedAt  time.Time     `json:"updatedAt,omitempty"`
}

// Summary is the listing view of a stored design.
type Summary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Widgets   int       `json:"widgets"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// New creates an empty design with default canvas dimensions.
func New(id, name string) Design {
	return Design{
		ID:     id,
		Name:   name,
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// Summary returns the design's listing view.
func (d Design) Summary() Summary {
	return Summary{ID: d.ID, Name: d.Name, Widgets: len(d.Widgets), UpdatedAt: d.UpdatedAt}
}

// Clone returns a deep copy of the design.
func (d Design) Clone() Design {
	out := d
	out.Widgets = make([]widget.Data, len(d.Widgets))
	for i, w := range d.Widgets {
		out.Widgets[i] = w.Clone()
	}
	return out
}

// Validate checks each widget and rejects duplicate ids; malformed
// persisted state must not reach the designer.
func (d Design) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("design has no id")
	}
	seen := make(map[string]bool, len(d.Widgets))
	for _, w := range d.Widgets {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("design %s: %w", d.ID, err)
		}
		if seen[w.ID] {
			return fmt.Errorf("design %s: duplicate widget id %s", d.ID, w.ID)
		}
		seen[w.ID] = true
	}
	return nil
}

// Encode serializes the design to JSON.
func (d Design) Encode() ([]byte, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode design %s: %w", d.ID, err)
	}
	return raw, nil
}

// Decode parses a design from JSON and validates it.
func Decode(raw []byte) (Design, error) {
	var d Design
	if err := json.Unmarshal(raw, &d); err != nil {
		return Design{}, fmt.Errorf("decode design: %w", err)
	}
	if err := d.Validate(); err != nil {
		return Design{}, err
	}
	return d, nil
}

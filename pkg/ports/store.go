package ports

import (
	"context"
	"errors"

	"github.com/user/breakstudio/pkg/design"
)

// ErrDesignNotFound is returned by stores when the requested design id
// does not exist.
var ErrDesignNotFound = errors.New("design not found")

// DesignStore abstracts persistence of design documents. The core only
// guarantees round-trip fidelity of the design's widget data; where
// and how it is stored belongs to the adapter.
type DesignStore interface {
	// List returns summaries of every stored design.
	List(ctx context.Context) ([]design.Summary, error)

	// Get loads one design by id.
	Get(ctx context.Context, id string) (design.Design, error)

	// Put stores a design, inserting or replacing by id.
	Put(ctx context.Context, d design.Design) error

	// Delete removes a design by id.
	Delete(ctx context.Context, id string) error
}

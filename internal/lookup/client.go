// Package lookup fetches legal entity records from a registry.
//
// Client is the single external collaborator of the search flow. The GLEIF
// client talks to the public LEI API; the cached and traced clients decorate
// any Client.
package lookup

import (
	"context"

	"github.com/zjrosen/leifetch/internal/entity"
)

// Client looks up one legal entity record by identifier.
type Client interface {
	Lookup(ctx context.Context, lei string) (entity.Record, error)
}

// ClientFunc adapts a function to Client.
type ClientFunc func(ctx context.Context, lei string) (entity.Record, error)

// Lookup implements Client.
func (f ClientFunc) Lookup(ctx context.Context, lei string) (entity.Record, error) {
	return f(ctx, lei)
}

// Package memory holds the process-wide catalog, booking, and user
// collections. Data lives for the lifetime of the process and is gone on
// restart; that is the intended durability model, not a gap.
package memory

import "github.com/google/uuid"

// IDFunc produces record ids. The stores assign ids themselves so callers
// can never supply one.
type IDFunc func() string

// NewID is the default id provider.
func NewID() string {
	return uuid.NewString()
}

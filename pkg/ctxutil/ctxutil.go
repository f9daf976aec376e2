package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const lookupIDKey ctxKey = "lookup_id"

// WithLookupID stores the lookup ID in the context.
func WithLookupID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, lookupIDKey, id)
}

// NewLookupContext returns ctx carrying a freshly generated lookup ID.
func NewLookupContext(ctx context.Context) context.Context {
	return WithLookupID(ctx, uuid.New())
}

// LookupIDFromCtx extracts the lookup ID as a string.
// Returns an empty string if absent or nil.
func LookupIDFromCtx(ctx context.Context) string {
	id, ok := ctx.Value(lookupIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return ""
	}
	return id.String()
}

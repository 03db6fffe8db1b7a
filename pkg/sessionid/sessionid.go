package sessionid

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// New returns a fresh session id.
func New() string {
	return uuid.NewString()
}

// NewContext returns a copy of ctx carrying the given session id.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the session id stored in ctx, if any.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

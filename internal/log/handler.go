package log

import (
	"context"
	"log/slog"

	"github.com/tuanvumaihuynh/pos/pkg/sessionid"
)

var _ slog.Handler = (*enrichedHandler)(nil)

// enrichedHandler enriches logs with the operator session id
type enrichedHandler struct {
	h slog.Handler
}

func newEnrichedHandler(h slog.Handler) enrichedHandler {
	return enrichedHandler{h: h}
}

func (eh enrichedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return eh.h.Enabled(ctx, level)
}

func (eh enrichedHandler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := sessionid.FromContext(ctx); ok {
		r.Add("session_id", slog.StringValue(id))
	}

	return eh.h.Handle(ctx, r)
}

func (eh enrichedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newEnrichedHandler(eh.h.WithAttrs(attrs))
}

func (eh enrichedHandler) WithGroup(name string) slog.Handler {
	return newEnrichedHandler(eh.h.WithGroup(name))
}

package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx. A context without one
// yields zerolog's disabled logger, so callers never need a nil check.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags every record logged through the returned context with
// the given component name.
func WithComponent(ctx context.Context, component string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Str("component", component).Logger())
}

package mocks

import (
	"context"

	"salon/infras/otel"
)

// noopOtel hands out no-op scopes and keeps the caller's context.
type noopOtel struct{}

func NewOtel() otel.Otel {
	return noopOtel{}
}

func (noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

func (noopOtel) Shutdown(context.Context) error {
	return nil
}

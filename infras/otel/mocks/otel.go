package mocks

import (
	"context"

	"hotel/infras/otel"
)

// noop satisfies otel.Otel and otel.Scope without recording anything.
type noop struct{}

func NewOtel() otel.Otel {
	return noop{}
}

func (noop) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, noop{}
}

func (noop) Shutdown(_ context.Context) error { return nil }

func (noop) End() {}

func (noop) TraceError(_ error) {}

func (noop) TraceIfError(_ error) {}

func (noop) AddEvent(_ string) {}

func (noop) SetAttribute(_ string, _ any) {}

func (noop) SetAttributes(_ map[string]any) {}

package service

import (
	"context"

	"hotel/internal/domains/booking/model"
)

type ObserverFunc func(ctx context.Context, event model.Event)

func (f ObserverFunc) OnBookingEvent(ctx context.Context, event model.Event) {
	f(ctx, event)
}

type CancelOption func(*cancelOptions)

type cancelOptions struct {
	tolerateCancelled bool
}

// TolerateCancelled makes cancelling an already cancelled booking a successful no-op.
func TolerateCancelled() CancelOption {
	return func(o *cancelOptions) {
		o.tolerateCancelled = true
	}
}

func newCancelOptions(opts []CancelOption) cancelOptions {
	options := cancelOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	return options
}

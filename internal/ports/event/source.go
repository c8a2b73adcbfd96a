package event

import (
	"context"

	"fastblog/internal/core/event"
)

// EventSource fetches the raw event feed. Failures wrap event.ErrUpstreamUnavailable.
type EventSource interface {
	Fetch(ctx context.Context) ([]event.Event, error)
}

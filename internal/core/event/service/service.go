package eventapp

import (
	"context"

	"fastblog/internal/core/event"
	eventPort "fastblog/internal/ports/event"

	"go.uber.org/zap"
)

// EventService lists permitted events. The feed is a non-critical display
// feature: any upstream failure is logged and yields an empty list.
type EventService struct {
	Source eventPort.EventSource
	Logger *zap.Logger
}

func NewEventService(source eventPort.EventSource, logger *zap.Logger) *EventService {
	return &EventService{Source: source, Logger: logger}
}

// ListEvents never returns nil and never fails.
func (s *EventService) ListEvents(ctx context.Context) []event.Event {
	all, err := s.Source.Fetch(ctx)
	if err != nil {
		s.Logger.Warn("event feed unavailable, returning no events", zap.Error(err))
		return []event.Event{}
	}

	permitted := make([]event.Event, 0, len(all))
	for _, e := range all {
		if e.Permitted() {
			permitted = append(permitted, e)
		}
	}
	return permitted
}

package event

import "errors"

var ErrUpstreamUnavailable = errors.New("event feed unavailable")

// Event is one CSV row keyed by the header fields.
type Event map[string]string

// ExcludedStatuses are never shown.
var ExcludedStatuses = map[string]struct{}{
	"Expired":   {},
	"Cancelled": {},
	"Inactive":  {},
}

// Permitted reports whether the event's status is not excluded. Rows without a status are kept.
func (e Event) Permitted() bool {
	_, excluded := ExcludedStatuses[e["status"]]
	return !excluded
}

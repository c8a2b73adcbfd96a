package csvfeed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"fastblog/internal/core/event"
)

// Client downloads a CSV document and maps each row onto the header row.
type Client struct {
	URL        string
	Timeout    time.Duration
	HTTPClient *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		URL:        url,
		Timeout:    timeout,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Fetch(ctx context.Context) ([]event.Event, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("request error: %w: %v", event.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error: %w: %v", event.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d: %w", resp.StatusCode, event.ErrUpstreamUnavailable)
	}

	events, err := Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("CSV error: %w: %v", event.ErrUpstreamUnavailable, err)
	}
	return events, nil
}

// Parse reads a CSV document whose first row is the header. Short rows leave
// the missing fields empty and extra fields are dropped.
func Parse(r io.Reader) ([]event.Event, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []event.Event{}, nil
	}
	if err != nil {
		return nil, err
	}

	events := make([]event.Event, 0)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return events, nil
		}
		if err != nil {
			return nil, err
		}
		e := make(event.Event, len(header))
		for i, field := range header {
			if i < len(row) {
				e[field] = row[i]
			} else {
				e[field] = ""
			}
		}
		events = append(events, e)
	}
}

package event

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
)

const eventsPath = "/events"

// StatusError is returned when the Event Service answers with a non-2xx status.
type StatusError struct {
	Op         string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: Event Service returned non-OK status: %d", e.Op, e.StatusCode)
}

type Client interface {
	List(ctx context.Context) ([]Event, error)               // GET /events
	Create(ctx context.Context, title string) (Event, error) // POST /events
}

type ClientImpl struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the Event Service at baseURL. Requests carry
// no timeout of their own; only the caller's context can end them.
func NewClient(baseURL string, httpClient *http.Client) *ClientImpl {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &ClientImpl{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// List retrieves the full event collection in the order the service returns it.
func (c *ClientImpl) List(ctx context.Context) ([]Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+eventsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create list request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, &StatusError{Op: "list events", StatusCode: resp.StatusCode}
	}

	var events []Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	if events == nil {
		events = []Event{}
	}
	log.Debugf("Listed %d events", len(events))

	return events, nil
}

// Create posts a new event with the given title and returns the stored record.
func (c *ClientImpl) Create(ctx context.Context, title string) (Event, error) {
	body, err := json.Marshal(createEventRequest{Title: title})
	if err != nil {
		return Event{}, fmt.Errorf("failed to encode event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+eventsPath, bytes.NewReader(body))
	if err != nil {
		return Event{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Event{}, fmt.Errorf("failed to create event: %w", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return Event{}, &StatusError{Op: "create event", StatusCode: resp.StatusCode}
	}

	var created Event
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return Event{}, fmt.Errorf("failed to decode created event: %w", err)
	}
	log.Debugf("Event Service stored event %s", created.ID)

	return created, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

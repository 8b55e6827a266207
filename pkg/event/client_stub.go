package event

import (
	"context"
	"strconv"
	"sync"
)

// ClientStub is an in-memory Event Service. It assigns sequential numeric ids,
// records every create request and can be told to fail either call.
type ClientStub struct {
	mu         sync.Mutex
	events     []Event
	nextID     int
	created    []string
	listCalls  int
	listErr    error
	createErr  error
	createGate chan struct{}
}

func NewClientStub(events ...Event) *ClientStub {
	stored := make([]Event, len(events))
	copy(stored, events)
	return &ClientStub{events: stored, nextID: len(events) + 1}
}

func (c *ClientStub) List(ctx context.Context) ([]Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.listCalls++
	if c.listErr != nil {
		return nil, c.listErr
	}

	result := make([]Event, len(c.events))
	copy(result, c.events)
	return result, nil
}

func (c *ClientStub) Create(ctx context.Context, title string) (Event, error) {
	c.mu.Lock()
	gate := c.createGate
	c.created = append(c.created, title)
	c.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return Event{}, ctx.Err()
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.createErr != nil {
		return Event{}, c.createErr
	}
	created := Event{ID: ID(strconv.Itoa(c.nextID)), Title: title}
	c.nextID++
	c.events = append(c.events, created)
	return created, nil
}

func (c *ClientStub) SetListError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listErr = err
}

func (c *ClientStub) SetCreateError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.createErr = err
}

// HoldCreates makes every following Create wait for a value on the returned channel.
func (c *ClientStub) HoldCreates() chan<- struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.createGate = make(chan struct{})
	return c.createGate
}

// CreatedTitles returns the titles of all create requests received so far.
func (c *ClientStub) CreatedTitles() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := make([]string, len(c.created))
	copy(result, c.created)
	return result
}

func (c *ClientStub) ListCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listCalls
}

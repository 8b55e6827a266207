package board

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/klokku/eventboard/internal/utils"
	"github.com/klokku/eventboard/pkg/event"
	log "github.com/sirupsen/logrus"
)

const (
	NoEventsMessage     = "No events yet. Add one above!"
	LoadFailedMessage   = "Failed to load events. Make sure the server is running."
	CreateFailedMessage = "Failed to add event. Please try again."

	DefaultHideAfter = 3000 * time.Millisecond

	noEventsMarker = "No events yet"
)

// Board is one open page of the event client: the list mirrored from the
// Event Service, the add form and the transient error banner.
//
// The page is only touched with mu held. Calls to the Event Service run
// without it, so a load and any number of creates proceed independently.
type Board struct {
	client    event.Client
	clock     utils.Clock
	hideAfter time.Duration

	mu   sync.Mutex
	page *page

	ready    sync.Once
	readyErr error
}

func NewBoard(client event.Client, clock utils.Clock, hideAfter time.Duration) (*Board, error) {
	if hideAfter <= 0 {
		hideAfter = DefaultHideAfter
	}
	p, err := newPage(hideAfter)
	if err != nil {
		return nil, err
	}
	return &Board{
		client:    client,
		clock:     clock,
		hideAfter: hideAfter,
		page:      p,
	}, nil
}

// Ready is the page-loaded trigger. The first call loads the events; later
// calls return the result of that first load without contacting the service.
func (b *Board) Ready(ctx context.Context) error {
	b.ready.Do(func() {
		log.Info("Page loaded. Fetching events from server...")
		b.readyErr = b.Load(ctx)
	})
	return b.readyErr
}

// Load fetches the full collection and rebuilds the list from it.
func (b *Board) Load(ctx context.Context) error {
	events, err := b.client.List(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		log.Errorf("Error fetching events: %v", err)
		b.page.replaceList(LoadFailedMessage, classError)
		return err
	}

	b.page.clearList()
	if len(events) == 0 {
		b.page.appendPlaceholder(NoEventsMessage, classMuted)
		return nil
	}
	for _, e := range events {
		b.page.appendEvent(e)
	}
	log.Debugf("Rendered %d events", len(events))
	return nil
}

// RenderEvent appends one event to the end of the list.
func (b *Board) RenderEvent(e event.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.page.appendEvent(e)
}

// ShowError puts message in the banner and hides the banner after the
// configured delay. Earlier timers are left running, so an older message's
// timer can hide a newer message before its own delay has passed.
func (b *Board) ShowError(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.showError(message)
}

func (b *Board) showError(message string) {
	b.page.showBanner(message)
	b.clock.AfterFunc(b.hideAfter, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.page.hideBanner()
	})
}

// Submit handles a submission of the add form with the raw text of the title
// field. Validation failures and service failures are reported in the banner
// and returned; on success the new event is appended and the field cleared.
func (b *Board) Submit(ctx context.Context, rawTitle string) error {
	b.mu.Lock()
	b.page.setInput(rawTitle)
	title, err := event.ValidateTitle(rawTitle)
	if err != nil {
		b.showError(err.Error())
		b.mu.Unlock()
		return err
	}
	b.mu.Unlock()

	created, err := b.client.Create(ctx, title)

	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		log.Errorf("Error adding event: %v", err)
		b.showError(CreateFailedMessage)
		return err
	}

	if b.page.hasLoadingEntry() {
		b.page.clearList()
	}
	if text, ok := b.page.firstEntryText(); ok && strings.Contains(text, noEventsMarker) {
		b.page.clearList()
	}
	b.page.appendEvent(created)
	b.page.clearInput()
	b.page.focusInput()

	log.WithFields(log.Fields{"id": created.ID, "title": created.Title}).Info("Event added successfully")
	return nil
}

// Snapshot returns a copy of what the page shows right now.
func (b *Board) Snapshot() View {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.page.view()
}

// HTML serialises the page as a complete HTML document.
func (b *Board) HTML() (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.page.html()
}

// IsValidationError reports whether err came from checking the title before
// any request was sent.
func IsValidationError(err error) bool {
	return errors.Is(err, event.ErrTitleEmpty) || errors.Is(err, event.ErrTitleTooShort)
}

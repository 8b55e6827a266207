package board

import (
	"context"
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	sessions *Sessions
}

func NewHandler(sessions *Sessions) *Handler {
	return &Handler{sessions}
}

// Index is a page load: the session gets a fresh board which loads the events
// before the page is served.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	sessionID, err := SessionID(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	b, err := h.sessions.Open(sessionID)
	if err != nil {
		log.Errorf("failed to open board: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	// A failed load is shown on the page itself.
	_ = b.Ready(detach(r.Context()))

	writePage(w, b, http.StatusOK)
}

// Submit handles the add form posted from the session's page.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID, err := SessionID(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}
	title := r.PostForm.Get("title")
	ctx := detach(r.Context())

	b := h.sessions.Get(sessionID)
	if b == nil {
		log.Debugf("no board for session %s, opening one", sessionID)
		b, err = h.sessions.Open(sessionID)
		if err != nil {
			log.Errorf("failed to open board: %v", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = b.Ready(ctx)
	}

	status := http.StatusOK
	if err := b.Submit(ctx, title); err != nil {
		if IsValidationError(err) {
			status = http.StatusUnprocessableEntity
		} else {
			status = http.StatusBadGateway
		}
	}
	writePage(w, b, status)
}

// State returns the session's page as JSON.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	sessionID, err := SessionID(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	b := h.sessions.Get(sessionID)
	if b == nil {
		http.Error(w, "No page open for this session", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(b.Snapshot()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func writePage(w http.ResponseWriter, b *Board, status int) {
	body, err := b.HTML()
	if err != nil {
		log.Errorf("failed to render page: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		log.Debugf("failed to write page: %v", err)
	}
}

// detach keeps an issued Event Service call running after the browser goes away.
func detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}

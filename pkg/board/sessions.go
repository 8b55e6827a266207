package board

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/klokku/eventboard/internal/utils"
	log "github.com/sirupsen/logrus"
)

type contextKey string

const SessionKey contextKey = "session"

var ErrNoSession = errors.New("session not found")

// SessionID retrieves the browser session id from the context.
func SessionID(ctx context.Context) (string, error) {
	id, ok := ctx.Value(SessionKey).(string)
	if !ok || id == "" {
		log.Trace("session not found in context")
		return "", ErrNoSession
	}
	return id, nil
}

func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, SessionKey, id)
}

// Sessions keeps the board currently open in each browser session.
type Sessions struct {
	mu          sync.Mutex
	boards      map[string]*session
	newBoard    func() (*Board, error)
	clock       utils.Clock
	idleTimeout time.Duration
}

type session struct {
	board    *Board
	lastSeen time.Time
}

func NewSessions(newBoard func() (*Board, error), clock utils.Clock, idleTimeout time.Duration) *Sessions {
	return &Sessions{
		boards:      make(map[string]*session),
		newBoard:    newBoard,
		clock:       clock,
		idleTimeout: idleTimeout,
	}
}

// Open starts a fresh board for the session, replacing any board it had.
// This is what a page load does.
func (s *Sessions) Open(id string) (*Board, error) {
	b, err := s.newBoard()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	s.evictIdle(now)
	s.boards[id] = &session{board: b, lastSeen: now}
	return b, nil
}

// Get returns the board currently open in the session, or nil.
func (s *Sessions) Get(id string) *Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.boards[id]
	if !ok {
		return nil
	}
	sess.lastSeen = s.clock.Now()
	return sess.board
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.boards)
}

func (s *Sessions) evictIdle(now time.Time) {
	if s.idleTimeout <= 0 {
		return
	}
	for id, sess := range s.boards {
		if now.Sub(sess.lastSeen) > s.idleTimeout {
			log.Debugf("Evicting idle session %s", id)
			delete(s.boards, id)
		}
	}
}

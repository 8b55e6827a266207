package app

import (
	"github.com/klokku/eventboard/internal/config"
	"github.com/klokku/eventboard/internal/utils"
	"github.com/klokku/eventboard/pkg/board"
	"github.com/klokku/eventboard/pkg/event"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventClient event.Client

	Sessions     *board.Sessions
	BoardHandler *board.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) *Dependencies {
	return BuildDependenciesWith(cfg, event.NewClient(cfg.EventService.BaseURL, nil), utils.SystemClock{})
}

// BuildDependenciesWith wires the application around the given Event Service
// client and clock.
func BuildDependenciesWith(cfg config.Application, client event.Client, clock utils.Clock) *Dependencies {
	deps := &Dependencies{}

	deps.EventClient = client
	deps.Clock = clock

	deps.Sessions = board.NewSessions(func() (*board.Board, error) {
		return board.NewBoard(deps.EventClient, deps.Clock, cfg.Banner.HideAfter)
	}, deps.Clock, cfg.Session.IdleTimeout)
	deps.BoardHandler = board.NewHandler(deps.Sessions)

	return deps
}

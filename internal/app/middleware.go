package app

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/klokku/eventboard/internal/config"
	"github.com/klokku/eventboard/pkg/board"
	log "github.com/sirupsen/logrus"
)

const sessionCookie = "eventboard_session"

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {
	r.Use(requestLogger)
	r.Use(sessionMiddleware)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, req)
		log.WithFields(log.Fields{
			"method":   req.Method,
			"path":     req.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start),
		}).Debug("request")
	})
}

// Propagate the browser session cookie into the context, issuing one when missing
func sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		sessionID := ""
		if c, err := req.Cookie(sessionCookie); err == nil {
			if _, err := uuid.Parse(c.Value); err == nil {
				sessionID = c.Value
			} else {
				log.Debugf("ignoring malformed session cookie: %v", err)
			}
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
			log.Debugf("new session: %s", sessionID)
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, req.WithContext(board.WithSessionID(req.Context(), sessionID)))
	})
}

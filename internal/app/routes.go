package app

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/klokku/eventboard/internal/config"
)

// RegisterRoutes registers all endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Page
	r.HandleFunc("/", deps.BoardHandler.Index).Methods("GET")
	r.HandleFunc("/events", deps.BoardHandler.Submit).Methods("POST")
	r.HandleFunc("/state", deps.BoardHandler.State).Methods("GET")

	// Health
	r.HandleFunc("/health", health).Methods("GET")
}

func health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

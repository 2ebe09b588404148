package tables

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// ProgressServer exposes a Tracker's status as JSON over HTTP, for
// watching a multi-hour table-generation run from another machine.
type ProgressServer struct {
	router  *mux.Router
	tracker *Tracker
}

// NewProgressServer builds a status server backed by the given tracker.
func NewProgressServer(tracker *Tracker) *ProgressServer {
	s := &ProgressServer{router: mux.NewRouter(), tracker: tracker}
	s.router.HandleFunc("/status", s.handleStatus).Methods("GET")
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
	return s
}

func (s *ProgressServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.tracker.Snapshot()); err != nil {
		log.Printf("tables: encoding status: %v", err)
	}
}

func (s *ProgressServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Start serves the status endpoint on addr until the process exits or the
// listener fails. Intended to run in its own goroutine alongside
// generation.
func (s *ProgressServer) Start(addr string) error {
	log.Printf("table generation status server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

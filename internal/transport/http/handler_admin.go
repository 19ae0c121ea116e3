package httptransport

import (
	"net/http"
	"time"

	"casino-sim/internal/store"

	"github.com/rs/zerolog/log"
)

type AdminHandlers struct {
	store *store.Store
}

func NewAdminHandlers(st *store.Store) *AdminHandlers {
	return &AdminHandlers{store: st}
}

func (h *AdminHandlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

func (h *AdminHandlers) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runs, tables := h.store.Counts()
		writeJSON(w, http.StatusOK, map[string]any{"runs": runs, "tables": tables})
	}
}

// Sweep evicts idle runs and tables immediately instead of waiting for the janitor.
func (h *AdminHandlers) Sweep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runs, tables := h.store.Sweep(time.Now())
		log.Info().Int("runs", runs).Int("tables", tables).Msg("manual sweep")
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "runs_evicted": runs, "tables_evicted": tables})
	}
}

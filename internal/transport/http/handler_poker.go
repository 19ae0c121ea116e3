package httptransport

import (
	"context"
	"errors"
	"net/http"

	apptable "casino-sim/internal/app/table"
	"casino-sim/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type PokerHandlers struct {
	svc *apptable.Service
	cfg config.PokerConfig
}

func NewPokerHandlers(svc *apptable.Service, cfg config.PokerConfig) *PokerHandlers {
	return &PokerHandlers{svc: svc, cfg: cfg}
}

type createTableRequest struct {
	Chips looseInt `json:"chips"`
	Ante  looseInt `json:"ante"`
	Lang  string   `json:"lang"`
}

type amountRequest struct {
	Amount looseInt `json:"amount"`
}

func (h *PokerHandlers) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTableRequest
		if !decodeBody(w, r, &req) {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		resp, err := h.svc.Create(r.Context(), apptable.CreateRequest{
			Chips: req.Chips.value(h.cfg.MinChips),
			Ante:  req.Ante.value(h.cfg.MinAnte),
			Lang:  requestLang(r, req.Lang),
		})
		if err != nil {
			h.writeError(w, "", err)
			return
		}
		metricTablesOpenedTotal.Add(1)
		writeJSON(w, http.StatusCreated, resp)
	}
}

func (h *PokerHandlers) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "table_id")
		resp, err := h.svc.Get(r.Context(), id)
		if err != nil {
			h.writeError(w, id, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *PokerHandlers) SetChips() http.HandlerFunc {
	return h.amount(h.cfg.MinChips, h.svc.SetChips)
}

func (h *PokerHandlers) SetAnte() http.HandlerFunc {
	return h.amount(h.cfg.MinAnte, h.svc.SetAnte)
}

func (h *PokerHandlers) amount(floor int64, apply func(context.Context, string, int64) (*apptable.TableResponse, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req amountRequest
		if !decodeBody(w, r, &req) || !req.Amount.set {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		id := chi.URLParam(r, "table_id")
		resp, err := apply(r.Context(), id, *req.Amount.value(floor))
		if err != nil {
			h.writeError(w, id, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *PokerHandlers) Deal() http.HandlerFunc { return h.action(h.svc.Deal, false) }
func (h *PokerHandlers) Fold() http.HandlerFunc { return h.action(h.svc.Fold, true) }
func (h *PokerHandlers) Play() http.HandlerFunc { return h.action(h.svc.Play, true) }
func (h *PokerHandlers) Next() http.HandlerFunc { return h.action(h.svc.Next, false) }

func (h *PokerHandlers) action(apply func(context.Context, string) (*apptable.TableResponse, error), settles bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "table_id")
		resp, err := apply(r.Context(), id)
		if err != nil {
			h.writeError(w, id, err)
			return
		}
		if settles {
			metricHandsSettledTotal.Add(1)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *PokerHandlers) writeError(w http.ResponseWriter, id string, err error) {
	switch {
	case errors.Is(err, apptable.ErrInvalidRequest):
		WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
	case errors.Is(err, apptable.ErrTableNotFound):
		WriteHTTPError(w, http.StatusNotFound, "table_not_found")
	case errors.Is(err, apptable.ErrInsufficientChips):
		metricTableRefusalsTotal.Add(1)
		writeRefusal(w, http.StatusConflict, "insufficient_chips", h.svc.RefusalMessage(id, err))
	case errors.Is(err, apptable.ErrWrongPhase):
		metricTableRefusalsTotal.Add(1)
		writeRefusal(w, http.StatusConflict, "wrong_phase", h.svc.RefusalMessage(id, err))
	default:
		log.Error().Err(err).Str("table_id", id).Msg("poker request failed")
		WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
	}
}

package httptransport

import (
	"errors"
	"fmt"
	"net/http"

	appsim "casino-sim/internal/app/simulation"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type BaccaratHandlers struct {
	svc *appsim.Service
}

func NewBaccaratHandlers(svc *appsim.Service) *BaccaratHandlers {
	return &BaccaratHandlers{svc: svc}
}

type simulationRequest struct {
	Strategy       string     `json:"strategy"`
	Rounds         looseInt   `json:"rounds"`
	InitialBalance looseInt   `json:"initial_balance"`
	MinBet         looseInt   `json:"min_bet"`
	Commission     looseFloat `json:"commission"`
	MaxLossStreak  looseInt   `json:"max_loss_streak"`
	Lang           string     `json:"lang"`
}

func (req simulationRequest) toRun(r *http.Request) appsim.RunRequest {
	return appsim.RunRequest{
		Strategy:       req.Strategy,
		Rounds:         req.Rounds.value(1),
		InitialBalance: req.InitialBalance.value(0),
		MinBet:         req.MinBet.value(1),
		Commission:     req.Commission.value(),
		MaxLossStreak:  req.MaxLossStreak.value(1),
		Lang:           requestLang(r, req.Lang),
	}
}

type batchRequest struct {
	simulationRequest
	Runs looseInt `json:"runs"`
}

func (h *BaccaratHandlers) Strategies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, h.svc.Strategies(requestLang(r, "")))
	}
}

func (h *BaccaratHandlers) Simulate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req simulationRequest
		if !decodeBody(w, r, &req) {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		resp, err := h.svc.Run(r.Context(), req.toRun(r))
		if err != nil {
			writeSimulationError(w, err)
			return
		}
		metricSimulationRunsTotal.Add(1)
		metricSimulationRoundsTotal.Add(int64(resp.Summary.TotalRounds))
		writeJSON(w, http.StatusCreated, resp)
	}
}

func (h *BaccaratHandlers) GetRun() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.svc.Get(r.Context(), chi.URLParam(r, "run_id"))
		if err != nil {
			writeSimulationError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *BaccaratHandlers) Export() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := h.svc.Export(r.Context(), chi.URLParam(r, "run_id"), r.URL.Query().Get("format"))
		if err != nil {
			writeSimulationError(w, err)
			return
		}
		metricExportsTotal.Add(1)
		w.Header().Set("Content-Type", file.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(file.Body)
	}
}

func (h *BaccaratHandlers) Batch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req batchRequest
		if !decodeBody(w, r, &req) {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		resp, err := h.svc.Batch(r.Context(), appsim.BatchRequest{
			RunRequest: req.toRun(r),
			Runs:       req.Runs.value(1),
		})
		if err != nil {
			writeSimulationError(w, err)
			return
		}
		metricBatchRunsTotal.Add(int64(resp.Runs))
		writeJSON(w, http.StatusOK, resp)
	}
}

func writeSimulationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, appsim.ErrInvalidRequest):
		WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
	case errors.Is(err, appsim.ErrUnknownStrategy):
		WriteHTTPError(w, http.StatusBadRequest, "unknown_strategy")
	case errors.Is(err, appsim.ErrRunNotFound):
		WriteHTTPError(w, http.StatusNotFound, "run_not_found")
	default:
		log.Error().Err(err).Msg("baccarat request failed")
		WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
	}
}

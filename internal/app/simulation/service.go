package simulation

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"casino-sim/internal/baccarat"
	"casino-sim/internal/config"
	"casino-sim/internal/export"
	"casino-sim/internal/locale"
	"casino-sim/internal/randsrc"
	"casino-sim/internal/store"

	"github.com/rs/zerolog/log"
)

type Service struct {
	store *store.Store
	cfg   config.BaccaratConfig
	lang  string
	src   randsrc.Source
}

func NewService(st *store.Store, cfg config.BaccaratConfig, lang string, src randsrc.Source) *Service {
	return &Service{store: st, cfg: cfg, lang: lang, src: src}
}

func (s *Service) locale(lang string) locale.Locale {
	if lang == "" {
		lang = s.lang
	}
	return locale.New(lang)
}

func (s *Service) Strategies(lang string) *StrategiesResponse {
	loc := s.locale(lang)
	items := make([]StrategyItem, 0, len(baccarat.Strategies))
	for _, id := range baccarat.Strategies {
		items = append(items, StrategyItem{ID: id, Name: loc.Strategy(id)})
	}
	return &StrategiesResponse{Items: items}
}

// simConfig layers request overrides on the environment defaults. Round
// counts are capped by BACCARAT_MAX_ROUNDS.
func (s *Service) simConfig(req RunRequest) (baccarat.Config, error) {
	cfg := s.cfg.Simulation()
	if req.Strategy != "" {
		id, err := baccarat.ParseStrategy(req.Strategy)
		if err != nil {
			return cfg, err
		}
		cfg.Strategy = id
	}
	if req.Rounds != nil {
		cfg.Rounds = int(min(*req.Rounds, int64(s.maxRounds())))
	}
	if req.InitialBalance != nil {
		cfg.InitialBalance = *req.InitialBalance
	}
	if req.MinBet != nil {
		cfg.MinBet = *req.MinBet
	}
	if req.Commission != nil {
		cfg.CommissionBps = baccarat.CommissionBps(*req.Commission)
	}
	if req.MaxLossStreak != nil {
		cfg.MaxConsecutiveLosses = int(min(*req.MaxLossStreak, 1000))
	}
	if cfg.Rounds > s.maxRounds() {
		cfg.Rounds = s.maxRounds()
	}
	cfg.InitialBalance = min(cfg.InitialBalance, s.maxBalance())
	cfg.MinBet = min(cfg.MinBet, s.maxBalance())
	return cfg.Normalize()
}

// maxBalance is BACCARAT_MAX_BALANCE, never above the engine ceiling.
func (s *Service) maxBalance() int64 {
	if s.cfg.MaxBalance < 1 {
		return baccarat.MaxAmount
	}
	return min(s.cfg.MaxBalance, baccarat.MaxAmount)
}

func (s *Service) maxRounds() int {
	if s.cfg.MaxRounds < 1 {
		return 100000
	}
	return s.cfg.MaxRounds
}

func (s *Service) Run(ctx context.Context, req RunRequest) (*RunResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg, err := s.simConfig(req)
	if err != nil {
		return nil, err
	}
	loc := s.locale(req.Lang)
	res, err := baccarat.Simulate(cfg, s.src, loc)
	if err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}
	run := s.store.SaveRun(loc.Lang(), res)
	log.Info().
		Str("run_id", run.ID).
		Str("strategy", string(cfg.Strategy)).
		Int("rounds_requested", cfg.Rounds).
		Int("rounds_played", res.Summary.TotalRounds).
		Int64("profit", res.Summary.Profit).
		Msg("baccarat simulation finished")
	return toRunResponse(run, loc), nil
}

func (s *Service) Get(ctx context.Context, runID string) (*RunResponse, error) {
	run, err := s.getRun(runID)
	if err != nil {
		return nil, err
	}
	return toRunResponse(run, locale.New(run.Locale)), nil
}

func (s *Service) getRun(runID string) (store.Run, error) {
	if runID == "" {
		return store.Run{}, ErrInvalidRequest
	}
	run, err := s.store.GetRun(runID)
	if errors.Is(err, store.ErrNotFound) {
		return store.Run{}, ErrRunNotFound
	}
	return run, err
}

// Export renders a stored run's history in the locale it was simulated in.
func (s *Service) Export(ctx context.Context, runID, format string) (*ExportFile, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, ErrInvalidRequest
	}
	run, err := s.getRun(runID)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := export.Write(&buf, f, run.Result.History, locale.New(run.Locale)); err != nil {
		return nil, fmt.Errorf("export run %s: %w", runID, err)
	}
	return &ExportFile{
		Name:        export.FileName(run.Result.Config.Strategy, run.Result.Config.Rounds, f),
		ContentType: f.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}

func (s *Service) Batch(ctx context.Context, req BatchRequest) (*BatchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg, err := s.simConfig(req.RunRequest)
	if err != nil {
		return nil, err
	}
	runs := 1
	if req.Runs != nil {
		runs = int(max(1, min(*req.Runs, int64(s.maxBatchRuns()))))
	}
	report, err := baccarat.RunBatch(cfg, runs, s.src)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	log.Info().
		Str("strategy", string(cfg.Strategy)).
		Int("runs", report.Runs).
		Float64("mean_final_balance", report.MeanFinal).
		Float64("bust_rate", report.BustRate).
		Msg("baccarat batch finished")
	return &BatchResponse{
		StrategyName: s.locale(req.Lang).Strategy(cfg.Strategy),
		BatchReport:  report,
	}, nil
}

func (s *Service) maxBatchRuns() int {
	if s.cfg.MaxBatchRuns < 1 {
		return 1000
	}
	return s.cfg.MaxBatchRuns
}

func toRunResponse(run store.Run, loc locale.Locale) *RunResponse {
	return &RunResponse{
		RunID:        run.ID,
		Lang:         run.Locale,
		CreatedAt:    run.CreatedAt,
		StrategyName: loc.Strategy(run.Result.Config.Strategy),
		Config:       run.Result.Config,
		Summary:      run.Result.Summary,
		History:      run.Result.History,
	}
}

package simulation

import (
	"time"

	"casino-sim/internal/baccarat"
)

// RunRequest carries optional overrides; nil fields use the configured defaults.
type RunRequest struct {
	Strategy       string
	Rounds         *int64
	InitialBalance *int64
	MinBet         *int64
	Commission     *float64
	MaxLossStreak  *int64
	Lang           string
}

type BatchRequest struct {
	RunRequest
	Runs *int64
}

type StrategiesResponse struct {
	Items []StrategyItem `json:"items"`
}

type StrategyItem struct {
	ID   baccarat.StrategyID `json:"id"`
	Name string              `json:"name"`
}

type RunResponse struct {
	RunID        string                 `json:"run_id"`
	Lang         string                 `json:"lang"`
	CreatedAt    time.Time              `json:"created_at"`
	StrategyName string                 `json:"strategy_name"`
	Config       baccarat.Config        `json:"config"`
	Summary      baccarat.Summary       `json:"summary"`
	History      []baccarat.RoundRecord `json:"history"`
}

type BatchResponse struct {
	StrategyName string `json:"strategy_name"`
	baccarat.BatchReport
}

type ExportFile struct {
	Name        string
	ContentType string
	Body        []byte
}

package baccarat

import (
	"fmt"

	"casino-sim/internal/randsrc"
)

type Result struct {
	Config  Config        `json:"config"`
	Summary Summary       `json:"summary"`
	History []RoundRecord `json:"history"`
}

// Simulate plays up to cfg.Rounds rounds. The run ends early, without error,
// once the bankroll cannot cover the next bet; Summary.TotalRounds then falls
// short of cfg.Rounds. A nil Describer uses PlainDescriber.
func Simulate(cfg Config, src randsrc.Source, desc Describer) (Result, error) {
	cfg, err := cfg.Normalize()
	if err != nil {
		return Result{}, err
	}
	if src == nil {
		return Result{}, fmt.Errorf("nil random source: %w", ErrInvalidConfig)
	}
	if desc == nil {
		desc = PlainDescriber{}
	}

	sampler := NewSampler(src)
	ctrl := NewController(cfg)
	ledger := NewLedger(cfg.Rounds)

	for round := 1; round <= cfg.Rounds && ctrl.CanBet(); round++ {
		target := ctrl.Target(round)
		rec := ctrl.Apply(round, target, sampler.Next())
		rec.Action = desc.DescribeAction(rec.Kind, rec.Amount, rec.NextBet, cfg.MaxConsecutiveLosses)
		ledger.Append(rec)
	}

	return Result{
		Config:  cfg,
		Summary: ledger.Summarize(cfg.InitialBalance, ctrl.Balance()),
		History: ledger.Records(),
	}, nil
}

// PlainDescriber renders English action tags without digit grouping.
type PlainDescriber struct{}

func (PlainDescriber) DescribeAction(kind ActionKind, amount, nextBet int64, lossCap int) string {
	switch kind {
	case ActionTie:
		return "Tie (push)"
	case ActionWin:
		return fmt.Sprintf("Win +%d", amount)
	case ActionLossReset:
		return fmt.Sprintf("Loss -%d (reset after %d losses)", amount, lossCap)
	default:
		return fmt.Sprintf("Loss -%d (next %d)", amount, nextBet)
	}
}

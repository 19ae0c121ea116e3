package baccarat

import (
	"fmt"
	"math"
)

const bpsScale = 10000

// A Martingale cycle nets at most one minimum bet, so the balance never
// exceeds InitialBalance + Rounds*MinBet. These ceilings keep that sum well
// inside int64.
const (
	MaxAmount int64 = 1_000_000_000_000
	MaxRounds       = 1_000_000
)

// Config holds the externally supplied parameters of one simulation run.
type Config struct {
	InitialBalance       int64      `json:"initial_balance"`
	MinBet               int64      `json:"min_bet"`
	CommissionBps        int64      `json:"commission_bps"`
	MaxConsecutiveLosses int        `json:"max_consecutive_losses"`
	Rounds               int        `json:"rounds"`
	Strategy             StrategyID `json:"strategy"`
}

func DefaultConfig() Config {
	return Config{
		InitialBalance:       100000,
		MinBet:               1000,
		CommissionBps:        CommissionBps(0.05),
		MaxConsecutiveLosses: 3,
		Rounds:               100,
		Strategy:             StrategyBankerOnly,
	}
}

// CommissionBps converts a commission rate such as 0.05 into basis points.
func CommissionBps(rate float64) int64 {
	if math.IsNaN(rate) || rate <= 0 {
		return 0
	}
	if rate >= 1 {
		return bpsScale
	}
	return int64(math.Round(rate * bpsScale))
}

// Normalize coerces out-of-range numbers into their safe range and rejects
// unknown strategies.
func (c Config) Normalize() (Config, error) {
	if _, ok := selectors[c.Strategy]; !ok {
		return c, fmt.Errorf("strategy %q: %w", c.Strategy, ErrUnknownStrategy)
	}
	c.Rounds = max(1, min(c.Rounds, MaxRounds))
	if c.MinBet < 1 {
		c.MinBet = 1
	}
	c.MinBet = min(c.MinBet, MaxAmount)
	if c.InitialBalance < 0 {
		c.InitialBalance = 0
	}
	c.InitialBalance = min(c.InitialBalance, MaxAmount)
	if c.MaxConsecutiveLosses < 1 {
		c.MaxConsecutiveLosses = 1
	}
	if c.CommissionBps < 0 {
		c.CommissionBps = 0
	}
	if c.CommissionBps > bpsScale {
		c.CommissionBps = bpsScale
	}
	return c, nil
}

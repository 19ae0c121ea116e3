package config

import (
	"casino-sim/internal/baccarat"

	"github.com/caarlos0/env/v11"
)

type BaccaratConfig struct {
	InitialBalance int64   `env:"BACCARAT_INITIAL_BALANCE" envDefault:"100000"`
	MinBet         int64   `env:"BACCARAT_MIN_BET" envDefault:"1000"`
	Commission     float64 `env:"BACCARAT_COMMISSION" envDefault:"0.05"`
	MaxLossStreak  int     `env:"BACCARAT_MAX_LOSS_STREAK" envDefault:"3"`
	Rounds         int     `env:"BACCARAT_ROUNDS" envDefault:"100"`
	Strategy       string  `env:"BACCARAT_STRATEGY" envDefault:"bankerOnly"`
	MaxRounds      int     `env:"BACCARAT_MAX_ROUNDS" envDefault:"100000"`
	MaxBatchRuns   int     `env:"BACCARAT_MAX_BATCH_RUNS" envDefault:"1000"`
	MaxBalance     int64   `env:"BACCARAT_MAX_BALANCE" envDefault:"1000000000000"`
}

func LoadBaccarat() (BaccaratConfig, error) {
	var cfg BaccaratConfig
	err := env.Parse(&cfg)
	return cfg, err
}

// Simulation converts the environment settings into engine parameters.
func (c BaccaratConfig) Simulation() baccarat.Config {
	return baccarat.Config{
		InitialBalance:       c.InitialBalance,
		MinBet:               c.MinBet,
		CommissionBps:        baccarat.CommissionBps(c.Commission),
		MaxConsecutiveLosses: c.MaxLossStreak,
		Rounds:               c.Rounds,
		Strategy:             baccarat.StrategyID(c.Strategy),
	}
}

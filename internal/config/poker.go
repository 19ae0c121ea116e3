package config

import (
	"casino-sim/internal/threecard"

	"github.com/caarlos0/env/v11"
)

type PokerConfig struct {
	StartingChips int64 `env:"POKER_STARTING_CHIPS" envDefault:"100000"`
	MinChips      int64 `env:"POKER_MIN_CHIPS" envDefault:"1000"`
	DefaultAnte   int64 `env:"POKER_DEFAULT_ANTE" envDefault:"1000"`
	MinAnte       int64 `env:"POKER_MIN_ANTE" envDefault:"1000"`
	MaxChips      int64 `env:"POKER_MAX_CHIPS" envDefault:"1000000000000"`
}

func LoadPoker() (PokerConfig, error) {
	var cfg PokerConfig
	err := env.Parse(&cfg)
	return cfg, err
}

func (c PokerConfig) Limits() threecard.Limits {
	return threecard.Limits{MinChips: c.MinChips, MinAnte: c.MinAnte, MaxChips: c.MaxChips}
}

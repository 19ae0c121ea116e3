package config

import (
	"testing"

	"casino-sim/internal/baccarat"
	"casino-sim/internal/threecard"
)

func TestLoadBaccaratDefaults(t *testing.T) {
	cfg, err := LoadBaccarat()
	if err != nil {
		t.Fatalf("LoadBaccarat() error = %v", err)
	}
	sim := cfg.Simulation()
	if sim.InitialBalance != 100000 || sim.MinBet != 1000 {
		t.Fatalf("unexpected bankroll settings: %+v", sim)
	}
	if sim.CommissionBps != 500 {
		t.Fatalf("CommissionBps = %d, want 500", sim.CommissionBps)
	}
	if sim.MaxConsecutiveLosses != 3 {
		t.Fatalf("MaxConsecutiveLosses = %d, want 3", sim.MaxConsecutiveLosses)
	}
	if sim.Strategy != baccarat.StrategyBankerOnly {
		t.Fatalf("Strategy = %q", sim.Strategy)
	}
	if cfg.MaxBalance != baccarat.MaxAmount {
		t.Fatalf("MaxBalance = %d, want %d", cfg.MaxBalance, baccarat.MaxAmount)
	}
}

func TestLoadBaccaratOverrides(t *testing.T) {
	t.Setenv("BACCARAT_COMMISSION", "0.04")
	t.Setenv("BACCARAT_STRATEGY", "ppbb")
	t.Setenv("BACCARAT_ROUNDS", "500")

	cfg, err := LoadBaccarat()
	if err != nil {
		t.Fatalf("LoadBaccarat() error = %v", err)
	}
	sim := cfg.Simulation()
	if sim.CommissionBps != 400 || sim.Strategy != baccarat.StrategyPPBB || sim.Rounds != 500 {
		t.Fatalf("unexpected simulation config: %+v", sim)
	}
}

func TestLoadPoker(t *testing.T) {
	t.Setenv("POKER_MIN_ANTE", "500")

	cfg, err := LoadPoker()
	if err != nil {
		t.Fatalf("LoadPoker() error = %v", err)
	}
	lim := cfg.Limits()
	if lim.MinAnte != 500 || lim.MinChips != 1000 {
		t.Fatalf("unexpected limits: %+v", lim)
	}
	if cfg.StartingChips != 100000 || cfg.DefaultAnte != 1000 {
		t.Fatalf("unexpected poker config: %+v", cfg)
	}
}

func TestLoadPokerMaxChips(t *testing.T) {
	cfg, err := LoadPoker()
	if err != nil {
		t.Fatalf("LoadPoker() error = %v", err)
	}
	if got := cfg.Limits().MaxChips; got != 1_000_000_000_000 {
		t.Fatalf("default MaxChips = %d", got)
	}

	t.Setenv("POKER_MAX_CHIPS", "50000")
	cfg, err = LoadPoker()
	if err != nil {
		t.Fatalf("LoadPoker() error = %v", err)
	}
	s := threecard.NewSession(9_000_000_000_000_000_000, 3_000_000_000_000_000_000, cfg.Limits())
	if s.Chips != 50000 || s.Ante != 50000 {
		t.Fatalf("session not clamped: chips=%d ante=%d", s.Chips, s.Ante)
	}
}

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		raw   string
		floor int64
		want  int64
	}{
		{"250", 1, 250},
		{" 42 ", 1, 42},
		{"", 1, 1},
		{"abc", 1000, 1000},
		{"-5", 1, 1},
		{"0", 1, 1},
		{"12.9", 1, 12},
		{"500", 1000, 1000},
		{"NaN", 1, 1},
	}
	for _, tt := range tests {
		if got := CoerceInt(tt.raw, tt.floor); got != tt.want {
			t.Fatalf("CoerceInt(%q, %d) = %d, want %d", tt.raw, tt.floor, got, tt.want)
		}
	}
}

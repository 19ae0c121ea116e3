package baccarat

import "casino-sim/internal/randsrc"

// Cumulative thresholds on a [0, 100) draw: banker 45.86%, player 44.62%,
// tie the remaining 9.52%.
const (
	bankerThreshold = 45.86
	playerThreshold = 90.48
)

type Sampler struct {
	src randsrc.Source
}

func NewSampler(src randsrc.Source) *Sampler {
	return &Sampler{src: src}
}

func (s *Sampler) Next() GameResult {
	return resultFor(s.src.Float64() * 100)
}

func resultFor(v float64) GameResult {
	switch {
	case v < bankerThreshold:
		return ResultBanker
	case v < playerThreshold:
		return ResultPlayer
	default:
		return ResultTie
	}
}

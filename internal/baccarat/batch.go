package baccarat

import (
	"fmt"
	"sort"

	"casino-sim/internal/randsrc"

	"gonum.org/v1/gonum/stat"
)

// BatchReport aggregates the final balances of repeated independent runs.
type BatchReport struct {
	Config         Config  `json:"config"`
	Runs           int     `json:"runs"`
	MeanFinal      float64 `json:"mean_final_balance"`
	StdDevFinal    float64 `json:"stddev_final_balance"`
	MedianFinal    float64 `json:"median_final_balance"`
	P05Final       float64 `json:"p05_final_balance"`
	P95Final       float64 `json:"p95_final_balance"`
	MeanProfit     float64 `json:"mean_profit"`
	MeanRounds     float64 `json:"mean_rounds"`
	BustRate       float64 `json:"bust_rate"`
	ProfitableRate float64 `json:"profitable_rate"`
}

// RunBatch runs the same configuration runs times. Runs that stop before the
// round budget count towards BustRate.
func RunBatch(cfg Config, runs int, src randsrc.Source) (BatchReport, error) {
	if runs < 1 {
		runs = 1
	}
	cfg, err := cfg.Normalize()
	if err != nil {
		return BatchReport{}, err
	}
	if src == nil {
		return BatchReport{}, fmt.Errorf("nil random source: %w", ErrInvalidConfig)
	}

	finals := make([]float64, 0, runs)
	rounds := make([]float64, 0, runs)
	busts, profitable := 0, 0
	for i := 0; i < runs; i++ {
		res, err := Simulate(cfg, src, noopDescriber{})
		if err != nil {
			return BatchReport{}, err
		}
		finals = append(finals, float64(res.Summary.FinalBalance))
		rounds = append(rounds, float64(res.Summary.TotalRounds))
		if res.Summary.TotalRounds < cfg.Rounds {
			busts++
		}
		if res.Summary.Profit > 0 {
			profitable++
		}
	}

	sorted := append([]float64(nil), finals...)
	sort.Float64s(sorted)

	mean := stat.Mean(finals, nil)
	report := BatchReport{
		Config:         cfg,
		Runs:           runs,
		MeanFinal:      mean,
		MedianFinal:    stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P05Final:       stat.Quantile(0.05, stat.Empirical, sorted, nil),
		P95Final:       stat.Quantile(0.95, stat.Empirical, sorted, nil),
		MeanProfit:     mean - float64(cfg.InitialBalance),
		MeanRounds:     stat.Mean(rounds, nil),
		BustRate:       float64(busts) / float64(runs),
		ProfitableRate: float64(profitable) / float64(runs),
	}
	if runs > 1 {
		report.StdDevFinal = stat.StdDev(finals, nil)
	}
	return report, nil
}

type noopDescriber struct{}

func (noopDescriber) DescribeAction(ActionKind, int64, int64, int) string { return "" }

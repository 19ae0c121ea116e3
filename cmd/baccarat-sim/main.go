// Command baccarat-sim runs Martingale baccarat simulations from the terminal
// and optionally exports the round history.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	appsim "casino-sim/internal/app/simulation"
	"casino-sim/internal/config"
	"casino-sim/internal/export"
	"casino-sim/internal/locale"
	"casino-sim/internal/logging"
	"casino-sim/internal/randsrc"
	"casino-sim/internal/store"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadApp()
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	logging.Init(cfg.Log)

	if err := run(context.Background(), cfg, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

type options struct {
	strategy string
	rounds   int
	runs     int
	format   string
	out      string
	lang     string
	seed     uint64
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("baccarat-sim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.strategy, "strategy", "", "betting strategy (default BACCARAT_STRATEGY)")
	fs.IntVar(&o.rounds, "rounds", 0, "rounds per run (default BACCARAT_ROUNDS)")
	fs.IntVar(&o.runs, "runs", 1, "independent runs; more than one prints a batch report")
	fs.StringVar(&o.format, "format", "csv", "history export format: csv, tsv or none")
	fs.StringVar(&o.out, "out", "", "export path, - for stdout (default baccarat_<strategy>_<rounds>games.<format>)")
	fs.StringVar(&o.lang, "lang", "", "output language, ja or en (default LOCALE)")
	fs.Uint64Var(&o.seed, "seed", 0, "seed for a reproducible run; 0 draws from the OS")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	return o, nil
}

func run(ctx context.Context, cfg config.AppConfig, args []string, stdout io.Writer) error {
	o, err := parseFlags(args, stdout)
	if err != nil {
		return err
	}
	if o.lang == "" {
		o.lang = cfg.Server.Locale
	}
	if o.format != "none" {
		if _, err := export.ParseFormat(o.format); err != nil {
			return fmt.Errorf("format %q: %w", o.format, err)
		}
	}

	src := randsrc.NewSecure()
	if o.seed != 0 {
		src = randsrc.NewSeeded(o.seed)
	}
	svc := appsim.NewService(store.New(0), cfg.Baccarat, o.lang, src)

	req := appsim.RunRequest{Strategy: o.strategy, Lang: o.lang}
	if o.rounds > 0 {
		rounds := int64(o.rounds)
		req.Rounds = &rounds
	}

	if o.runs > 1 {
		runs := int64(o.runs)
		report, err := svc.Batch(ctx, appsim.BatchRequest{RunRequest: req, Runs: &runs})
		if err != nil {
			return err
		}
		return renderBatch(stdout, locale.New(o.lang), report)
	}

	res, err := svc.Run(ctx, req)
	if err != nil {
		return err
	}
	if o.format == "none" {
		return renderRun(stdout, locale.New(o.lang), res)
	}

	file, err := svc.Export(ctx, res.RunID, o.format)
	if err != nil {
		return fmt.Errorf("export %q: %w", o.format, err)
	}
	if o.out == "-" {
		_, err = stdout.Write(file.Body)
		return err
	}
	if err := renderRun(stdout, locale.New(o.lang), res); err != nil {
		return err
	}
	path := o.out
	if path == "" {
		path = file.Name
	}
	if err := os.WriteFile(path, file.Body, 0o644); err != nil {
		return err
	}
	log.Info().Str("run_id", res.RunID).Str("path", resolvePath(path)).Msg("history exported")
	_, err = fmt.Fprintln(stdout, pterm.Success.Sprintf("exported %d rounds to %s", len(res.History), path))
	return err
}

func renderRun(w io.Writer, loc locale.Locale, res *appsim.RunResponse) error {
	s := res.Summary
	data := pterm.TableData{
		{"", res.StrategyName},
		{"initial balance", loc.Number(res.Config.InitialBalance)},
		{"final balance", loc.Number(s.FinalBalance)},
		{"profit", loc.Number(s.Profit)},
		{"rounds", strconv.Itoa(s.TotalRounds) + "/" + strconv.Itoa(res.Config.Rounds)},
		{"wins", strconv.Itoa(s.Wins)},
		{"losses", strconv.Itoa(s.Losses)},
		{"ties", strconv.Itoa(s.Ties)},
	}
	if s.TotalRounds < res.Config.Rounds {
		data = append(data, []string{"stopped", "bankroll below next bet"})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, table)
	return err
}

func renderBatch(w io.Writer, loc locale.Locale, report *appsim.BatchResponse) error {
	money := func(v float64) string { return loc.Number(int64(v)) }
	pct := func(v float64) string { return strconv.FormatFloat(v*100, 'f', 1, 64) + "%" }
	data := pterm.TableData{
		{"", report.StrategyName},
		{"runs", strconv.Itoa(report.Runs)},
		{"rounds per run", strconv.Itoa(report.Config.Rounds)},
		{"mean final balance", money(report.MeanFinal)},
		{"std dev", money(report.StdDevFinal)},
		{"median", money(report.MedianFinal)},
		{"p05 / p95", money(report.P05Final) + " / " + money(report.P95Final)},
		{"mean profit", money(report.MeanProfit)},
		{"mean rounds played", strconv.FormatFloat(report.MeanRounds, 'f', 1, 64)},
		{"stopped early", pct(report.BustRate)},
		{"profitable", pct(report.ProfitableRate)},
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, table)
	return err
}

// resolvePath makes path absolute for logging, falling back to path as given.
func resolvePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("cannot resolve export path")
		return path
	}
	return abs
}

package httptransport

import "expvar"

var (
	metricSimulationRunsTotal   = expvar.NewInt("baccarat_simulation_runs_total")
	metricSimulationRoundsTotal = expvar.NewInt("baccarat_simulation_rounds_total")
	metricBatchRunsTotal        = expvar.NewInt("baccarat_batch_runs_total")
	metricExportsTotal          = expvar.NewInt("baccarat_exports_total")

	metricTablesOpenedTotal  = expvar.NewInt("poker_tables_opened_total")
	metricHandsSettledTotal  = expvar.NewInt("poker_hands_settled_total")
	metricTableRefusalsTotal = expvar.NewInt("poker_table_refusals_total")
)

package entity

import "time"

// IndicatorSet contém os indicadores escalares de saúde financeira
// calculados sobre um Dataset. Imutável após o cálculo; o chamador é dono
// do resultado.
type IndicatorSet struct {
	// Financeiros básicos.
	TotalInflow  float64 `json:"total_inflow"`
	TotalOutflow float64 `json:"total_outflow"`
	NetBalance   float64 `json:"net_balance"`
	Turnover     float64 `json:"turnover"`

	// Taxas e percentuais.
	SavingsRate        float64 `json:"savings_rate"`
	InflowOutflowRatio float64 `json:"inflow_outflow_ratio"`

	// Médias temporais.
	AvgDailySpend      float64 `json:"avg_daily_spend"`
	AvgDailyInflow     float64 `json:"avg_daily_inflow"`
	TransactionsPerDay float64 `json:"transactions_per_day"`

	// Tickets médios.
	AvgOutflowTicket float64 `json:"avg_outflow_ticket"`
	AvgInflowTicket  float64 `json:"avg_inflow_ticket"`
	AvgTicket        float64 `json:"avg_ticket"`

	// Valores extremos.
	LargestOutflow float64 `json:"largest_outflow"`
	LargestInflow  float64 `json:"largest_inflow"`

	// Estatísticas operacionais.
	TotalTransactions      int `json:"total_transactions"`
	InflowTransactions     int `json:"inflow_transactions"`
	OutflowTransactions    int `json:"outflow_transactions"`
	DistinctEstablishments int `json:"distinct_establishments"`
	OutflowCategories      int `json:"outflow_categories"`

	// Temporais.
	PeriodDays  int       `json:"period_days"`
	ActiveDays  int       `json:"active_days"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`

	// Volatilidade e dispersão (desvio padrão amostral; 0 com menos de
	// duas observações).
	OutflowVolatility float64 `json:"outflow_volatility"`
	InflowVolatility  float64 `json:"inflow_volatility"`

	// Concentração, em percentual de TotalOutflow.
	Top5OutflowConcentration       float64 `json:"top5_outflow_concentration"`
	Top3EstablishmentConcentration float64 `json:"top3_establishment_concentration"`
}

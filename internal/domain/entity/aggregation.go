package entity

import "time"

// CategorySummary resume as transações de uma categoria de estabelecimento.
// Para visões de saída, Total e Mean são magnitudes (valores absolutos).
type CategorySummary struct {
	Category               string  `json:"category"`
	Count                  int     `json:"count"`
	Total                  float64 `json:"total"`
	Mean                   float64 `json:"mean"`
	StdDev                 float64 `json:"std_dev,omitempty"`
	DistinctEstablishments int     `json:"distinct_establishments,omitempty"`
	ActiveDays             int     `json:"active_days,omitempty"`
}

// EstablishmentSummary resume as transações de um estabelecimento.
type EstablishmentSummary struct {
	Establishment string    `json:"establishment"`
	Count         int       `json:"count"`
	Total         float64   `json:"total"`
	Mean          float64   `json:"mean"`
	Largest       float64   `json:"largest"`
	FirstDate     time.Time `json:"first_date"`
	LastDate      time.Time `json:"last_date"`
	ActiveDays    int       `json:"active_days"`
	MainCategory  string    `json:"main_category"`

	// Preenchido apenas na visão de gastos recorrentes.
	AvgPerActiveDay float64 `json:"avg_per_active_day,omitempty"`
}

// WeekdaySummary resume as transações de um dia da semana.
type WeekdaySummary struct {
	Weekday string  `json:"weekday"`
	Count   int     `json:"count"`
	Total   float64 `json:"total"`
	Mean    float64 `json:"mean"`
}

// MonthSummary resume as transações de um mês do calendário. Outflow
// mantém o sinal negativo das saídas.
type MonthSummary struct {
	Month   string  `json:"month"`
	Count   int     `json:"count"`
	Total   float64 `json:"total"`
	Mean    float64 `json:"mean"`
	Inflow  float64 `json:"inflow"`
	Outflow float64 `json:"outflow"`
}

// DailyFlow é o fluxo líquido e a contagem de transações de um dia.
type DailyFlow struct {
	Date  time.Time `json:"date"`
	Net   float64   `json:"net"`
	Count int       `json:"count"`
}

// TrendView compara os gastos diários da primeira metade do período com os
// da segunda metade.
type TrendView struct {
	FirstHalfMean  float64 `json:"first_half_mean"`
	SecondHalfMean float64 `json:"second_half_mean"`
	ChangePercent  float64 `json:"change_percent"`
	Direction      string  `json:"direction"`
}

// AggregationViews agrupa todas as visões agregadas de um Dataset.
type AggregationViews struct {
	OutflowByCategory      []CategorySummary      `json:"outflow_by_category"`
	InflowByCategory       []CategorySummary      `json:"inflow_by_category"`
	OutflowByEstablishment []EstablishmentSummary `json:"outflow_by_establishment"`
	InflowByEstablishment  []EstablishmentSummary `json:"inflow_by_establishment"`
	RecurringExpenses      []EstablishmentSummary `json:"recurring_expenses"`
	ByWeekday              []WeekdaySummary       `json:"by_weekday"`
	ByMonth                []MonthSummary         `json:"by_month"`
	DailyFlows             []DailyFlow            `json:"daily_flows"`
	TopActivityDays        []DailyFlow            `json:"top_activity_days"`
	Trend                  *TrendView             `json:"trend,omitempty"`
}

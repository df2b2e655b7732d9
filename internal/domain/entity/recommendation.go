package entity

// Recommendation é uma orientação legível derivada dos indicadores.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// Targets são metas sugeridas, sempre calculadas a partir dos indicadores
// atuais.
type Targets struct {
	SavingsRateGoal    float64 `json:"savings_rate_goal"`
	DailySpendTarget   float64 `json:"daily_spend_target"`
	TicketCap          float64 `json:"ticket_cap"`
	MonthlySavingsGoal float64 `json:"monthly_savings_goal"`
}

// RecommendationSet agrupa as recomendações por prioridade.
type RecommendationSet struct {
	Urgent      []Recommendation `json:"urgent"`
	Important   []Recommendation `json:"important"`
	Suggestions []Recommendation `json:"suggestions"`
	Targets     Targets          `json:"targets"`
}

package analysis

import (
	"fmt"

	"github.com/diillson/extrato-dashboard-go/internal/domain/entity"
)

// Limiares fixos das regras de recomendação, em unidades da moeda do
// extrato ou em pontos percentuais.
const (
	lowSavingsRateThreshold     = 10.0
	concentrationAlertThreshold = 70.0
	highTicketThreshold         = 200.0
	diversificationThreshold    = 20
)

// GenerateRecommendations deriva orientações priorizadas dos indicadores e
// das visões agregadas. As regras são independentes entre si; a ordem dentro
// de cada balde não é significativa. As metas são sempre calculadas.
func GenerateRecommendations(ind entity.IndicatorSet, views entity.AggregationViews) entity.RecommendationSet {
	set := entity.RecommendationSet{
		Urgent:      []entity.Recommendation{},
		Important:   []entity.Recommendation{},
		Suggestions: []entity.Recommendation{},
	}

	if ind.SavingsRate < 0 {
		set.Urgent = append(set.Urgent, entity.Recommendation{
			Title:       "Critical Negative Balance",
			Description: fmt.Sprintf("Savings rate at %.1f%%. Spending exceeds income.", ind.SavingsRate),
			Action:      "Review all non-essential spending immediately",
		})
	}

	if ind.Top5OutflowConcentration > concentrationAlertThreshold {
		set.Urgent = append(set.Urgent, entity.Recommendation{
			Title:       "Highly Concentrated Spending",
			Description: fmt.Sprintf("%.1f%% of spending sits in just 5 transactions.", ind.Top5OutflowConcentration),
			Action:      "Diversify and reduce the largest expenses",
		})
	}

	if ind.SavingsRate >= 0 && ind.SavingsRate < lowSavingsRateThreshold {
		set.Important = append(set.Important, entity.Recommendation{
			Title:       "Low Savings Rate",
			Description: fmt.Sprintf("Current rate of %.1f%%, below the recommended 15-20%%.", ind.SavingsRate),
			Action:      "Set a goal of cutting spending by 10-15%",
		})
	}

	if ind.AvgOutflowTicket > highTicketThreshold {
		set.Important = append(set.Important, entity.Recommendation{
			Title:       "High Average Ticket",
			Description: fmt.Sprintf("Average spend per transaction: %.2f", ind.AvgOutflowTicket),
			Action:      "Consider smaller, more frequent purchases",
		})
	}

	if len(views.RecurringExpenses) > 0 {
		top := views.RecurringExpenses[0]
		set.Important = append(set.Important, entity.Recommendation{
			Title:       "Main Recurring Expense",
			Description: fmt.Sprintf("%s: %.2f across %d active days", top.Establishment, top.Total, top.ActiveDays),
			Action:      "Renegotiate or look for a cheaper alternative",
		})
	}

	if ind.DistinctEstablishments > diversificationThreshold {
		set.Suggestions = append(set.Suggestions, entity.Recommendation{
			Title:       "Good Diversification",
			Description: fmt.Sprintf("You use %d different establishments.", ind.DistinctEstablishments),
			Action:      "Keep the diversification, but favor the cheapest options",
		})
	}

	set.Targets = entity.Targets{
		SavingsRateGoal:    maxFloat(15, ind.SavingsRate+5),
		DailySpendTarget:   ind.AvgDailySpend * 0.9,
		TicketCap:          ind.AvgOutflowTicket * 0.85,
		MonthlySavingsGoal: ind.AvgDailySpend * 30 * 0.1,
	}

	return set
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

package analysis

import (
	"strings"
	"testing"

	"github.com/diillson/extrato-dashboard-go/internal/domain/entity"
)

func hasRecommendation(recs []entity.Recommendation, title string) bool {
	for _, r := range recs {
		if r.Title == title {
			return true
		}
	}
	return false
}

func TestGenerateRecommendations(t *testing.T) {
	tests := []struct {
		name       string
		indicators entity.IndicatorSet
		views      entity.AggregationViews
		bucket     string
		title      string
	}{
		{
			name:       "negative savings rate is urgent",
			indicators: entity.IndicatorSet{SavingsRate: -12.5},
			bucket:     "urgent",
			title:      "Critical Negative Balance",
		},
		{
			name:       "concentrated spending is urgent",
			indicators: entity.IndicatorSet{SavingsRate: 20, Top5OutflowConcentration: 75},
			bucket:     "urgent",
			title:      "Highly Concentrated Spending",
		},
		{
			name:       "low savings rate is important",
			indicators: entity.IndicatorSet{SavingsRate: 5},
			bucket:     "important",
			title:      "Low Savings Rate",
		},
		{
			name:       "high ticket is important",
			indicators: entity.IndicatorSet{SavingsRate: 20, AvgOutflowTicket: 250},
			bucket:     "important",
			title:      "High Average Ticket",
		},
		{
			name:       "recurring expense is important",
			indicators: entity.IndicatorSet{SavingsRate: 20},
			views: entity.AggregationViews{RecurringExpenses: []entity.EstablishmentSummary{
				{Establishment: "Uber", Total: 300, ActiveDays: 4},
			}},
			bucket: "important",
			title:  "Main Recurring Expense",
		},
		{
			name:       "diversification is a suggestion",
			indicators: entity.IndicatorSet{SavingsRate: 20, DistinctEstablishments: 25},
			bucket:     "suggestion",
			title:      "Good Diversification",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := GenerateRecommendations(tt.indicators, tt.views)
			var bucket []entity.Recommendation
			switch tt.bucket {
			case "urgent":
				bucket = set.Urgent
			case "important":
				bucket = set.Important
			case "suggestion":
				bucket = set.Suggestions
			}
			if !hasRecommendation(bucket, tt.title) {
				t.Errorf("expected %q in %s bucket, got %+v", tt.title, tt.bucket, set)
			}
		})
	}
}

func TestRecommendationRulesAreIndependent(t *testing.T) {
	ind := entity.IndicatorSet{SavingsRate: -5, Top5OutflowConcentration: 80, AvgOutflowTicket: 500}
	set := GenerateRecommendations(ind, entity.AggregationViews{})

	if len(set.Urgent) != 2 {
		t.Errorf("urgent = %d, want both the balance and concentration alerts", len(set.Urgent))
	}
	// A negative savings rate must not also trigger the low-rate rule.
	if hasRecommendation(set.Important, "Low Savings Rate") {
		t.Errorf("Low Savings Rate fired on a negative rate")
	}
}

func TestRecommendationTargets(t *testing.T) {
	t.Run("savings goal has a floor of 15", func(t *testing.T) {
		set := GenerateRecommendations(entity.IndicatorSet{SavingsRate: 2}, entity.AggregationViews{})
		if set.Targets.SavingsRateGoal != 15 {
			t.Errorf("SavingsRateGoal = %v, want 15", set.Targets.SavingsRateGoal)
		}
	})

	t.Run("savings goal tracks high rates", func(t *testing.T) {
		set := GenerateRecommendations(entity.IndicatorSet{SavingsRate: 40}, entity.AggregationViews{})
		if set.Targets.SavingsRateGoal != 45 {
			t.Errorf("SavingsRateGoal = %v, want 45", set.Targets.SavingsRateGoal)
		}
	})

	t.Run("spend targets scale from current behavior", func(t *testing.T) {
		ind := entity.IndicatorSet{SavingsRate: 20, AvgDailySpend: 100, AvgOutflowTicket: 100}
		set := GenerateRecommendations(ind, entity.AggregationViews{})
		if set.Targets.DailySpendTarget != 90 {
			t.Errorf("DailySpendTarget = %v, want 90", set.Targets.DailySpendTarget)
		}
		if set.Targets.TicketCap != 85 {
			t.Errorf("TicketCap = %v, want 85", set.Targets.TicketCap)
		}
		if set.Targets.MonthlySavingsGoal != 300 {
			t.Errorf("MonthlySavingsGoal = %v, want 300", set.Targets.MonthlySavingsGoal)
		}
	})

	t.Run("targets computed even for empty indicators", func(t *testing.T) {
		set := GenerateRecommendations(entity.IndicatorSet{}, entity.AggregationViews{})
		if set.Targets.SavingsRateGoal != 15 {
			t.Errorf("SavingsRateGoal = %v, want 15", set.Targets.SavingsRateGoal)
		}
	})
}

func TestRecommendationDescriptionsCarryContext(t *testing.T) {
	views := entity.AggregationViews{RecurringExpenses: []entity.EstablishmentSummary{
		{Establishment: "Condominio Edificio Sol", Total: 1200, ActiveDays: 2},
	}}
	set := GenerateRecommendations(entity.IndicatorSet{SavingsRate: 20}, views)

	for _, r := range set.Important {
		if r.Title == "Main Recurring Expense" {
			if !strings.Contains(r.Description, "Condominio Edificio Sol") {
				t.Errorf("description %q missing the establishment name", r.Description)
			}
			return
		}
	}
	t.Fatal("Main Recurring Expense recommendation not generated")
}

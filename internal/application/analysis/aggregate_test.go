package analysis

import (
	"math"
	"testing"

	"github.com/diillson/extrato-dashboard-go/internal/domain/entity"
)

func TestComputeViewsEmpty(t *testing.T) {
	views := ComputeViews(datasetOf())
	if len(views.OutflowByCategory) != 0 || len(views.DailyFlows) != 0 {
		t.Errorf("empty dataset should produce empty views, got %+v", views)
	}
	if views.Trend != nil {
		t.Errorf("Trend = %+v, want nil", views.Trend)
	}
}

func TestCategoryView(t *testing.T) {
	dataset := datasetOf(
		tx("01/01/2025", 1000, "Empresa ABC", entity.EstIncome),
		tx("02/01/2025", -100, "Uber", entity.EstTransport),
		tx("03/01/2025", -300, "99 App", entity.EstTransport),
		tx("03/01/2025", -200, "Supermercado Dia", entity.EstFood),
	)

	views := ComputeViews(dataset)

	t.Run("totals are magnitudes sorted descending", func(t *testing.T) {
		if len(views.OutflowByCategory) != 2 {
			t.Fatalf("categories = %d, want 2", len(views.OutflowByCategory))
		}
		first := views.OutflowByCategory[0]
		if first.Category != entity.EstTransport || first.Total != 400 {
			t.Errorf("first category = %+v, want Transport 400", first)
		}
		if first.DistinctEstablishments != 2 || first.ActiveDays != 2 {
			t.Errorf("Transport detail = %+v, want 2 establishments, 2 days", first)
		}
	})

	t.Run("category totals sum to total outflow", func(t *testing.T) {
		ind := ComputeIndicators(dataset)
		var sum float64
		for _, c := range views.OutflowByCategory {
			sum += c.Total
		}
		if math.Abs(sum-ind.TotalOutflow) > 1e-9 {
			t.Errorf("category sum = %v, TotalOutflow = %v", sum, ind.TotalOutflow)
		}
	})

	t.Run("inflow view mirrors outflows", func(t *testing.T) {
		if len(views.InflowByCategory) != 1 {
			t.Fatalf("inflow categories = %d, want 1", len(views.InflowByCategory))
		}
		if got := views.InflowByCategory[0]; got.Category != entity.EstIncome || got.Total != 1000 {
			t.Errorf("inflow category = %+v, want Income 1000", got)
		}
	})
}

func TestEstablishmentView(t *testing.T) {
	dataset := datasetOf(
		tx("01/01/2025", -50, "Uber", entity.EstTransport),
		tx("02/01/2025", -150, "Uber", entity.EstTransport),
		tx("02/01/2025", -200, "Supermercado Dia", entity.EstFood),
	)

	views := ComputeViews(dataset)

	if len(views.OutflowByEstablishment) != 2 {
		t.Fatalf("establishments = %d, want 2", len(views.OutflowByEstablishment))
	}

	uber := views.OutflowByEstablishment[1]
	for _, e := range views.OutflowByEstablishment {
		if e.Establishment == "Uber" {
			uber = e
		}
	}
	if uber.Count != 2 || uber.Total != 200 || uber.Largest != 150 {
		t.Errorf("Uber summary = %+v, want count 2, total 200, largest 150", uber)
	}
	if uber.ActiveDays != 2 || uber.MainCategory != entity.EstTransport {
		t.Errorf("Uber summary = %+v, want 2 active days, Transport", uber)
	}
}

func TestRecurringView(t *testing.T) {
	dataset := datasetOf(
		tx("01/01/2025", -50, "Uber", entity.EstTransport),
		tx("02/01/2025", -150, "Uber", entity.EstTransport),
		tx("02/01/2025", -200, "Supermercado Dia", entity.EstFood),
	)

	views := ComputeViews(dataset)

	if len(views.RecurringExpenses) != 1 {
		t.Fatalf("recurring = %d, want 1 (only multi-day establishments)", len(views.RecurringExpenses))
	}
	got := views.RecurringExpenses[0]
	if got.Establishment != "Uber" || got.AvgPerActiveDay != 100 {
		t.Errorf("recurring = %+v, want Uber at 100 per active day", got)
	}
}

func TestMonthView(t *testing.T) {
	dataset := datasetOf(
		tx("15/01/2025", 1000, "Empresa ABC", entity.EstIncome),
		tx("20/01/2025", -400, "Loja", entity.EstRetail),
		tx("10/03/2025", -100, "Uber", entity.EstTransport),
	)

	views := ComputeViews(dataset)

	if len(views.ByMonth) != 2 {
		t.Fatalf("months = %d, want 2 (absent months omitted)", len(views.ByMonth))
	}
	jan := views.ByMonth[0]
	if jan.Month != "January" {
		t.Fatalf("first month = %q, want January (calendar order)", jan.Month)
	}
	if jan.Inflow != 1000 || jan.Outflow != -400 {
		t.Errorf("January flows = %v/%v, want 1000/-400", jan.Inflow, jan.Outflow)
	}
}

func TestDailyFlowsAndTopActivityDays(t *testing.T) {
	dataset := datasetOf(
		tx("01/01/2025", 100, "A", entity.EstIncome),
		tx("01/01/2025", -40, "B", entity.EstFood),
		tx("03/01/2025", -10, "C", entity.EstFood),
	)

	views := ComputeViews(dataset)

	if len(views.DailyFlows) != 2 {
		t.Fatalf("daily flows = %d, want 2", len(views.DailyFlows))
	}
	first := views.DailyFlows[0]
	if first.Net != 60 || first.Count != 2 {
		t.Errorf("first day = %+v, want net 60, count 2", first)
	}
	if len(views.TopActivityDays) == 0 || views.TopActivityDays[0].Count != 2 {
		t.Errorf("TopActivityDays = %+v, want busiest day first", views.TopActivityDays)
	}
}

func TestTrendView(t *testing.T) {
	t.Run("needs at least three active days", func(t *testing.T) {
		dataset := datasetOf(
			tx("01/01/2025", -100, "A", entity.EstFood),
			tx("02/01/2025", -100, "A", entity.EstFood),
		)
		if views := ComputeViews(dataset); views.Trend != nil {
			t.Errorf("Trend = %+v, want nil", views.Trend)
		}
	})

	t.Run("first half takes the extra day", func(t *testing.T) {
		dataset := datasetOf(
			tx("01/01/2025", -100, "A", entity.EstFood),
			tx("02/01/2025", -100, "A", entity.EstFood),
			tx("03/01/2025", -200, "A", entity.EstFood),
		)
		views := ComputeViews(dataset)
		if views.Trend == nil {
			t.Fatal("Trend = nil, want a view")
		}
		// 3 active days: first half takes 2 (100, 100), second takes 1 (200).
		if views.Trend.FirstHalfMean != 100 || views.Trend.SecondHalfMean != 200 {
			t.Errorf("halves = %v/%v, want 100/200", views.Trend.FirstHalfMean, views.Trend.SecondHalfMean)
		}
		if views.Trend.Direction != "increasing" {
			t.Errorf("Direction = %q, want increasing", views.Trend.Direction)
		}
		if math.Abs(views.Trend.ChangePercent-100.0) > 1e-9 {
			t.Errorf("ChangePercent = %v, want 100", views.Trend.ChangePercent)
		}
	})
}

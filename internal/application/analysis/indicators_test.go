package analysis

import (
	"math"
	"testing"
	"time"

	"github.com/diillson/extrato-dashboard-go/internal/domain/entity"
)

// tx monta uma transação mínima para os testes de indicadores e agregação.
func tx(date string, amount float64, establishment, category string) entity.Transaction {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		panic(err)
	}
	return entity.Transaction{
		Date:                  d,
		Amount:                amount,
		Description:           establishment,
		Establishment:         establishment,
		EstablishmentCategory: category,
		OperationCategory:     entity.OpOther,
		Year:                  d.Year(),
		Month:                 int(d.Month()),
		Day:                   d.Day(),
		Weekday:               d.Weekday().String(),
		MonthName:             d.Month().String(),
		Quarter:               (int(d.Month())-1)/3 + 1,
		IsInflow:              amount > 0,
		IsOutflow:             amount < 0,
	}
}

func datasetOf(transactions ...entity.Transaction) *entity.Dataset {
	return &entity.Dataset{Transactions: transactions}
}

func TestComputeIndicatorsEmpty(t *testing.T) {
	ind := ComputeIndicators(datasetOf())
	if ind.TotalInflow != 0 || ind.TotalOutflow != 0 || ind.SavingsRate != 0 {
		t.Errorf("empty dataset should produce a zero IndicatorSet, got %+v", ind)
	}
}

func TestComputeIndicators(t *testing.T) {
	dataset := datasetOf(
		tx("01/01/2025", 1000, "Empresa ABC", entity.EstIncome),
		tx("02/01/2025", -100, "Uber", entity.EstTransport),
		tx("02/01/2025", -200, "Supermercado Dia", entity.EstFood),
		tx("05/01/2025", -100, "Uber", entity.EstTransport),
	)

	ind := ComputeIndicators(dataset)

	t.Run("net balance identity", func(t *testing.T) {
		if got := ind.TotalInflow - ind.TotalOutflow; got != ind.NetBalance {
			t.Errorf("NetBalance = %v, want %v", ind.NetBalance, got)
		}
		if ind.NetBalance != 600 {
			t.Errorf("NetBalance = %v, want 600", ind.NetBalance)
		}
	})

	t.Run("period are calendar days inclusive", func(t *testing.T) {
		if ind.PeriodDays != 5 {
			t.Errorf("PeriodDays = %v, want 5", ind.PeriodDays)
		}
		if ind.ActiveDays != 3 {
			t.Errorf("ActiveDays = %v, want 3", ind.ActiveDays)
		}
	})

	t.Run("daily averages over calendar days", func(t *testing.T) {
		if got := ind.AvgDailySpend; got != 400.0/5 {
			t.Errorf("AvgDailySpend = %v, want 80", got)
		}
		if got := ind.TransactionsPerDay; got != 4.0/5 {
			t.Errorf("TransactionsPerDay = %v, want 0.8", got)
		}
	})

	t.Run("tickets are magnitudes", func(t *testing.T) {
		wantTicket := 400.0 / 3
		if math.Abs(ind.AvgOutflowTicket-wantTicket) > 1e-9 {
			t.Errorf("AvgOutflowTicket = %v, want %v", ind.AvgOutflowTicket, wantTicket)
		}
		if ind.LargestOutflow != 200 {
			t.Errorf("LargestOutflow = %v, want 200", ind.LargestOutflow)
		}
		if ind.LargestInflow != 1000 {
			t.Errorf("LargestInflow = %v, want 1000", ind.LargestInflow)
		}
	})

	t.Run("counts", func(t *testing.T) {
		if ind.TotalTransactions != 4 || ind.InflowTransactions != 1 || ind.OutflowTransactions != 3 {
			t.Errorf("counts = %d/%d/%d, want 4/1/3", ind.TotalTransactions, ind.InflowTransactions, ind.OutflowTransactions)
		}
		if ind.DistinctEstablishments != 3 {
			t.Errorf("DistinctEstablishments = %d, want 3", ind.DistinctEstablishments)
		}
		if ind.OutflowCategories != 2 {
			t.Errorf("OutflowCategories = %d, want 2", ind.OutflowCategories)
		}
	})

	t.Run("concentration needs minimum observations", func(t *testing.T) {
		// 3 outflows < 5, 2 outflow establishments < 3.
		if ind.Top5OutflowConcentration != 0 {
			t.Errorf("Top5OutflowConcentration = %v, want 0", ind.Top5OutflowConcentration)
		}
		if ind.Top3EstablishmentConcentration != 0 {
			t.Errorf("Top3EstablishmentConcentration = %v, want 0", ind.Top3EstablishmentConcentration)
		}
	})
}

func TestTop5Concentration(t *testing.T) {
	dataset := datasetOf(
		tx("01/01/2025", -100, "A", entity.EstFood),
		tx("01/01/2025", -100, "B", entity.EstFood),
		tx("01/01/2025", -100, "C", entity.EstFood),
		tx("01/01/2025", -100, "D", entity.EstFood),
		tx("01/01/2025", -100, "E", entity.EstFood),
		tx("01/01/2025", -500, "F", entity.EstFood),
	)

	ind := ComputeIndicators(dataset)

	// Top 5 by magnitude: 500+100*4 = 900 of 1000.
	if math.Abs(ind.Top5OutflowConcentration-90.0) > 1e-9 {
		t.Errorf("Top5OutflowConcentration = %v, want 90", ind.Top5OutflowConcentration)
	}
	// Top 3 establishments: 500+100+100 = 700 of 1000.
	if math.Abs(ind.Top3EstablishmentConcentration-70.0) > 1e-9 {
		t.Errorf("Top3EstablishmentConcentration = %v, want 70", ind.Top3EstablishmentConcentration)
	}
}

func TestSavingsRateNegative(t *testing.T) {
	dataset := datasetOf(
		tx("01/01/2025", 100, "Empresa", entity.EstIncome),
		tx("02/01/2025", -300, "Loja", entity.EstRetail),
	)

	ind := ComputeIndicators(dataset)
	if ind.SavingsRate != -200 {
		t.Errorf("SavingsRate = %v, want -200", ind.SavingsRate)
	}
}

func TestQuantile(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		q      float64
		want   float64
	}{
		{"empty", nil, 0.5, 0},
		{"single value", []float64{7}, 0.25, 7},
		{"median of even count", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"first quartile interpolated", []float64{1, 2, 3, 4}, 0.25, 1.75},
		{"unsorted input", []float64{4, 1, 3, 2}, 0.5, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quantile(tt.values, tt.q); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("quantile(%v, %v) = %v, want %v", tt.values, tt.q, got, tt.want)
			}
		})
	}
}

func TestSampleStdDev(t *testing.T) {
	if got := sampleStdDev([]float64{5}); got != 0 {
		t.Errorf("stddev of single value = %v, want 0", got)
	}
	// Sample std dev of {2, 4, 4, 4, 5, 5, 7, 9} is ~2.138.
	got := sampleStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if math.Abs(got-2.13809) > 1e-4 {
		t.Errorf("stddev = %v, want ~2.138", got)
	}
}

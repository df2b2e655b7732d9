package analysis

import (
	"math"
	"sort"

	"github.com/diillson/extrato-dashboard-go/internal/domain/entity"
)

// ComputeIndicators calcula os indicadores de saúde financeira de um
// Dataset. Função pura: o conjunto de entrada não é modificado. Toda divisão
// com denominador zero resulta em 0, nunca em erro — um conjunto vazio
// produz um IndicatorSet zerado, que é um estado válido.
func ComputeIndicators(dataset *entity.Dataset) entity.IndicatorSet {
	var ind entity.IndicatorSet
	if dataset.Len() == 0 {
		return ind
	}

	inflows := dataset.Inflows()
	outflows := dataset.Outflows()

	inflowAmounts := amounts(inflows)
	outflowAmounts := amounts(outflows)

	ind.TotalInflow = sum(inflowAmounts)
	ind.TotalOutflow = math.Abs(sum(outflowAmounts))
	ind.NetBalance = ind.TotalInflow - ind.TotalOutflow
	ind.Turnover = ind.TotalInflow + ind.TotalOutflow

	if ind.TotalInflow > 0 {
		ind.SavingsRate = ind.NetBalance / ind.TotalInflow * 100
	}
	if ind.TotalOutflow > 0 {
		ind.InflowOutflowRatio = ind.TotalInflow / ind.TotalOutflow
	}

	ind.PeriodStart = dataset.Transactions[0].Date
	ind.PeriodEnd = dataset.Transactions[len(dataset.Transactions)-1].Date
	ind.PeriodDays = int(ind.PeriodEnd.Sub(ind.PeriodStart).Hours()/24) + 1
	ind.ActiveDays = countDistinctDays(dataset.Transactions)

	if ind.PeriodDays > 0 {
		days := float64(ind.PeriodDays)
		ind.AvgDailySpend = ind.TotalOutflow / days
		ind.AvgDailyInflow = ind.TotalInflow / days
		ind.TransactionsPerDay = float64(dataset.Len()) / days
	}

	if len(outflows) > 0 {
		ind.AvgOutflowTicket = math.Abs(mean(outflowAmounts))
		ind.LargestOutflow = math.Abs(minOf(outflowAmounts))
	}
	if len(inflows) > 0 {
		ind.AvgInflowTicket = mean(inflowAmounts)
		ind.LargestInflow = maxOf(inflowAmounts)
	}
	ind.AvgTicket = mean(absAmounts(dataset.Transactions))

	ind.TotalTransactions = dataset.Len()
	ind.InflowTransactions = len(inflows)
	ind.OutflowTransactions = len(outflows)
	ind.DistinctEstablishments = countDistinct(dataset.Transactions, func(t entity.Transaction) string {
		return t.Establishment
	})
	ind.OutflowCategories = countDistinct(outflows, func(t entity.Transaction) string {
		return t.EstablishmentCategory
	})

	ind.OutflowVolatility = sampleStdDev(outflowAmounts)
	ind.InflowVolatility = sampleStdDev(inflowAmounts)

	ind.Top5OutflowConcentration = top5Concentration(outflowAmounts, ind.TotalOutflow)
	ind.Top3EstablishmentConcentration = top3EstablishmentConcentration(outflows, ind.TotalOutflow)

	return ind
}

// top5Concentration é a fatia do total de saídas atribuível às 5 maiores
// saídas individuais. Exige pelo menos 5 saídas; abaixo disso devolve 0.
func top5Concentration(outflowAmounts []float64, totalOutflow float64) float64 {
	if len(outflowAmounts) < 5 || totalOutflow <= 0 {
		return 0
	}

	magnitudes := make([]float64, len(outflowAmounts))
	for i, v := range outflowAmounts {
		magnitudes[i] = math.Abs(v)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(magnitudes)))

	return sum(magnitudes[:5]) / totalOutflow * 100
}

// top3EstablishmentConcentration é a fatia do total de saídas atribuível aos
// 3 estabelecimentos com maior gasto agregado. Exige pelo menos 3
// estabelecimentos distintos; abaixo disso devolve 0.
func top3EstablishmentConcentration(outflows []entity.Transaction, totalOutflow float64) float64 {
	if totalOutflow <= 0 {
		return 0
	}

	byEstablishment := map[string]float64{}
	for _, t := range outflows {
		byEstablishment[t.Establishment] += math.Abs(t.Amount)
	}
	if len(byEstablishment) < 3 {
		return 0
	}

	totals := make([]float64, 0, len(byEstablishment))
	for _, v := range byEstablishment {
		totals = append(totals, v)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(totals)))

	return sum(totals[:3]) / totalOutflow * 100
}

func amounts(transactions []entity.Transaction) []float64 {
	out := make([]float64, len(transactions))
	for i, t := range transactions {
		out[i] = t.Amount
	}
	return out
}

func absAmounts(transactions []entity.Transaction) []float64 {
	out := make([]float64, len(transactions))
	for i, t := range transactions {
		out[i] = math.Abs(t.Amount)
	}
	return out
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func countDistinct(transactions []entity.Transaction, key func(entity.Transaction) string) int {
	seen := map[string]bool{}
	for _, t := range transactions {
		seen[key(t)] = true
	}
	return len(seen)
}

func countDistinctDays(transactions []entity.Transaction) int {
	seen := map[string]bool{}
	for _, t := range transactions {
		seen[t.Date.Format("2006-01-02")] = true
	}
	return len(seen)
}

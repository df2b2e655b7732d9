package analysis

import (
	"math"
	"time"

	"github.com/diillson/extrato-dashboard-go/internal/domain/entity"
)

// DetectAnomalies sinaliza transações estatisticamente incomuns e dias sem
// movimentação dentro do período observado.
func DetectAnomalies(dataset *entity.Dataset) entity.AnomalyReport {
	report := entity.AnomalyReport{
		Global:           entity.GlobalOutliers{Transactions: []entity.Transaction{}},
		CategoryOutliers: []entity.CategoryOutlier{},
		SilentDays:       []time.Time{},
	}
	if dataset.Len() == 0 {
		return report
	}

	report.Global = globalOutliers(dataset)
	report.CategoryOutliers = categoryOutliers(dataset)
	report.SilentDays = silentDays(dataset)
	return report
}

// globalOutliers aplica o método IQR sobre todos os valores: transações fora
// de [Q1 - 1.5*IQR, Q3 + 1.5*IQR] são sinalizadas.
func globalOutliers(dataset *entity.Dataset) entity.GlobalOutliers {
	values := make([]float64, dataset.Len())
	for i, t := range dataset.Transactions {
		values[i] = t.Amount
	}

	q1 := quantile(values, 0.25)
	q3 := quantile(values, 0.75)
	iqr := q3 - q1
	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr

	flagged := []entity.Transaction{}
	for _, t := range dataset.Transactions {
		if t.Amount < lower || t.Amount > upper {
			flagged = append(flagged, t)
		}
	}

	return entity.GlobalOutliers{LowerBound: lower, UpperBound: upper, Transactions: flagged}
}

// categoryOutliers sinaliza saídas cuja magnitude excede a média da
// categoria em mais de dois desvios padrão. Categorias com menos de duas
// observações não têm desvio definido e não contribuem com sinalizações.
func categoryOutliers(dataset *entity.Dataset) []entity.CategoryOutlier {
	outflows := dataset.Outflows()

	byCategory := map[string][]float64{}
	for _, t := range outflows {
		byCategory[t.EstablishmentCategory] = append(byCategory[t.EstablishmentCategory], t.Amount)
	}

	means := map[string]float64{}
	stds := map[string]float64{}
	for category, values := range byCategory {
		means[category] = math.Abs(mean(values))
		stds[category] = sampleStdDev(values)
	}

	flagged := []entity.CategoryOutlier{}
	for _, t := range outflows {
		if len(byCategory[t.EstablishmentCategory]) < 2 {
			continue
		}

		m := means[t.EstablishmentCategory]
		std := stds[t.EstablishmentCategory]
		magnitude := math.Abs(t.Amount)
		if magnitude <= m+2*std {
			continue
		}

		deviations := 0.0
		if std > 0 {
			deviations = (magnitude - m) / std
		}
		flagged = append(flagged, entity.CategoryOutlier{
			Transaction:  t,
			CategoryMean: -m,
			Deviations:   deviations,
		})
	}
	return flagged
}

// silentDays lista os dias do intervalo completo entre a primeira e a
// última transação que não registraram nenhuma movimentação.
func silentDays(dataset *entity.Dataset) []time.Time {
	active := map[time.Time]bool{}
	for _, t := range dataset.Transactions {
		active[t.Date] = true
	}

	start := dataset.Transactions[0].Date
	end := dataset.Transactions[len(dataset.Transactions)-1].Date

	silent := []time.Time{}
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if !active[day] {
			silent = append(silent, day)
		}
	}
	return silent
}

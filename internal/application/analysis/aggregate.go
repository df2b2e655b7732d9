package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/diillson/extrato-dashboard-go/internal/domain/entity"
)

// ComputeViews produz todas as visões agregadas de um Dataset num único
// passo determinístico: um fold por chave de agrupamento, seguido de
// ordenação para apresentação.
func ComputeViews(dataset *entity.Dataset) entity.AggregationViews {
	views := entity.AggregationViews{
		OutflowByCategory:      categoryView(dataset.Outflows(), true),
		InflowByCategory:       categoryView(dataset.Inflows(), false),
		OutflowByEstablishment: establishmentView(dataset.Outflows()),
		InflowByEstablishment:  establishmentView(dataset.Inflows()),
		ByWeekday:              weekdayView(dataset),
		ByMonth:                monthView(dataset),
		DailyFlows:             dailyFlows(dataset),
	}

	views.RecurringExpenses = recurringView(views.OutflowByEstablishment)
	views.TopActivityDays = topActivityDays(views.DailyFlows, 5)
	views.Trend = trendView(dataset)

	return views
}

type categoryAccumulator struct {
	count          int
	total          float64
	values         []float64
	establishments map[string]bool
	days           map[string]bool
}

// categoryView agrega por categoria de estabelecimento. Para a visão de
// saídas, totais e médias são magnitudes e a visão carrega desvio padrão,
// estabelecimentos distintos e dias ativos.
func categoryView(transactions []entity.Transaction, detailed bool) []entity.CategorySummary {
	accs := map[string]*categoryAccumulator{}
	for _, t := range transactions {
		acc, ok := accs[t.EstablishmentCategory]
		if !ok {
			acc = &categoryAccumulator{establishments: map[string]bool{}, days: map[string]bool{}}
			accs[t.EstablishmentCategory] = acc
		}
		acc.count++
		acc.total += math.Abs(t.Amount)
		acc.values = append(acc.values, t.Amount)
		acc.establishments[t.Establishment] = true
		acc.days[t.Date.Format("2006-01-02")] = true
	}

	summaries := make([]entity.CategorySummary, 0, len(accs))
	for category, acc := range accs {
		s := entity.CategorySummary{
			Category: category,
			Count:    acc.count,
			Total:    acc.total,
			Mean:     acc.total / float64(acc.count),
		}
		if detailed {
			s.StdDev = sampleStdDev(acc.values)
			s.DistinctEstablishments = len(acc.establishments)
			s.ActiveDays = len(acc.days)
		}
		summaries = append(summaries, s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Total != summaries[j].Total {
			return summaries[i].Total > summaries[j].Total
		}
		return summaries[i].Category < summaries[j].Category
	})
	return summaries
}

type establishmentAccumulator struct {
	count      int
	total      float64
	largest    float64
	first      time.Time
	last       time.Time
	days       map[string]bool
	categories map[string]int
}

func establishmentView(transactions []entity.Transaction) []entity.EstablishmentSummary {
	accs := map[string]*establishmentAccumulator{}
	for _, t := range transactions {
		acc, ok := accs[t.Establishment]
		if !ok {
			acc = &establishmentAccumulator{
				first:      t.Date,
				last:       t.Date,
				days:       map[string]bool{},
				categories: map[string]int{},
			}
			accs[t.Establishment] = acc
		}
		acc.count++
		acc.total += math.Abs(t.Amount)
		if math.Abs(t.Amount) > acc.largest {
			acc.largest = math.Abs(t.Amount)
		}
		if t.Date.Before(acc.first) {
			acc.first = t.Date
		}
		if t.Date.After(acc.last) {
			acc.last = t.Date
		}
		acc.days[t.Date.Format("2006-01-02")] = true
		acc.categories[t.EstablishmentCategory]++
	}

	summaries := make([]entity.EstablishmentSummary, 0, len(accs))
	for name, acc := range accs {
		summaries = append(summaries, entity.EstablishmentSummary{
			Establishment: name,
			Count:         acc.count,
			Total:         acc.total,
			Mean:          acc.total / float64(acc.count),
			Largest:       acc.largest,
			FirstDate:     acc.first,
			LastDate:      acc.last,
			ActiveDays:    len(acc.days),
			MainCategory:  modalCategory(acc.categories),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Total != summaries[j].Total {
			return summaries[i].Total > summaries[j].Total
		}
		return summaries[i].Establishment < summaries[j].Establishment
	})
	return summaries
}

// modalCategory devolve a categoria mais frequente; empates são resolvidos
// alfabeticamente para manter o resultado determinístico.
func modalCategory(counts map[string]int) string {
	best := ""
	bestCount := -1
	for category, count := range counts {
		if count > bestCount || (count == bestCount && category < best) {
			best = category
			bestCount = count
		}
	}
	return best
}

// recurringView filtra os estabelecimentos ativos em pelo menos dois dias
// distintos e calcula o gasto médio por dia ativo.
func recurringView(establishments []entity.EstablishmentSummary) []entity.EstablishmentSummary {
	recurring := []entity.EstablishmentSummary{}
	for _, e := range establishments {
		if e.ActiveDays < 2 {
			continue
		}
		e.AvgPerActiveDay = e.Total / float64(e.ActiveDays)
		recurring = append(recurring, e)
	}
	return recurring
}

func weekdayView(dataset *entity.Dataset) []entity.WeekdaySummary {
	counts := map[string]int{}
	totals := map[string]float64{}
	for _, t := range dataset.Transactions {
		counts[t.Weekday]++
		totals[t.Weekday] += t.Amount
	}

	summaries := []entity.WeekdaySummary{}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := wd.String()
		if counts[name] == 0 {
			continue
		}
		summaries = append(summaries, entity.WeekdaySummary{
			Weekday: name,
			Count:   counts[name],
			Total:   totals[name],
			Mean:    totals[name] / float64(counts[name]),
		})
	}
	return summaries
}

func monthView(dataset *entity.Dataset) []entity.MonthSummary {
	counts := map[string]int{}
	totals := map[string]float64{}
	inflows := map[string]float64{}
	outflows := map[string]float64{}
	for _, t := range dataset.Transactions {
		counts[t.MonthName]++
		totals[t.MonthName] += t.Amount
		if t.IsInflow {
			inflows[t.MonthName] += t.Amount
		}
		if t.IsOutflow {
			outflows[t.MonthName] += t.Amount
		}
	}

	summaries := []entity.MonthSummary{}
	for m := time.January; m <= time.December; m++ {
		name := m.String()
		if counts[name] == 0 {
			continue
		}
		summaries = append(summaries, entity.MonthSummary{
			Month:   name,
			Count:   counts[name],
			Total:   totals[name],
			Mean:    totals[name] / float64(counts[name]),
			Inflow:  inflows[name],
			Outflow: outflows[name],
		})
	}
	return summaries
}

func dailyFlows(dataset *entity.Dataset) []entity.DailyFlow {
	nets := map[time.Time]float64{}
	counts := map[time.Time]int{}
	for _, t := range dataset.Transactions {
		day := t.Date
		nets[day] += t.Amount
		counts[day]++
	}

	flows := make([]entity.DailyFlow, 0, len(nets))
	for day := range nets {
		flows = append(flows, entity.DailyFlow{Date: day, Net: nets[day], Count: counts[day]})
	}
	sort.Slice(flows, func(i, j int) bool { return flows[i].Date.Before(flows[j].Date) })
	return flows
}

// topActivityDays devolve os n dias com mais transações; empates favorecem
// o dia mais antigo.
func topActivityDays(flows []entity.DailyFlow, n int) []entity.DailyFlow {
	ranked := make([]entity.DailyFlow, len(flows))
	copy(ranked, flows)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// trendView divide a sequência cronológica de saídas diárias em duas
// metades (a primeira fica com o elemento extra quando a contagem é ímpar) e
// compara as médias. Omitida quando menos de 3 dias têm alguma saída.
func trendView(dataset *entity.Dataset) *entity.TrendView {
	totals := map[time.Time]float64{}
	for _, t := range dataset.Outflows() {
		totals[t.Date] += math.Abs(t.Amount)
	}
	if len(totals) < 3 {
		return nil
	}

	days := make([]time.Time, 0, len(totals))
	for day := range totals {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	daily := make([]float64, len(days))
	for i, day := range days {
		daily[i] = totals[day]
	}

	split := (len(daily) + 1) / 2
	firstHalf := mean(daily[:split])
	secondHalf := mean(daily[split:])

	change := 0.0
	if firstHalf > 0 {
		change = (secondHalf - firstHalf) / firstHalf * 100
	}

	direction := "non-increasing"
	if change > 0 {
		direction = "increasing"
	}

	return &entity.TrendView{
		FirstHalfMean:  firstHalf,
		SecondHalfMean: secondHalf,
		ChangePercent:  change,
		Direction:      direction,
	}
}

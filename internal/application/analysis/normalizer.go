package analysis

import (
	"sort"
	"strings"
	"time"

	"github.com/diillson/extrato-dashboard-go/internal/domain/entity"
	"github.com/diillson/extrato-dashboard-go/internal/shared/types"
)

// DateLayout é o formato primário de data dos extratos (dd/mm/aaaa).
const DateLayout = "02/01/2006"

// Normalizer constrói o registro canônico de transação a partir das linhas
// brutas do extrato.
type Normalizer struct {
	classifier *Classifier
}

// NewNormalizer cria um Normalizer usando o classificador fornecido.
func NewNormalizer(classifier *Classifier) *Normalizer {
	if classifier == nil {
		classifier = NewClassifier()
	}
	return &Normalizer{classifier: classifier}
}

// Normalize converte as linhas brutas num Dataset ordenado por data
// ascendente (ordenação estável). Linhas cuja data não pode ser interpretada
// são descartadas; a contagem de descartes é devolvida ao chamador como
// sinal de aviso, nunca como falha. Só a ausência total de linhas usáveis é
// um erro (types.ErrEmptyDataset).
func (n *Normalizer) Normalize(rows []entity.RawRow) (*entity.Dataset, int, error) {
	transactions := make([]entity.Transaction, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		date, err := time.Parse(DateLayout, strings.TrimSpace(row.Date))
		if err != nil {
			dropped++
			continue
		}

		inflow := ParseAmount(row.Inflow)
		outflow := ParseAmount(row.Outflow)
		balance := ParseAmount(row.Balance)

		// A saída já carrega o sinal negativo.
		amount := inflow + outflow

		t := entity.Transaction{
			Date:                  date,
			Amount:                amount,
			Inflow:                inflow,
			Outflow:               outflow,
			Balance:               balance,
			Description:           strings.TrimSpace(row.Description),
			OperationCategory:     n.classifier.CategorizeOperation(row.Description),
			EstablishmentCategory: n.classifier.CategorizeEstablishment(row.Description),
			Establishment:         n.classifier.ExtractEstablishmentName(row.Description),
			Year:                  date.Year(),
			Month:                 int(date.Month()),
			Day:                   date.Day(),
			Weekday:               date.Weekday().String(),
			MonthName:             date.Month().String(),
			Quarter:               (int(date.Month())-1)/3 + 1,
			IsWeekend:             date.Weekday() == time.Saturday || date.Weekday() == time.Sunday,
			IsInflow:              amount > 0,
			IsOutflow:             amount < 0,
		}

		transactions = append(transactions, t)
	}

	if len(transactions) == 0 {
		return nil, dropped, types.ErrEmptyDataset
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.Before(transactions[j].Date)
	})

	return &entity.Dataset{Transactions: transactions}, dropped, nil
}

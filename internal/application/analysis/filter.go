package analysis

import (
	"time"

	"github.com/diillson/extrato-dashboard-go/internal/domain/entity"
)

// Direções de fluxo aceitas por FilterOptions.
const (
	FlowAll     = "all"
	FlowInflow  = "inflow"
	FlowOutflow = "outflow"
)

// FilterOptions descreve um recorte do conjunto normalizado.
type FilterOptions struct {
	Start      *time.Time
	End        *time.Time
	Flow       string
	Categories []string
}

// Filter devolve um novo Dataset contendo apenas as transações que
// satisfazem as opções. O conjunto de origem nunca é modificado; um
// resultado vazio é um estado válido, não um erro.
func Filter(dataset *entity.Dataset, opts FilterOptions) *entity.Dataset {
	if dataset == nil {
		return &entity.Dataset{}
	}

	categories := map[string]bool{}
	for _, c := range opts.Categories {
		categories[c] = true
	}

	filtered := []entity.Transaction{}
	for _, t := range dataset.Transactions {
		if opts.Start != nil && t.Date.Before(*opts.Start) {
			continue
		}
		if opts.End != nil && t.Date.After(*opts.End) {
			continue
		}
		if opts.Flow == FlowInflow && !t.IsInflow {
			continue
		}
		if opts.Flow == FlowOutflow && !t.IsOutflow {
			continue
		}
		if len(categories) > 0 && !categories[t.OperationCategory] {
			continue
		}
		filtered = append(filtered, t)
	}

	return &entity.Dataset{Transactions: filtered}
}

package analysis

import (
	"strings"

	"github.com/diillson/extrato-dashboard-go/internal/domain/entity"
	"github.com/diillson/extrato-dashboard-go/internal/shared/types"
)

// Classifier mapeia descrições de transação para categorias e extrai o nome
// normalizado do estabelecimento. As tabelas de regras são avaliadas em
// ordem; a primeira regra que casa vence.
type Classifier struct {
	operations     []operationRule
	establishments []establishmentRule
	patterns       []extractionPattern
}

// NewClassifier cria um classificador com as tabelas de regras embutidas.
func NewClassifier() *Classifier {
	return &Classifier{
		operations:     operationRules,
		establishments: establishmentRules,
		patterns:       extractionPatterns,
	}
}

// NewClassifierWithOverlay cria um classificador com regras extras anexadas
// depois das embutidas. A precedência embutida nunca é reordenada.
func NewClassifierWithOverlay(overlay *types.RuleOverlay) *Classifier {
	c := NewClassifier()
	if overlay == nil {
		return c
	}

	if len(overlay.Establishments) > 0 || len(overlay.Individuals) > 0 {
		merged := make([]establishmentRule, len(establishmentRules))
		copy(merged, establishmentRules)

		if len(overlay.Individuals) > 0 {
			for i, rule := range merged {
				if rule.category != entity.EstIndividuals {
					continue
				}
				keywords := make([]string, 0, len(rule.keywords)+len(overlay.Individuals))
				keywords = append(keywords, rule.keywords...)
				for _, name := range overlay.Individuals {
					keywords = append(keywords, strings.ToUpper(strings.TrimSpace(name)))
				}
				merged[i].keywords = keywords
			}
		}

		for _, extra := range overlay.Establishments {
			if extra.Category == "" || len(extra.Keywords) == 0 {
				continue
			}
			keywords := make([]string, 0, len(extra.Keywords))
			for _, kw := range extra.Keywords {
				keywords = append(keywords, strings.ToUpper(strings.TrimSpace(kw)))
			}
			merged = append(merged, establishmentRule{category: extra.Category, keywords: keywords})
		}

		c.establishments = merged
	}

	return c
}

// CategorizeOperation classifica a mecânica da operação a partir da
// descrição. Sem correspondência devolve "Other"; descrição vazia devolve
// "Not Informed".
func (c *Classifier) CategorizeOperation(description string) string {
	if strings.TrimSpace(description) == "" {
		return entity.OpNotInformed
	}

	desc := strings.ToUpper(description)
	for _, rule := range c.operations {
		if matchGroups(desc, rule.groups) {
			return rule.category
		}
	}
	return entity.OpOther
}

// matchGroups exige que cada grupo contribua com pelo menos uma
// palavra-chave presente na descrição.
func matchGroups(desc string, groups []keywordGroup) bool {
	for _, group := range groups {
		if !containsAny(desc, group) {
			return false
		}
	}
	return true
}

func containsAny(desc string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}

// CategorizeEstablishment classifica o domínio de negócio da contraparte.
func (c *Classifier) CategorizeEstablishment(description string) string {
	if strings.TrimSpace(description) == "" {
		return entity.EstNotInformed
	}

	desc := strings.ToUpper(description)
	for _, rule := range c.establishments {
		if containsAny(desc, rule.keywords) {
			return rule.category
		}
	}
	return entity.EstOther
}

// ExtractEstablishmentName extrai o nome normalizado do estabelecimento.
// O primeiro padrão cuja chave aparece na descrição em maiúsculas e que casa
// fornece o nome. Sem padrão aplicável, o fallback descarta as três
// primeiras palavras (o preâmbulo do tipo de operação); com menos de quatro
// palavras, devolve a descrição original aparada.
func (c *Classifier) ExtractEstablishmentName(description string) string {
	desc := strings.TrimSpace(description)
	if desc == "" {
		return entity.EstNotInformed
	}

	upper := strings.ToUpper(desc)
	for _, p := range c.patterns {
		if !strings.Contains(upper, p.key) {
			continue
		}
		if m := p.pattern.FindStringSubmatch(desc); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	words := strings.Fields(desc)
	if len(words) > 3 {
		return strings.Join(words[3:], " ")
	}
	return desc
}

package analysis

import (
	"strconv"
	"strings"
)

// ParseAmount converte uma string monetária no formato brasileiro para
// float64. Nunca falha: entradas irrecuperáveis resultam em 0.0.
//
// Exemplos: "1.234,56" → 1234.56, "-R$ 50,00" → -50.0, "" → 0.0, "-" → 0.0.
func ParseAmount(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0.0
	}

	// Remove aspas, símbolos de moeda e espaços internos.
	replacer := strings.NewReplacer(`"`, "", "'", "", "R$", "", "$", "", " ", "", " ", "")
	s = replacer.Replace(s)

	// Ponto é separador de milhar; vírgula é o separador decimal.
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}
	if s == "" || s == "-" {
		return 0.0
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0.0
	}
	if negative {
		return -value
	}
	return value
}

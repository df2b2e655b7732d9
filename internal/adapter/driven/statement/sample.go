package statement

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/diillson/extrato-dashboard-go/internal/domain/entity"
)

// SampleSpec configura a geração de um extrato fictício.
type SampleSpec struct {
	Rows       int
	Start      time.Time
	End        time.Time
	BaseSalary float64
	Seed       int64
}

var sampleExpenses = map[string][]string{
	"Alimentação": {"Supermercado Dia", "iFood Restaurante Sabor Caseiro", "Padaria Pão Quente", "Mercado Central"},
	"Transporte":  {"Uber Viagem", "99 App", "Recarga Bilhete Metro", "Taxi Ponto Azul"},
	"Moradia":     {"Aluguel Residencial", "Condomínio Edifício Sol", "Conta de Agua - Sabesp", "Conta de Internet - Vivo"},
	"Lazer":       {"Cinema Cinemark", "Ingresso Show", "Spotify", "Netflix"},
	"Saúde":       {"Drogaria São Paulo", "Clinica Dr. Silva", "Plano de Saude Amil"},
	"Compras":     {"Compra Cartao Deb MC 12/05 Lojas Renner", "Magazine Luiza", "Shopping Center Norte"},
}

var sampleIncome = map[string][]string{
	"Salário":       {"LIQUIDO DE VENCIMENTO Empresa ABC"},
	"Transferência": {"PIX RECEBIDO Maria Souza", "TED RECEBIDA Joao Oliveira"},
	"Rendimentos":   {"REMUNERACAO APLICACAO Poupanca"},
}

// GenerateSample produz linhas brutas fictícias, ordenadas por data.
// Determinística para uma mesma semente.
func GenerateSample(spec SampleSpec) []entity.RawRow {
	if spec.Rows <= 0 {
		spec.Rows = 200
	}
	if spec.BaseSalary <= 0 {
		spec.BaseSalary = 6800.00
	}
	if spec.End.Before(spec.Start) {
		spec.Start, spec.End = spec.End, spec.Start
	}

	rng := rand.New(rand.NewSource(spec.Seed))
	periodDays := int(spec.End.Sub(spec.Start).Hours()/24) + 1

	dates := make([]time.Time, spec.Rows)
	for i := range dates {
		dates[i] = spec.Start.AddDate(0, 0, rng.Intn(periodDays))
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	expenseCategories := sortedKeys(sampleExpenses)
	incomeCategories := sortedKeys(sampleIncome)

	rows := make([]entity.RawRow, 0, spec.Rows)
	for _, date := range dates {
		row := entity.RawRow{Date: date.Format("02/01/2006")}

		// 85% das transações são gastos.
		if rng.Float64() < 0.85 {
			category := expenseCategories[rng.Intn(len(expenseCategories))]
			descriptions := sampleExpenses[category]
			row.Description = descriptions[rng.Intn(len(descriptions))]
			row.Inflow = formatBRL(0)
			row.Outflow = formatBRL(-(10 + rng.Float64()*440))
		} else {
			category := incomeCategories[rng.Intn(len(incomeCategories))]
			value := 50 + rng.Float64()*450
			if rng.Float64() < 0.7 {
				category = "Salário"
				value = spec.BaseSalary * (0.95 + rng.Float64()*0.10)
			}
			descriptions := sampleIncome[category]
			row.Description = descriptions[rng.Intn(len(descriptions))]
			row.Inflow = formatBRL(value)
			row.Outflow = formatBRL(0)
		}

		rows = append(rows, row)
	}

	return rows
}

// WriteSampleCSV grava as linhas geradas num CSV com o layout de extrato
// esperado pela ingestão.
func WriteSampleCSV(rows []entity.RawRow, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating sample file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"Data", "Descrição", "Entradas", "Saidas"}); err != nil {
		return fmt.Errorf("error writing sample header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write([]string{row.Date, row.Description, row.Inflow, row.Outflow}); err != nil {
			return fmt.Errorf("error writing sample row: %w", err)
		}
	}

	return nil
}

// formatBRL formata um valor no padrão monetário do extrato (vírgula como
// separador decimal).
func formatBRL(value float64) string {
	return strings.ReplaceAll(fmt.Sprintf("%.2f", value), ".", ",")
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

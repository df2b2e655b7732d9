package statement

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/diillson/extrato-dashboard-go/internal/domain/entity"
	"github.com/diillson/extrato-dashboard-go/internal/domain/repository"
	"github.com/diillson/extrato-dashboard-go/internal/shared/types"
)

// Candidatos de nome de coluna, na ordem de preferência. A resolução
// acontece aqui, antes de o núcleo de análise receber as linhas.
var (
	dateColumns        = []string{"Data", "Date", "DATE", "Data Movimentação", "Data da Transação", "Transaction Date"}
	inflowColumns      = []string{"Entradas", "Entrada", "Crédito", "Credito", "Credit", "Receita", "Revenue"}
	outflowColumns     = []string{"Saidas", "Saída", "Saídas", "Débito", "Debito", "Debit", "Despesa", "Outflow"}
	balanceColumns     = []string{"Saldo", "Balance", "Saldo Final", "Saldo Atual"}
	descriptionColumns = []string{"Descrição", "Descricao", "Description", "Histórico", "Historico", "Memo"}
)

// StatementRepositoryImpl implementa o StatementRepository para arquivos
// CSV e XLSX.
type StatementRepositoryImpl struct{}

// NewStatementRepository cria uma nova implementação do StatementRepository.
func NewStatementRepository() repository.StatementRepository {
	return &StatementRepositoryImpl{}
}

// LoadStatement lê um extrato e devolve as linhas brutas com as colunas já
// resolvidas. Nenhum valor é interpretado aqui.
func (r *StatementRepositoryImpl) LoadStatement(path string, sheet string) ([]entity.RawRow, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrStatementNotFound, path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return r.loadCSV(path)
	case ".xlsx", ".xlsm":
		return r.loadXLSX(path, sheet)
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ListSheets lista as planilhas de um arquivo XLSX. Para CSV devolve uma
// lista vazia.
func (r *StatementRepositoryImpl) ListSheets(path string) ([]string, error) {
	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		return []string{}, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening spreadsheet: %w", err)
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

func (r *StatementRepositoryImpl) loadCSV(path string) ([]entity.RawRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading statement file: %w", err)
	}
	return ReadBytes(data)
}

func (r *StatementRepositoryImpl) loadXLSX(path string, sheet string) ([]entity.RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening spreadsheet: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q: %w", sheet, err)
	}

	rows, err := resolveRows(records)
	if err != nil {
		return nil, err
	}

	// Células numéricas chegam do excelize com ponto decimal e sem
	// separador de milhar; convertidas aqui para o formato de vírgula que
	// o núcleo espera.
	for i := range rows {
		rows[i].Inflow = normalizeNumericCell(rows[i].Inflow)
		rows[i].Outflow = normalizeNumericCell(rows[i].Outflow)
		rows[i].Balance = normalizeNumericCell(rows[i].Balance)
	}

	return rows, nil
}

// numericCellPattern reconhece o valor que o excelize devolve para uma
// célula numérica: dígitos com no máximo um ponto decimal.
var numericCellPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// normalizeNumericCell troca o ponto decimal de uma célula numérica pela
// vírgula do formato monetário do extrato. Valores já formatados como texto
// ("1.234,56", "-8,50") não casam com o padrão e passam intactos.
func normalizeNumericCell(value string) string {
	if numericCellPattern.MatchString(value) {
		return strings.Replace(value, ".", ",", 1)
	}
	return value
}

// decodeText tenta UTF-8 primeiro e cai para Windows-1252 e depois
// Latin-1, a escada de codificações comum em extratos brasileiros.
func decodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	if decoded, err := charmap.Windows1252.NewDecoder().Bytes(data); err == nil {
		return string(decoded), nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("error decoding statement file: %w", err)
	}
	return string(decoded), nil
}

// detectDelimiter escolhe entre vírgula e ponto-e-vírgula inspecionando a
// linha de cabeçalho. Extratos brasileiros frequentemente usam ';'.
func detectDelimiter(text string) rune {
	header := text
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		header = text[:idx]
	}
	if strings.Count(header, ";") > strings.Count(header, ",") {
		return ';'
	}
	return ','
}

// resolveRows localiza as colunas relevantes no cabeçalho e monta as linhas
// brutas. Só a coluna de data é obrigatória.
func resolveRows(records [][]string) ([]entity.RawRow, error) {
	if len(records) == 0 {
		return nil, types.ErrNoUsableColumns
	}

	header := records[0]
	dateIdx := findColumn(header, dateColumns)
	if dateIdx < 0 {
		return nil, types.ErrNoUsableColumns
	}

	inflowIdx := findColumn(header, inflowColumns)
	outflowIdx := findColumn(header, outflowColumns)
	balanceIdx := findColumn(header, balanceColumns)
	descriptionIdx := findColumn(header, descriptionColumns)

	rows := make([]entity.RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		rows = append(rows, entity.RawRow{
			Date:        cell(record, dateIdx),
			Description: cell(record, descriptionIdx),
			Inflow:      cell(record, inflowIdx),
			Outflow:     cell(record, outflowIdx),
			Balance:     cell(record, balanceIdx),
		})
	}

	return rows, nil
}

func findColumn(header []string, candidates []string) int {
	for _, candidate := range candidates {
		for i, name := range header {
			if strings.EqualFold(strings.TrimSpace(name), candidate) {
				return i
			}
		}
	}
	return -1
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

// ReadBytes monta as linhas brutas a partir do conteúdo de um CSV em
// memória, útil para testes e para fontes que não são arquivos.
func ReadBytes(data []byte) ([]entity.RawRow, error) {
	text, err := decodeText(data)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader([]byte(text)))
	reader.Comma = detectDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error parsing CSV statement: %w", err)
	}

	return resolveRows(records)
}

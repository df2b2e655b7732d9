package entity

import "time"

// Categorias de operação atribuídas a partir da descrição da transação.
const (
	OpPixReceived       = "Pix Received"
	OpPixSent           = "Pix Sent"
	OpCreditCardPayment = "Credit Card Payment"
	OpDebitCard         = "Debit Card"
	OpTransfer          = "Transfer"
	OpSalary            = "Salary"
	OpBills             = "Bills/Services"
	OpBoleto            = "Boleto"
	OpRefund            = "Refund"
	OpWithdrawal        = "Withdrawal"
	OpDeposit           = "Deposit"
	OpInvestmentYield   = "Investment Yield"
	OpFees              = "Fees/IOF"
	OpOther             = "Other"
	OpNotInformed       = "Not Informed"
)

// Categorias de estabelecimento (domínio de negócio da contraparte).
const (
	EstTransport     = "Transport"
	EstFood          = "Food"
	EstRetail        = "Retail"
	EstUtilities     = "Utilities"
	EstHousing       = "Housing"
	EstFinancial     = "Financial"
	EstHealth        = "Health"
	EstIndividuals   = "Individuals"
	EstIncome        = "Income"
	EstEducation     = "Education"
	EstEntertainment = "Entertainment"
	EstTechnology    = "Technology"
	EstOther         = "Other"
	EstNotInformed   = "Not Informed"
)

// RawRow é uma linha bruta do extrato, como entregue pela camada de ingestão.
// Todos os campos são texto: a resolução de nomes de coluna já aconteceu,
// mas nenhum valor foi interpretado ainda.
type RawRow struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Inflow      string `json:"inflow"`
	Outflow     string `json:"outflow"`
	Balance     string `json:"balance"`
}

// Transaction é o registro canônico de uma entrada do extrato após a
// normalização.
type Transaction struct {
	Date                  time.Time `json:"date"`
	Amount                float64   `json:"amount"`
	Inflow                float64   `json:"inflow"`
	Outflow               float64   `json:"outflow"`
	Balance               float64   `json:"balance"`
	Description           string    `json:"description"`
	OperationCategory     string    `json:"operation_category"`
	EstablishmentCategory string    `json:"establishment_category"`
	Establishment         string    `json:"establishment"`

	// Campos de calendário derivados da data.
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	Weekday   string `json:"weekday"`
	MonthName string `json:"month_name"`
	Quarter   int    `json:"quarter"`
	IsWeekend bool   `json:"is_weekend"`

	// Flags de sinal. Mutuamente exclusivas; ambas falsas quando Amount == 0.
	IsInflow  bool `json:"is_inflow"`
	IsOutflow bool `json:"is_outflow"`
}

// Dataset é o conjunto normalizado de transações, ordenado por data
// ascendente (ordenação estável: empates preservam a ordem de entrada).
// Depois de produzido é tratado como imutável; filtros criam novos Datasets.
type Dataset struct {
	Transactions []Transaction `json:"transactions"`
}

// Len devolve o número de transações do conjunto.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Transactions)
}

// Inflows devolve as transações com Amount > 0.
func (d *Dataset) Inflows() []Transaction {
	return d.selectBy(func(t Transaction) bool { return t.Amount > 0 })
}

// Outflows devolve as transações com Amount < 0.
func (d *Dataset) Outflows() []Transaction {
	return d.selectBy(func(t Transaction) bool { return t.Amount < 0 })
}

func (d *Dataset) selectBy(keep func(Transaction) bool) []Transaction {
	if d == nil {
		return nil
	}
	out := []Transaction{}
	for _, t := range d.Transactions {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

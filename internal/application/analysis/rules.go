package analysis

import (
	"regexp"

	"github.com/diillson/extrato-dashboard-go/internal/domain/entity"
)

// keywordGroup é uma lista OR: o grupo contribui se a descrição contiver
// qualquer uma das palavras-chave.
type keywordGroup []string

// operationRule classifica a mecânica da operação. Com um único grupo a
// regra é um OR simples; com vários grupos, todos os grupos precisam
// contribuir com pelo menos uma palavra-chave (regra AND).
type operationRule struct {
	category string
	groups   []keywordGroup
}

// establishmentRule classifica o domínio de negócio da contraparte por
// correspondência OR de palavras-chave.
type establishmentRule struct {
	category string
	keywords []string
}

// extractionPattern extrai o nome do estabelecimento. O padrão só é testado
// quando a descrição em maiúsculas contém a chave; o primeiro grupo de
// captura, com espaços aparados, é o nome.
type extractionPattern struct {
	key     string
	pattern *regexp.Regexp
}

// As tabelas abaixo são dados, não código: a ordem é parte do contrato
// público, porque palavras-chave sobrepostas entre categorias são resolvidas
// por precedência de regra, não por especificidade.

var operationRules = []operationRule{
	{entity.OpPixReceived, []keywordGroup{{"PIX"}, {"RECEBIDO", "RECEIVED"}}},
	{entity.OpPixSent, []keywordGroup{{"PIX"}, {"ENVIADO", "SENT"}}},
	{entity.OpCreditCardPayment, []keywordGroup{{"PAGAMENTO", "PAYMENT"}, {"CARTAO CREDITO", "CREDIT CARD"}}},
	{entity.OpDebitCard, []keywordGroup{{"COMPRA CARTAO DEB", "DEBIT CARD"}}},
	{entity.OpTransfer, []keywordGroup{{"TED", "DOC"}}},
	{entity.OpSalary, []keywordGroup{{"LIQUIDO DE VENCIMENTO", "SALARY"}}},
	{entity.OpBills, []keywordGroup{{"AGUA", "ESGOTO", "CLARO", "TELEFONE", "DEBITO AUT"}}},
	{entity.OpBoleto, []keywordGroup{{"BOLETO"}}},
	{entity.OpRefund, []keywordGroup{{"ESTORNO", "REFUND"}}},
	{entity.OpWithdrawal, []keywordGroup{{"SAQUE", "WITHDRAWAL"}}},
	{entity.OpDeposit, []keywordGroup{{"DEPOSITO", "DEPÓSITO", "DEPOSIT"}}},
	{entity.OpInvestmentYield, []keywordGroup{{"REMUNERACAO APLICACAO"}}},
	{entity.OpFees, []keywordGroup{{"IOF"}}},
}

var establishmentRules = []establishmentRule{
	{entity.EstTransport, []string{"UBER", "99", "TAXI", "CABIFY", "METRO"}},
	{entity.EstFood, []string{
		"RESTAURANT", "PIZZA", "BURGER", "FOOD", "CAFE", "BAR",
		"LANCHE", "HORTIFRUTI", "MERCADO", "SUBWAY", "PADARIA", "SUPERMERCADO",
	}},
	{entity.EstRetail, []string{"SHOPPING", "LOJA", "MAGAZINE", "STORE"}},
	{entity.EstUtilities, []string{"CLARO", "AGUA", "ESGOTO", "SABESP", "ELETROPAULO", "TELEFONE", "ENERGIA", "INTERNET"}},
	{entity.EstHousing, []string{"CONDOMINIO", "ALUGUEL", "RENT", "IMOBILIARIA"}},
	{entity.EstFinancial, []string{"BANCO", "CAIXA", "FINANCEIRA", "WISE", "CARTAO CREDITO", "IOF", "SEGURO"}},
	{entity.EstHealth, []string{"SAUDE", "DROGASIL", "DROGARIA", "FARMACIA", "CLINICA", "HOSPITAL"}},
	{entity.EstIndividuals, []string{"MARIA", "JOSE", "SILVA", "SOUZA", "SANTOS", "OLIVEIRA"}},
	{entity.EstIncome, []string{"LIQUIDO DE VENCIMENTO", "SALARY", "CNPJ", "HONORARIOS"}},
	{entity.EstEducation, []string{"COPIADORA", "ENCADERNA", "ESCOLA", "CURSO", "FACULDADE", "UNIVERSIDADE"}},
	{entity.EstEntertainment, []string{"INGRESSO", "CINEMA", "TEATRO", "NETFLIX", "SPOTIFY"}},
	{entity.EstTechnology, []string{"SOFTWARE", "TECNOLOGIA", "TECH", "HOSTING"}},
}

var extractionPatterns = []extractionPattern{
	{"PIX", regexp.MustCompile(`(?i)PIX\s+(?:RECEBIDO|ENVIADO|RECEIVED|SENT)\s+(.+)$`)},
	{"CARTAO", regexp.MustCompile(`(?i)COMPRA CARTAO DEB(?:\s+\w{2})?\s+\d{2}/\d{2}\s+(.+)$`)},
	{"BOLETO", regexp.MustCompile(`(?i)PAGAMENTO DE BOLETO\s+(.+)$`)},
	{"TED", regexp.MustCompile(`(?i)TED\s+(?:RECEBIDA|ENVIADA|RECEIVED|SENT)\s+(.+)$`)},
	{"LIQUIDO", regexp.MustCompile(`(?i)LIQUIDO DE VENCIMENTO\s+(.+)$`)},
}

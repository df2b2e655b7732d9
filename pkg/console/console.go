package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/diillson/extrato-dashboard-go/internal/shared/types"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Cores predefinidas para uso consistente
var (
	BrightMagenta = color.New(color.FgMagenta, color.Bold).SprintFunc()
	BoldRed       = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightGreen   = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightYellow  = color.New(color.FgYellow, color.Bold).SprintFunc()
	BrightCyan    = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// progressHandle é uma implementação do ProgressHandle.
type progressHandle struct {
	bar *pterm.ProgressbarPrinter
}

// Progress cria uma barra de progresso para os itens especificados.
func (c *Console) Progress(items []string) types.ProgressHandle {
	bar, _ := pterm.DefaultProgressbar.WithTotal(len(items)).Start()
	return &progressHandle{bar: bar}
}

// ProgressWithTotal cria uma barra de progresso com um total conhecido.
func (c *Console) ProgressWithTotal(total int) types.ProgressHandle {
	bar, _ := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle("Exporting reports").
		WithShowElapsedTime(true).
		WithShowCount(true).
		WithRemoveWhenDone(false).
		Start()
	return &progressHandle{bar: bar}
}

// Increment incrementa a barra de progresso.
func (h *progressHandle) Increment() {
	if h.bar != nil {
		h.bar.Increment()
	}
}

// Stop pára a barra de progresso.
func (h *progressHandle) Stop() {
	if h.bar != nil {
		h.bar.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayTrendBars exibe as entradas e saídas mensais como barras
// horizontais, com a variação mês a mês do gasto.
func (c *Console) DisplayTrendBars(monthlyFlows []types.MonthlyFlow) {
	// Encontra o valor máximo para escala
	maxFlow := 0.0
	for _, flow := range monthlyFlows {
		if flow.Inflow > maxFlow {
			maxFlow = flow.Inflow
		}
		if flow.Outflow > maxFlow {
			maxFlow = flow.Outflow
		}
	}

	if maxFlow == 0 {
		pterm.Warning.Println("All monthly flows are R$ 0,00 for this period")
		return
	}

	tableData := pterm.TableData{
		{"Month", "Inflow", "", "Outflow", "", "MoM Change"},
	}

	var prevOutflow *float64

	for _, mf := range monthlyFlows {
		inflowBar := strings.Repeat("█", int((mf.Inflow/maxFlow)*30))
		outflowBar := strings.Repeat("█", int((mf.Outflow/maxFlow)*30))

		change := ""
		outflowColor := pterm.FgBlue.Sprint(outflowBar)

		if prevOutflow != nil {
			// Variação percentual do gasto mês a mês
			if *prevOutflow < 0.01 {
				if mf.Outflow < 0.01 {
					change = pterm.FgYellow.Sprint("0%")
					outflowColor = pterm.FgYellow.Sprint(outflowBar)
				} else {
					change = pterm.FgRed.Sprint("N/A")
					outflowColor = pterm.FgRed.Sprint(outflowBar)
				}
			} else {
				changePercent := ((mf.Outflow - *prevOutflow) / *prevOutflow) * 100.0

				if math.Abs(changePercent) < 0.01 {
					change = pterm.FgYellow.Sprintf("0%%")
					outflowColor = pterm.FgYellow.Sprint(outflowBar)
				} else if math.Abs(changePercent) > 999 {
					if changePercent > 0 {
						change = pterm.FgRed.Sprint(">+999%")
						outflowColor = pterm.FgRed.Sprint(outflowBar)
					} else {
						change = pterm.FgGreen.Sprint(">-999%")
						outflowColor = pterm.FgGreen.Sprint(outflowBar)
					}
				} else {
					if changePercent > 0 {
						change = pterm.FgRed.Sprintf("+%.2f%%", changePercent)
						outflowColor = pterm.FgRed.Sprint(outflowBar)
					} else {
						change = pterm.FgGreen.Sprintf("%.2f%%", changePercent)
						outflowColor = pterm.FgGreen.Sprint(outflowBar)
					}
				}
			}
		}

		tableData = append(tableData, []string{
			mf.Month,
			fmt.Sprintf("R$ %.2f", mf.Inflow),
			pterm.FgGreen.Sprint(inflowBar),
			fmt.Sprintf("R$ %.2f", mf.Outflow),
			outflowColor,
			change,
		})

		currentOutflow := mf.Outflow
		prevOutflow = &currentOutflow
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle("Monthly Flow Trend").WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}

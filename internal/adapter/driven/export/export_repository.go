package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/diillson/extrato-dashboard-go/internal/domain/entity"
	"github.com/diillson/extrato-dashboard-go/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

const dateLayout = "02/01/2006"

// ExportToCSV grava o conjunto normalizado de transações em CSV.
func (r *ExportRepositoryImpl) ExportToCSV(report *entity.AnalysisReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"Date", "Description", "Amount", "Operation Category",
		"Establishment Category", "Establishment", "Weekday", "Quarter",
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, t := range report.Dataset.Transactions {
		record := []string{
			t.Date.Format(dateLayout),
			t.Description,
			fmt.Sprintf("%.2f", t.Amount),
			t.OperationCategory,
			t.EstablishmentCategory,
			t.Establishment,
			t.Weekday,
			fmt.Sprintf("%d", t.Quarter),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

// ExportToJSON grava o relatório de análise completo em JSON.
func (r *ExportRepositoryImpl) ExportToJSON(report *entity.AnalysisReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToPDF gera um resumo executivo do relatório em PDF.
func (r *ExportRepositoryImpl) ExportToPDF(report *entity.AnalysisReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if content == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Bank Statement Analysis"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	period := fmt.Sprintf("  Period: %s to %s",
		report.Indicators.PeriodStart.Format(dateLayout),
		report.Indicators.PeriodEnd.Format(dateLayout))
	pdf.CellFormat(0, 8, tr(period), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	drawSection("Executive Summary", executiveSummaryText(report))
	drawSection("Spending by Category", categoryText(report.Views.OutflowByCategory))
	drawSection("Top Establishments", establishmentText(report.Views.OutflowByEstablishment, 10))
	drawSection("Recurring Expenses", establishmentText(report.Views.RecurringExpenses, 10))
	drawSection("Recommendations", recommendationText(report.Recommendations))

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToXLSX grava o resumo executivo, os dados processados e as
// principais visões agregadas num arquivo XLSX de várias planilhas.
func (r *ExportRepositoryImpl) ExportToXLSX(report *entity.AnalysisReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "Executive Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return "", fmt.Errorf("error naming summary sheet: %w", err)
	}

	ind := report.Indicators
	summaryRows := [][]interface{}{
		{"Indicator", "Value"},
		{"Total Inflow", ind.TotalInflow},
		{"Total Outflow", ind.TotalOutflow},
		{"Net Balance", ind.NetBalance},
		{"Savings Rate (%)", ind.SavingsRate},
		{"Avg Daily Spend", ind.AvgDailySpend},
		{"Avg Outflow Ticket", ind.AvgOutflowTicket},
		{"Total Transactions", ind.TotalTransactions},
		{"Distinct Establishments", ind.DistinctEstablishments},
	}
	if err := writeSheet(f, summarySheet, summaryRows); err != nil {
		return "", err
	}

	dataSheet := "Transactions"
	if _, err := f.NewSheet(dataSheet); err != nil {
		return "", fmt.Errorf("error creating transactions sheet: %w", err)
	}
	dataRows := [][]interface{}{
		{"Date", "Description", "Amount", "Operation Category", "Establishment Category", "Establishment"},
	}
	for _, t := range report.Dataset.Transactions {
		dataRows = append(dataRows, []interface{}{
			t.Date.Format(dateLayout), t.Description, t.Amount,
			t.OperationCategory, t.EstablishmentCategory, t.Establishment,
		})
	}
	if err := writeSheet(f, dataSheet, dataRows); err != nil {
		return "", err
	}

	categorySheet := "Spending by Category"
	if _, err := f.NewSheet(categorySheet); err != nil {
		return "", fmt.Errorf("error creating category sheet: %w", err)
	}
	categoryRows := [][]interface{}{
		{"Category", "Transactions", "Total", "Mean", "Std Dev", "Establishments", "Active Days"},
	}
	for _, c := range report.Views.OutflowByCategory {
		categoryRows = append(categoryRows, []interface{}{
			c.Category, c.Count, c.Total, c.Mean, c.StdDev, c.DistinctEstablishments, c.ActiveDays,
		})
	}
	if err := writeSheet(f, categorySheet, categoryRows); err != nil {
		return "", err
	}

	establishmentSheet := "Top Establishments"
	if _, err := f.NewSheet(establishmentSheet); err != nil {
		return "", fmt.Errorf("error creating establishment sheet: %w", err)
	}
	establishmentRows := [][]interface{}{
		{"Establishment", "Transactions", "Total", "Mean", "Largest", "Active Days", "Main Category"},
	}
	limit := 20
	for i, e := range report.Views.OutflowByEstablishment {
		if i >= limit {
			break
		}
		establishmentRows = append(establishmentRows, []interface{}{
			e.Establishment, e.Count, e.Total, e.Mean, e.Largest, e.ActiveDays, e.MainCategory,
		})
	}
	if err := writeSheet(f, establishmentSheet, establishmentRows); err != nil {
		return "", err
	}

	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func writeSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("error addressing cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("error writing row to sheet %q: %w", sheet, err)
		}
	}
	return nil
}

func executiveSummaryText(report *entity.AnalysisReport) string {
	ind := report.Indicators
	lines := []string{
		fmt.Sprintf("Total inflow: %.2f", ind.TotalInflow),
		fmt.Sprintf("Total outflow: %.2f", ind.TotalOutflow),
		fmt.Sprintf("Net balance: %.2f", ind.NetBalance),
		fmt.Sprintf("Savings rate: %.1f%%", ind.SavingsRate),
		fmt.Sprintf("Average daily spend: %.2f", ind.AvgDailySpend),
		fmt.Sprintf("Average outflow ticket: %.2f", ind.AvgOutflowTicket),
		fmt.Sprintf("Transactions: %d (%d in, %d out)", ind.TotalTransactions, ind.InflowTransactions, ind.OutflowTransactions),
		fmt.Sprintf("Distinct establishments: %d", ind.DistinctEstablishments),
		fmt.Sprintf("Dropped rows during normalization: %d", report.DroppedRows),
	}
	return strings.Join(lines, "\n")
}

func categoryText(categories []entity.CategorySummary) string {
	lines := []string{}
	for _, c := range categories {
		lines = append(lines, fmt.Sprintf("%s: %.2f (%d transactions)", c.Category, c.Total, c.Count))
	}
	return strings.Join(lines, "\n")
}

func establishmentText(establishments []entity.EstablishmentSummary, limit int) string {
	lines := []string{}
	for i, e := range establishments {
		if i >= limit {
			break
		}
		lines = append(lines, fmt.Sprintf("%s: %.2f across %d days (%s)", e.Establishment, e.Total, e.ActiveDays, e.MainCategory))
	}
	return strings.Join(lines, "\n")
}

func recommendationText(set entity.RecommendationSet) string {
	lines := []string{}
	for _, rec := range set.Urgent {
		lines = append(lines, fmt.Sprintf("[URGENT] %s: %s", rec.Title, rec.Description))
	}
	for _, rec := range set.Important {
		lines = append(lines, fmt.Sprintf("[IMPORTANT] %s: %s", rec.Title, rec.Description))
	}
	for _, rec := range set.Suggestions {
		lines = append(lines, fmt.Sprintf("[SUGGESTION] %s: %s", rec.Title, rec.Description))
	}
	lines = append(lines, fmt.Sprintf("Targets: savings rate %.1f%%, daily spend %.2f, ticket cap %.2f, monthly savings %.2f",
		set.Targets.SavingsRateGoal, set.Targets.DailySpendTarget, set.Targets.TicketCap, set.Targets.MonthlySavingsGoal))
	return strings.Join(lines, "\n")
}

func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

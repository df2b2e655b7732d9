package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pterm/pterm"

	"github.com/diillson/extrato-dashboard-go/internal/application/analysis"
	"github.com/diillson/extrato-dashboard-go/internal/domain/entity"
	"github.com/diillson/extrato-dashboard-go/internal/domain/repository"
	"github.com/diillson/extrato-dashboard-go/internal/shared/types"
)

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	statementRepo repository.StatementRepository
	exportRepo    repository.ExportRepository
	configRepo    repository.ConfigRepository
	console       types.ConsoleInterface
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	statementRepo repository.StatementRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		statementRepo: statementRepo,
		exportRepo:    exportRepo,
		configRepo:    configRepo,
		console:       console,
	}
}

// RunDashboard executa a funcionalidade principal do dashboard.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	report, err := uc.BuildReport(ctx, args)
	if err != nil {
		return err
	}

	uc.renderIndicators(report.Indicators)
	uc.renderCategories(report.Views.OutflowByCategory)
	uc.renderEstablishments("Top Establishments (outflow)", report.Views.OutflowByEstablishment, 10)
	uc.renderRecurring(report.Views.RecurringExpenses)

	if args.Trend {
		uc.renderTrend(report.Views)
	}
	if args.Anomalies {
		uc.renderAnomalies(report.Anomalies)
	}
	if args.Recommendations {
		uc.renderRecommendations(report.Recommendations)
	}

	// Exporta os relatórios do dashboard
	if args.ReportName != "" && len(args.ReportType) > 0 {
		uc.exportReport(report, args)
	}

	return nil
}

// BuildReport carrega o extrato, normaliza, filtra e calcula todas as
// visões analíticas. É a operação central por trás do dashboard e dos
// exports.
func (uc *DashboardUseCase) BuildReport(ctx context.Context, args *types.CLIArgs) (*entity.AnalysisReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	status := uc.console.Status("Loading statement...")

	rows, err := uc.statementRepo.LoadStatement(args.File, args.Sheet)
	if err != nil {
		status.Stop()
		if args.Sheet != "" {
			if sheets, listErr := uc.statementRepo.ListSheets(args.File); listErr == nil && len(sheets) > 0 {
				uc.console.LogInfo("Available sheets: %s", strings.Join(sheets, ", "))
			}
		}
		return nil, err
	}

	var overlay *types.RuleOverlay
	if args.RulesFile != "" {
		overlay, err = uc.configRepo.LoadRuleOverlay(args.RulesFile)
		if err != nil {
			status.Stop()
			return nil, fmt.Errorf("failed to load rule overlay: %w", err)
		}
	}

	status.Update("Normalizing transactions...")

	normalizer := analysis.NewNormalizer(analysis.NewClassifierWithOverlay(overlay))
	dataset, dropped, err := normalizer.Normalize(rows)
	if err != nil {
		status.Stop()
		return nil, err
	}
	if dropped > 0 {
		uc.console.LogWarning("Dropped %d row(s) with unparseable dates", dropped)
	}

	opts, err := uc.filterOptions(args)
	if err != nil {
		status.Stop()
		return nil, err
	}
	filtered := analysis.Filter(dataset, opts)

	status.Update("Computing indicators...")

	report := &entity.AnalysisReport{
		ID:              uuid.New().String(),
		GeneratedAt:     time.Now(),
		SourceFile:      args.File,
		DroppedRows:     dropped,
		Dataset:         filtered,
		Indicators:      analysis.ComputeIndicators(filtered),
		Views:           analysis.ComputeViews(filtered),
		Anomalies:       analysis.DetectAnomalies(filtered),
		Recommendations: entity.RecommendationSet{},
	}
	report.Recommendations = analysis.GenerateRecommendations(report.Indicators, report.Views)

	status.Stop()
	return report, nil
}

// filterOptions converte os argumentos da CLI em opções de filtragem.
func (uc *DashboardUseCase) filterOptions(args *types.CLIArgs) (analysis.FilterOptions, error) {
	opts := analysis.FilterOptions{
		Flow:       args.Filter,
		Categories: args.Categories,
	}
	if opts.Flow == "" {
		opts.Flow = analysis.FlowAll
	}
	switch opts.Flow {
	case analysis.FlowAll, analysis.FlowInflow, analysis.FlowOutflow:
	default:
		return opts, fmt.Errorf("invalid filter %q: must be one of all, inflow, outflow", opts.Flow)
	}

	if args.StartDate != "" {
		start, err := time.Parse(analysis.DateLayout, args.StartDate)
		if err != nil {
			return opts, fmt.Errorf("invalid start date %q: expected DD/MM/YYYY", args.StartDate)
		}
		opts.Start = &start
	}
	if args.EndDate != "" {
		end, err := time.Parse(analysis.DateLayout, args.EndDate)
		if err != nil {
			return opts, fmt.Errorf("invalid end date %q: expected DD/MM/YYYY", args.EndDate)
		}
		opts.End = &end
	}
	return opts, nil
}

func (uc *DashboardUseCase) renderIndicators(ind entity.IndicatorSet) {
	if ind.TotalTransactions == 0 {
		uc.console.LogWarning("No transactions match the current filters")
		return
	}

	table := uc.console.CreateTable()
	table.AddColumn("Period")
	table.AddColumn("Inflow")
	table.AddColumn("Outflow")
	table.AddColumn("Net Balance")
	table.AddColumn("Savings Rate")
	table.AddColumn("Daily Spend")
	table.AddColumn("Activity")

	periodText := pterm.FgMagenta.Sprintf("%s\nto %s\n(%d days, %d active)",
		ind.PeriodStart.Format(analysis.DateLayout),
		ind.PeriodEnd.Format(analysis.DateLayout),
		ind.PeriodDays, ind.ActiveDays)

	netText := pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprintf("R$ %.2f", ind.NetBalance)
	if ind.NetBalance < 0 {
		netText = pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprintf("R$ %.2f", ind.NetBalance)
	}

	savingsText := pterm.FgGreen.Sprintf("%.1f%%", ind.SavingsRate)
	if ind.SavingsRate < 0 {
		savingsText = pterm.FgRed.Sprintf("%.1f%%", ind.SavingsRate)
	} else if ind.SavingsRate < 10 {
		savingsText = pterm.FgYellow.Sprintf("%.1f%%", ind.SavingsRate)
	}

	table.AddRow(
		periodText,
		pterm.FgGreen.Sprintf("R$ %.2f", ind.TotalInflow),
		pterm.FgRed.Sprintf("R$ %.2f", math.Abs(ind.TotalOutflow)),
		netText,
		savingsText,
		fmt.Sprintf("R$ %.2f/day", ind.AvgDailySpend),
		fmt.Sprintf("%d transactions\n%d establishments", ind.TotalTransactions, ind.DistinctEstablishments),
	)

	uc.console.Print(table.Render())
}

func (uc *DashboardUseCase) renderCategories(categories []entity.CategorySummary) {
	if len(categories) == 0 {
		return
	}

	table := uc.console.CreateTable()
	table.AddColumn("Spending Category")
	table.AddColumn("Total")
	table.AddColumn("Transactions")
	table.AddColumn("Mean")
	table.AddColumn("Std Dev")
	table.AddColumn("Active Days")

	for _, c := range categories {
		table.AddRow(
			pterm.FgCyan.Sprintf("%s", c.Category),
			pterm.FgRed.Sprintf("R$ %.2f", c.Total),
			fmt.Sprintf("%d", c.Count),
			fmt.Sprintf("R$ %.2f", c.Mean),
			fmt.Sprintf("R$ %.2f", c.StdDev),
			fmt.Sprintf("%d", c.ActiveDays),
		)
	}

	uc.console.Print(table.Render())
}

func (uc *DashboardUseCase) renderEstablishments(title string, establishments []entity.EstablishmentSummary, limit int) {
	if len(establishments) == 0 {
		return
	}

	uc.console.Println(pterm.FgLightCyan.Sprintf("\n%s", title))

	table := uc.console.CreateTable()
	table.AddColumn("Establishment")
	table.AddColumn("Total")
	table.AddColumn("Transactions")
	table.AddColumn("Largest")
	table.AddColumn("Category")

	for i, e := range establishments {
		if i >= limit {
			break
		}
		table.AddRow(
			pterm.FgMagenta.Sprintf("%s", e.Establishment),
			pterm.FgRed.Sprintf("R$ %.2f", e.Total),
			fmt.Sprintf("%d", e.Count),
			fmt.Sprintf("R$ %.2f", e.Largest),
			e.MainCategory,
		)
	}

	uc.console.Print(table.Render())
}

func (uc *DashboardUseCase) renderRecurring(recurring []entity.EstablishmentSummary) {
	if len(recurring) == 0 {
		return
	}

	uc.console.Println(pterm.FgLightCyan.Sprint("\nRecurring Expenses"))

	table := uc.console.CreateTable()
	table.AddColumn("Establishment")
	table.AddColumn("Total")
	table.AddColumn("Active Days")
	table.AddColumn("Avg per Active Day")
	table.AddColumn("Category")

	limit := 10
	for i, e := range recurring {
		if i >= limit {
			break
		}
		table.AddRow(
			pterm.FgMagenta.Sprintf("%s", e.Establishment),
			pterm.FgRed.Sprintf("R$ %.2f", e.Total),
			fmt.Sprintf("%d", e.ActiveDays),
			fmt.Sprintf("R$ %.2f", e.AvgPerActiveDay),
			e.MainCategory,
		)
	}

	uc.console.Print(table.Render())
}

// renderTrend exibe o fluxo mensal como barras e o resumo de tendência
// do gasto diário.
func (uc *DashboardUseCase) renderTrend(views entity.AggregationViews) {
	flows := make([]types.MonthlyFlow, 0, len(views.ByMonth))
	for _, m := range views.ByMonth {
		flows = append(flows, types.MonthlyFlow{
			Month:   m.Month,
			Inflow:  m.Inflow,
			Outflow: math.Abs(m.Outflow),
		})
	}
	if len(flows) > 0 {
		uc.console.Println(pterm.FgLightCyan.Sprint("\nMonthly Flow"))
		uc.console.DisplayTrendBars(flows)
	}

	if views.Trend == nil {
		uc.console.LogInfo("Not enough active days for a spending trend")
		return
	}

	t := views.Trend
	directionText := pterm.FgGreen.Sprintf("%s", t.Direction)
	if t.Direction == "increasing" {
		directionText = pterm.FgRed.Sprintf("%s", t.Direction)
	}
	uc.console.Printf("Daily spending trend: %s (first half R$ %.2f/day, second half R$ %.2f/day, %+.1f%%)\n",
		directionText, t.FirstHalfMean, t.SecondHalfMean, t.ChangePercent)
}

func (uc *DashboardUseCase) renderAnomalies(anomalies entity.AnomalyReport) {
	uc.console.Println(pterm.FgLightCyan.Sprint("\nAnomalies"))

	if len(anomalies.Global.Transactions) == 0 && len(anomalies.CategoryOutliers) == 0 {
		uc.console.LogInfo("No outliers detected")
	}

	if len(anomalies.Global.Transactions) > 0 {
		table := uc.console.CreateTable()
		table.AddColumn("Date")
		table.AddColumn("Description")
		table.AddColumn("Amount")
		table.AddColumn("Category")

		for _, t := range anomalies.Global.Transactions {
			table.AddRow(
				t.Date.Format(analysis.DateLayout),
				t.Description,
				pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprintf("R$ %.2f", t.Amount),
				t.EstablishmentCategory,
			)
		}

		uc.console.Printf("Outside IQR bounds [%.2f, %.2f]:\n", anomalies.Global.LowerBound, anomalies.Global.UpperBound)
		uc.console.Print(table.Render())
	}

	for _, outlier := range anomalies.CategoryOutliers {
		uc.console.LogWarning("%s on %s: R$ %.2f is %.1f std devs from the %s mean of R$ %.2f",
			outlier.Transaction.Description,
			outlier.Transaction.Date.Format(analysis.DateLayout),
			outlier.Transaction.Amount,
			outlier.Deviations,
			outlier.Transaction.EstablishmentCategory,
			outlier.CategoryMean,
		)
	}

	if len(anomalies.SilentDays) > 0 {
		days := make([]string, 0, len(anomalies.SilentDays))
		for _, d := range anomalies.SilentDays {
			days = append(days, d.Format(analysis.DateLayout))
		}
		sort.Strings(days)
		uc.console.LogInfo("%d day(s) without any activity: %s", len(days), strings.Join(days, ", "))
	}
}

func (uc *DashboardUseCase) renderRecommendations(set entity.RecommendationSet) {
	uc.console.Println(pterm.FgLightCyan.Sprint("\nRecommendations"))

	for _, rec := range set.Urgent {
		uc.console.LogError("%s: %s — %s", rec.Title, rec.Description, rec.Action)
	}
	for _, rec := range set.Important {
		uc.console.LogWarning("%s: %s — %s", rec.Title, rec.Description, rec.Action)
	}
	for _, rec := range set.Suggestions {
		uc.console.LogInfo("%s: %s — %s", rec.Title, rec.Description, rec.Action)
	}

	uc.console.Printf("Targets: savings rate %.1f%%, daily spend R$ %.2f, ticket cap R$ %.2f, monthly savings R$ %.2f\n",
		set.Targets.SavingsRateGoal, set.Targets.DailySpendTarget, set.Targets.TicketCap, set.Targets.MonthlySavingsGoal)
}

// exportReport grava o relatório em cada formato solicitado.
func (uc *DashboardUseCase) exportReport(report *entity.AnalysisReport, args *types.CLIArgs) {
	progress := uc.console.ProgressWithTotal(len(args.ReportType))
	defer progress.Stop()

	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportToCSV(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		case "xlsx":
			xlsxPath, err := uc.exportRepo.ExportToXLSX(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to XLSX: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to XLSX: %s", xlsxPath)
			}
		default:
			uc.console.LogWarning("Unknown report type '%s' (expected csv, json, pdf or xlsx)", reportType)
		}
		progress.Increment()
	}
}

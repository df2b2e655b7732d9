package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/diillson/extrato-dashboard-go/internal/adapter/driven/statement"
	"github.com/diillson/extrato-dashboard-go/internal/application/usecase"
	"github.com/diillson/extrato-dashboard-go/internal/domain/repository"
	"github.com/diillson/extrato-dashboard-go/internal/shared/types"
	"github.com/diillson/extrato-dashboard-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	configRepo       repository.ConfigRepository
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "extrato-dashboard",
		Short:   "Bank Statement Analysis Dashboard CLI",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Extrato Dashboard version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("file", "f", "", "Path to the bank statement file (CSV or XLSX)")
	rootCmd.PersistentFlags().String("sheet", "", "Worksheet name for XLSX statements (default: first sheet)")
	rootCmd.PersistentFlags().String("filter", "all", "Flow filter: all, inflow or outflow")
	rootCmd.PersistentFlags().String("start", "", "Start date filter, DD/MM/YYYY (inclusive)")
	rootCmd.PersistentFlags().String("end", "", "End date filter, DD/MM/YYYY (inclusive)")
	rootCmd.PersistentFlags().StringSlice("categories", nil, "Operation categories to keep (comma-separated)")
	rootCmd.PersistentFlags().String("rules", "", "Path to a YAML file with extra classification rules")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf, xlsx")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().Bool("trend", false, "Display the monthly flow bars and the daily spending trend")
	rootCmd.PersistentFlags().Bool("anomalies", false, "Display outlier transactions and days without activity")
	rootCmd.PersistentFlags().Bool("recommendations", false, "Display spending recommendations and targets")

	rootCmd.AddCommand(newGenCommand())

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	file, _ := flags.GetString("file")
	sheet, _ := flags.GetString("sheet")
	filter, _ := flags.GetString("filter")
	startDate, _ := flags.GetString("start")
	endDate, _ := flags.GetString("end")
	categories, _ := flags.GetStringSlice("categories")
	rulesFile, _ := flags.GetString("rules")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	trend, _ := flags.GetBool("trend")
	anomalies, _ := flags.GetBool("anomalies")
	recommendations, _ := flags.GetBool("recommendations")

	args := &types.CLIArgs{
		ConfigFile:      configFile,
		File:            file,
		Sheet:           sheet,
		Filter:          filter,
		StartDate:       startDate,
		EndDate:         endDate,
		Categories:      categories,
		RulesFile:       rulesFile,
		ReportName:      reportName,
		ReportType:      reportType,
		Dir:             dir,
		Trend:           trend,
		Anomalies:       anomalies,
		Recommendations: recommendations,
	}

	// Mescla o arquivo de configuração: flags explícitas ganham do arquivo.
	if configFile != "" {
		config, err := app.configRepo.LoadConfigFile(configFile)
		if err != nil {
			return nil, err
		}
		app.mergeConfig(args, config, flags.Changed)
	}

	if args.Dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		args.Dir = cwd
	} else {
		absDir, err := filepath.Abs(args.Dir)
		if err != nil {
			return nil, err
		}
		args.Dir = absDir
	}

	if args.File == "" {
		return nil, fmt.Errorf("no statement file: use --file or set 'file' in the configuration")
	}

	return args, nil
}

// mergeConfig aplica valores do arquivo de configuração nos argumentos,
// sem sobrescrever flags passadas explicitamente na linha de comando.
func (app *CLIApp) mergeConfig(args *types.CLIArgs, config *types.Config, changed func(string) bool) {
	if !changed("file") && config.File != "" {
		args.File = config.File
	}
	if !changed("sheet") && config.Sheet != "" {
		args.Sheet = config.Sheet
	}
	if !changed("filter") && config.Filter != "" {
		args.Filter = config.Filter
	}
	if !changed("start") && config.StartDate != "" {
		args.StartDate = config.StartDate
	}
	if !changed("end") && config.EndDate != "" {
		args.EndDate = config.EndDate
	}
	if !changed("categories") && len(config.Categories) > 0 {
		args.Categories = config.Categories
	}
	if !changed("rules") && config.RulesFile != "" {
		args.RulesFile = config.RulesFile
	}
	if !changed("report-name") && config.ReportName != "" {
		args.ReportName = config.ReportName
	}
	if !changed("report-type") && len(config.ReportType) > 0 {
		args.ReportType = config.ReportType
	}
	if !changed("dir") && config.Dir != "" {
		args.Dir = config.Dir
	}
	if !changed("trend") && config.Trend {
		args.Trend = true
	}
	if !changed("anomalies") && config.Anomalies {
		args.Anomalies = true
	}
	if !changed("recommendations") && config.Recommendations {
		args.Recommendations = true
	}
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)

	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := context.Background()
	return app.dashboardUseCase.RunDashboard(ctx, cliArgs)
}

// newGenCommand cria o subcomando que gera um extrato fictício para testes.
func newGenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a synthetic bank statement CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, _ := cmd.Flags().GetInt("rows")
			startStr, _ := cmd.Flags().GetString("start")
			endStr, _ := cmd.Flags().GetString("end")
			seed, _ := cmd.Flags().GetInt64("seed")
			output, _ := cmd.Flags().GetString("output")

			start, err := time.Parse("02/01/2006", startStr)
			if err != nil {
				return fmt.Errorf("invalid start date %q: expected DD/MM/YYYY", startStr)
			}
			end, err := time.Parse("02/01/2006", endStr)
			if err != nil {
				return fmt.Errorf("invalid end date %q: expected DD/MM/YYYY", endStr)
			}

			sample := statement.GenerateSample(statement.SampleSpec{
				Rows:  rows,
				Start: start,
				End:   end,
				Seed:  seed,
			})
			if err := statement.WriteSampleCSV(sample, output); err != nil {
				return err
			}

			fmt.Printf("Generated %d rows in %s\n", len(sample), output)
			return nil
		},
	}

	cmd.Flags().Int("rows", 200, "Number of transactions to generate")
	cmd.Flags().String("start", "01/01/2025", "First possible transaction date, DD/MM/YYYY")
	cmd.Flags().String("end", "30/06/2025", "Last possible transaction date, DD/MM/YYYY")
	cmd.Flags().Int64("seed", 42, "Random seed for reproducible statements")
	cmd.Flags().String("output", "extrato_sample.csv", "Output CSV path")

	return cmd
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}

// SetConfigRepository define o repositório usado para carregar arquivos
// de configuração.
func (app *CLIApp) SetConfigRepository(configRepo repository.ConfigRepository) {
	app.configRepo = configRepo
}

package main

import (
	"fmt"
	"os"

	"github.com/diillson/extrato-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/extrato-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/extrato-dashboard-go/internal/adapter/driven/statement"
	"github.com/diillson/extrato-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/extrato-dashboard-go/internal/application/usecase"
	"github.com/diillson/extrato-dashboard-go/pkg/console"
	"github.com/diillson/extrato-dashboard-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	statementRepo := statement.NewStatementRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	dashboardUseCase := usecase.NewDashboardUseCase(
		statementRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	app.SetDashboardUseCase(dashboardUseCase)
	app.SetConfigRepository(configRepo)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

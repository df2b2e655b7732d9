package repository

import (
	"github.com/diillson/extrato-dashboard-go/internal/domain/entity"
)

// ExportRepository defines the interface for serializing an analysis report.
type ExportRepository interface {
	ExportToCSV(report *entity.AnalysisReport, filename string, outputDir string) (string, error)
	ExportToJSON(report *entity.AnalysisReport, filename string, outputDir string) (string, error)
	ExportToPDF(report *entity.AnalysisReport, filename string, outputDir string) (string, error)
	ExportToXLSX(report *entity.AnalysisReport, filename string, outputDir string) (string, error)
}

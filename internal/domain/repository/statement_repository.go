package repository

import (
	"github.com/diillson/extrato-dashboard-go/internal/domain/entity"
)

// StatementRepository defines the interface for reading raw statement files.
// A resolução de nomes de coluna acontece aqui, antes do núcleo de análise.
type StatementRepository interface {
	LoadStatement(path string, sheet string) ([]entity.RawRow, error)
	ListSheets(path string) ([]string, error)
}

package repository

import (
	"github.com/diillson/extrato-dashboard-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	LoadRuleOverlay(filePath string) (*types.RuleOverlay, error)
}

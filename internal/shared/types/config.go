package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	File            string   `json:"file" yaml:"file" toml:"file"`
	Sheet           string   `json:"sheet" yaml:"sheet" toml:"sheet"`
	Filter          string   `json:"filter" yaml:"filter" toml:"filter"`
	StartDate       string   `json:"start_date" yaml:"start_date" toml:"start_date"`
	EndDate         string   `json:"end_date" yaml:"end_date" toml:"end_date"`
	Categories      []string `json:"categories" yaml:"categories" toml:"categories"`
	RulesFile       string   `json:"rules_file" yaml:"rules_file" toml:"rules_file"`
	ReportName      string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType      []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir             string   `json:"dir" yaml:"dir" toml:"dir"`
	Trend           bool     `json:"trend" yaml:"trend" toml:"trend"`
	Anomalies       bool     `json:"anomalies" yaml:"anomalies" toml:"anomalies"`
	Recommendations bool     `json:"recommendations" yaml:"recommendations" toml:"recommendations"`
}

// RuleOverlay é um conjunto de regras extras de classificação carregado de um
// arquivo YAML. As regras são anexadas após as tabelas embutidas, nunca
// reordenam a precedência embutida.
type RuleOverlay struct {
	Establishments []KeywordRule `json:"establishments" yaml:"establishments"`
	Individuals    []string      `json:"individuals" yaml:"individuals"`
}

// KeywordRule associa uma categoria a uma lista OR de palavras-chave.
type KeywordRule struct {
	Category string   `json:"category" yaml:"category"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

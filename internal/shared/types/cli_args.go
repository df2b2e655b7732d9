package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile      string
	File            string
	Sheet           string
	Filter          string
	StartDate       string
	EndDate         string
	Categories      []string
	RulesFile       string
	ReportName      string
	ReportType      []string
	Dir             string
	Trend           bool
	Anomalies       bool
	Recommendations bool
}

package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	Sources    []string
	AWSProfile string
	Name       string
	StartDate  string
	EndDate    string
	Views      []string
	SortBy     string
	PageSize   int
	Page       int
	ReportName string
	ReportType []string
	Dir        string
	Strict     bool

	// Changed lista as flags definidas explicitamente na linha de comando;
	// elas têm precedência sobre o arquivo de configuração.
	Changed map[string]bool
}

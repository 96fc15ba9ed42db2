package types

// ValidViews lista as visões que o dashboard sabe renderizar.
var ValidViews = []string{"monthly", "total", "transactions", "trend"}

// DefaultViews são as visões exibidas quando nenhuma é informada.
var DefaultViews = []string{"monthly", "total", "transactions"}

// ValidReportTypes lista os formatos de exportação suportados.
var ValidReportTypes = []string{"csv", "json", "pdf"}

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Sources    []string  `json:"sources" yaml:"sources" toml:"sources"`
	AWSProfile string    `json:"aws_profile" yaml:"aws_profile" toml:"aws_profile"`
	Name       string    `json:"name" yaml:"name" toml:"name"`
	StartDate  string    `json:"start_date" yaml:"start_date" toml:"start_date"`
	EndDate    string    `json:"end_date" yaml:"end_date" toml:"end_date"`
	Views      []string  `json:"views" yaml:"views" toml:"views"`
	SortBy     string    `json:"sort_by" yaml:"sort_by" toml:"sort_by"`
	PageSize   int       `json:"page_size" yaml:"page_size" toml:"page_size"`
	ReportName string    `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string  `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string    `json:"dir" yaml:"dir" toml:"dir"`
	Strict     bool      `json:"strict" yaml:"strict" toml:"strict"`
	Log        LogConfig `json:"log" yaml:"log" toml:"log"`
}

// LogConfig controla o logger construído na inicialização do processo.
type LogConfig struct {
	Level  string `json:"level" yaml:"level" toml:"level"`
	Format string `json:"format" yaml:"format" toml:"format"`
	Quiet  bool   `json:"quiet" yaml:"quiet" toml:"quiet"`
}

// MergeInto copia os valores do arquivo para args, exceto quando a flag
// correspondente foi passada explicitamente.
func (c *Config) MergeInto(args *CLIArgs) {
	if c == nil || args == nil {
		return
	}
	set := func(flag string) bool { return args.Changed[flag] }

	if len(c.Sources) > 0 && !set("source") {
		args.Sources = c.Sources
	}
	if c.AWSProfile != "" && !set("aws-profile") {
		args.AWSProfile = c.AWSProfile
	}
	if c.Name != "" && !set("name") {
		args.Name = c.Name
	}
	if c.StartDate != "" && !set("start-date") {
		args.StartDate = c.StartDate
	}
	if c.EndDate != "" && !set("end-date") {
		args.EndDate = c.EndDate
	}
	if len(c.Views) > 0 && !set("view") {
		args.Views = c.Views
	}
	if c.SortBy != "" && !set("sort") {
		args.SortBy = c.SortBy
	}
	if c.PageSize > 0 && !set("page-size") {
		args.PageSize = c.PageSize
	}
	if c.ReportName != "" && !set("report-name") {
		args.ReportName = c.ReportName
	}
	if len(c.ReportType) > 0 && !set("report-type") {
		args.ReportType = c.ReportType
	}
	if c.Dir != "" && !set("dir") {
		args.Dir = c.Dir
	}
	if c.Strict && !set("strict") {
		args.Strict = true
	}
}

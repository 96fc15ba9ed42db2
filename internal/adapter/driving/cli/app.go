package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/diillson/rewards-dashboard-go/internal/application/usecase"
	"github.com/diillson/rewards-dashboard-go/internal/domain/repository"
	"github.com/diillson/rewards-dashboard-go/internal/shared/types"
	"github.com/diillson/rewards-dashboard-go/pkg/logger"
	"github.com/diillson/rewards-dashboard-go/pkg/version"
	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// UseCaseFactory monta o caso de uso depois que o logger e os argumentos
// finais são conhecidos.
type UseCaseFactory func(log *logger.Logger, args *types.CLIArgs) *usecase.RewardsUseCase

// StoreOpener abre o banco local usado pelo comando import.
type StoreOpener func(path string) (repository.TransactionStore, error)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd    *cobra.Command
	version    string
	configRepo repository.ConfigRepository
	newUseCase UseCaseFactory
	openStore  StoreOpener

	args  *types.CLIArgs
	log   *logger.Logger
	quiet bool
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
		log:     logger.Nop(),
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:               "rewards-dashboard",
		Short:             "Customer Rewards Dashboard CLI",
		Long:              "Calculates customer reward points from purchase transactions and renders monthly, total and per-transaction reports.",
		Version:           formattedVersion,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.prepare,
		RunE:              app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Rewards Dashboard version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", envString("REWARDS_CONFIG_FILE", ""), "Path to a TOML, YAML, or JSON configuration file")
	flags.StringSliceP("source", "s", envSlice("REWARDS_SOURCE", nil), "Transaction sources: file path (.json/.yaml/.csv), http(s)://, s3://bucket/key, sqlite://path, postgres://dsn or sample:")
	flags.StringP("aws-profile", "p", envString("REWARDS_AWS_PROFILE", ""), "AWS shared config profile used for s3:// sources")
	flags.String("name", "", "Filter by customer name (case-insensitive substring)")
	flags.String("start-date", "", "Only include transactions on or after this date (YYYY-MM-DD)")
	flags.String("end-date", "", "Only include transactions on or before this date (YYYY-MM-DD)")
	flags.StringSliceP("view", "v", envSlice("REWARDS_VIEWS", nil), "Views to display: monthly, total, transactions, trend (default: monthly,total,transactions)")
	flags.String("sort", "", "Sort column, optionally with direction, e.g. rewardPoints:desc")
	flags.Int("page-size", envInt("REWARDS_PAGE_SIZE", types.DefaultPageSize), fmt.Sprintf("Rows per page: one of %v", types.PageSizeOptions))
	flags.Int("page", 1, "Page to display (1-based)")
	flags.StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	flags.StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf")
	flags.StringP("dir", "d", envString("REWARDS_REPORT_DIR", ""), "Directory to save the report files (default: current directory)")
	flags.Bool("strict", envBool("REWARDS_STRICT", false), "Fail when transactions have unparseable dates or invalid amounts")
	flags.String("log-level", envString("REWARDS_LOG_LEVEL", "info"), "Log level: trace, debug, info, warn, error")
	flags.String("log-format", envString("REWARDS_LOG_FORMAT", "text"), "Log format: text or json")
	flags.BoolP("quiet", "q", envBool("REWARDS_QUIET", false), "Disable logs, the banner and the update check")

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Load transactions from the configured sources into a local SQLite database",
		RunE:  app.runImport,
	}
	importCmd.Flags().String("db", envString("REWARDS_DB", "rewards.db"), "SQLite database file to write to")
	rootCmd.AddCommand(importCmd)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// ExecuteContext runs the CLI application with the given context.
func (app *CLIApp) ExecuteContext(ctx context.Context) error {
	return app.rootCmd.ExecuteContext(ctx)
}

// SetConfigRepository define o repositório usado para ler --config-file.
func (app *CLIApp) SetConfigRepository(repo repository.ConfigRepository) {
	app.configRepo = repo
}

// SetUseCaseFactory define como o caso de uso é montado a cada execução.
func (app *CLIApp) SetUseCaseFactory(factory UseCaseFactory) {
	app.newUseCase = factory
}

// SetStoreOpener define como o comando import abre o banco local.
func (app *CLIApp) SetStoreOpener(opener StoreOpener) {
	app.openStore = opener
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	flags := cmd.Flags()

	configFile, _ := flags.GetString("config-file")
	sources, _ := flags.GetStringSlice("source")
	awsProfile, _ := flags.GetString("aws-profile")
	name, _ := flags.GetString("name")
	startDate, _ := flags.GetString("start-date")
	endDate, _ := flags.GetString("end-date")
	views, _ := flags.GetStringSlice("view")
	sortBy, _ := flags.GetString("sort")
	pageSize, _ := flags.GetInt("page-size")
	page, _ := flags.GetInt("page")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	strict, _ := flags.GetBool("strict")

	changed := make(map[string]bool)
	for _, f := range []string{
		"source", "aws-profile", "name", "start-date", "end-date", "view", "sort",
		"page-size", "report-name", "report-type", "dir", "strict",
	} {
		if flags.Changed(f) {
			changed[f] = true
		}
	}

	return &types.CLIArgs{
		ConfigFile: configFile,
		Sources:    sources,
		AWSProfile: awsProfile,
		Name:       name,
		StartDate:  startDate,
		EndDate:    endDate,
		Views:      views,
		SortBy:     sortBy,
		PageSize:   pageSize,
		Page:       page,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
		Strict:     strict,
		Changed:    changed,
	}, nil
}

// logConfig resolve a configuração do logger: flags explícitas, depois a
// seção [log] do arquivo, depois os padrões.
func logConfig(cmd *cobra.Command, fileCfg *types.Config) logger.Config {
	flags := cmd.Flags()
	cfg := logger.DefaultConfig()

	cfg.Level, _ = flags.GetString("log-level")
	cfg.Format, _ = flags.GetString("log-format")
	quiet, _ := flags.GetBool("quiet")

	if fileCfg != nil {
		if fileCfg.Log.Level != "" && !flags.Changed("log-level") {
			cfg.Level = fileCfg.Log.Level
		}
		if fileCfg.Log.Format != "" && !flags.Changed("log-format") {
			cfg.Format = fileCfg.Log.Format
		}
		if fileCfg.Log.Quiet && !flags.Changed("quiet") {
			quiet = true
		}
	}

	cfg.Enabled = !quiet
	return cfg
}

// prepare lê os argumentos, aplica o arquivo de configuração e cria o logger
// da execução.
func (app *CLIApp) prepare(cmd *cobra.Command, _ []string) error {
	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	var fileCfg *types.Config
	if app.configRepo != nil {
		fileCfg, err = usecase.ApplyConfigFile(app.configRepo, cliArgs)
		if err != nil {
			return err
		}
	}

	if cliArgs.Dir != "" {
		absDir, err := filepath.Abs(cliArgs.Dir)
		if err != nil {
			return err
		}
		cliArgs.Dir = absDir
	}

	logCfg := logConfig(cmd, fileCfg)
	app.quiet = !logCfg.Enabled
	app.log = logger.New(logCfg).With("run_id", uuid.NewString())
	app.args = cliArgs

	app.log.Debug("arguments resolved",
		"config_file", cliArgs.ConfigFile,
		"sources", cliArgs.Sources,
		"views", cliArgs.Views,
	)
	return nil
}

func (app *CLIApp) useCase() (*usecase.RewardsUseCase, error) {
	if app.newUseCase == nil {
		return nil, fmt.Errorf("use case factory not configured")
	}
	return app.newUseCase(app.log, app.args), nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	if !app.quiet {
		displayWelcomeBanner()
		go version.CheckLatestVersion(app.version)
	}

	uc, err := app.useCase()
	if err != nil {
		return err
	}

	err = uc.RunDashboard(cmd.Context(), app.args)
	if usecase.IsUsageError(err) {
		_ = cmd.Usage()
	}
	return err
}

// runImport grava as transações das fontes num banco SQLite local.
func (app *CLIApp) runImport(cmd *cobra.Command, _ []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	if app.openStore == nil {
		return fmt.Errorf("store opener not configured")
	}

	uc, err := app.useCase()
	if err != nil {
		return err
	}

	store, err := app.openStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := uc.ImportTransactions(cmd.Context(), app.args, store)
	if err != nil {
		if usecase.IsUsageError(err) {
			_ = cmd.Usage()
		}
		return err
	}

	absPath, _ := filepath.Abs(dbPath)
	pterm.Success.Printfln("Imported %d transactions into %s (use --source sqlite://%s)", n, absPath, absPath)
	return nil
}

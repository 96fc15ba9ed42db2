package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/diillson/rewards-dashboard-go/internal/domain/entity"
	"github.com/diillson/rewards-dashboard-go/internal/domain/repository"
	"github.com/diillson/rewards-dashboard-go/internal/domain/rewards"
	"github.com/diillson/rewards-dashboard-go/internal/shared/types"
	"github.com/diillson/rewards-dashboard-go/pkg/logger"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentSources = 4

// rulesLines é o texto do painel "Rewards Program Rules".
var rulesLines = []string{
	"• 2 points for every dollar spent over $100",
	"• 1 point for every dollar spent between $50-$100",
	"• No points for purchases under $50",
	"• Decimal amounts are handled using floor function",
}

// RewardsUseCase orquestra a carga das transações, o cálculo dos pontos,
// a exibição das tabelas e a exportação.
type RewardsUseCase struct {
	sourceRepo repository.TransactionRepository
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
	log        *logger.Logger
}

// NewRewardsUseCase creates a new rewards use case.
func NewRewardsUseCase(
	sourceRepo repository.TransactionRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
	log *logger.Logger,
) *RewardsUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &RewardsUseCase{
		sourceRepo: sourceRepo,
		exportRepo: exportRepo,
		console:    console,
		log:        log,
	}
}

// ApplyConfigFile carrega o arquivo de configuração indicado em args (se houver)
// e mescla seus valores sob as flags passadas explicitamente.
func ApplyConfigFile(configRepo repository.ConfigRepository, args *types.CLIArgs) (*types.Config, error) {
	if args.ConfigFile == "" {
		return nil, nil
	}
	cfg, err := configRepo.LoadConfigFile(args.ConfigFile)
	if err != nil {
		return nil, err
	}
	cfg.MergeInto(args)
	return cfg, nil
}

// LoadTransactions busca todas as fontes em paralelo e concatena o resultado
// na ordem em que foram informadas. O primeiro erro cancela as demais buscas.
func (uc *RewardsUseCase) LoadTransactions(ctx context.Context, locations []string) ([]entity.Transaction, error) {
	if len(locations) == 0 {
		return nil, types.ErrNoSources
	}

	progress := uc.console.ProgressWithTotal("Loading transactions", len(locations))
	defer progress.Stop()

	var mu sync.Mutex
	results := make([][]entity.Transaction, len(locations))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSources)

	for i, loc := range locations {
		i, loc := i, loc
		g.Go(func() error {
			txns, err := uc.sourceRepo.FetchTransactions(gctx, loc)
			if err != nil {
				return fmt.Errorf("source %q: %w", loc, err)
			}
			results[i] = txns

			mu.Lock()
			progress.Increment()
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []entity.Transaction
	for _, txns := range results {
		all = append(all, txns...)
	}
	return all, nil
}

// checkDataQuality avisa sobre cada transação com data ou valor inválido.
// Em modo estrito, qualquer problema interrompe a execução.
func (uc *RewardsUseCase) checkDataQuality(txns []entity.Transaction, strict bool) error {
	err := rewards.ValidateTransactions(txns)
	if err == nil {
		return nil
	}

	issues := rewards.Issues(err)
	for _, issue := range issues {
		uc.log.Warn("data quality issue",
			"transaction_id", issue.TransactionID,
			"field", issue.Field,
			"value", issue.Value,
		)
		if !strict {
			uc.console.LogWarning("Transaction %d has an invalid %s (%q); it will be scored as degraded data",
				issue.TransactionID, issue.Field, issue.Value)
		}
	}

	if strict {
		return fmt.Errorf("%w: %d issue(s): %w", types.ErrDataQuality, len(issues), err)
	}
	return nil
}

// viewOptions guarda as escolhas de exibição já validadas.
type viewOptions struct {
	views    []string
	sort     types.SortSpec
	page     int
	pageSize int
}

func newViewOptions(args *types.CLIArgs) (viewOptions, error) {
	opts := viewOptions{
		views:    types.DefaultViews,
		page:     max(args.Page, 1),
		pageSize: args.PageSize,
	}

	if len(args.Views) > 0 {
		opts.views = nil
		for _, v := range args.Views {
			v = strings.ToLower(strings.TrimSpace(v))
			if !slices.Contains(types.ValidViews, v) {
				return viewOptions{}, fmt.Errorf("%w %q, must be one of: %s", types.ErrInvalidView, v, strings.Join(types.ValidViews, ", "))
			}
			if !slices.Contains(opts.views, v) {
				opts.views = append(opts.views, v)
			}
		}
	}

	if opts.pageSize == 0 {
		opts.pageSize = types.DefaultPageSize
	}
	if !types.ValidPageSize(opts.pageSize) {
		return viewOptions{}, fmt.Errorf("page size must be one of %v, got %d", types.PageSizeOptions, opts.pageSize)
	}

	spec, err := types.ParseSortSpec(args.SortBy)
	if err != nil {
		return viewOptions{}, err
	}
	if spec.Key != "" && !sortKeyKnown(opts.views, spec.Key) {
		return viewOptions{}, fmt.Errorf("%w: %q is not a column of the selected views", types.ErrInvalidSortKey, spec.Key)
	}
	opts.sort = spec

	return opts, nil
}

func sortKeyKnown(views []string, key string) bool {
	for _, v := range views {
		switch v {
		case "monthly":
			if types.HasColumn(monthlyColumns(), key) {
				return true
			}
		case "total":
			if types.HasColumn(totalColumns(), key) {
				return true
			}
		case "transactions":
			if types.HasColumn(transactionColumns(), key) {
				return true
			}
		}
	}
	return false
}

// RunDashboard executa o fluxo completo do dashboard de recompensas.
func (uc *RewardsUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	opts, err := newViewOptions(args)
	if err != nil {
		return err
	}

	uc.log.Info("dashboard started", "sources", len(args.Sources), "views", strings.Join(opts.views, ","))

	txns, err := uc.LoadTransactions(ctx, args.Sources)
	if err != nil {
		return err
	}
	if len(txns) == 0 {
		return types.ErrNoTransactions
	}

	if err := uc.checkDataQuality(txns, args.Strict); err != nil {
		return err
	}

	status := uc.console.Status("Calculating reward points...")
	customers := rewards.GetUniqueCustomers(txns)
	filter := entity.ReportFilter{Name: args.Name, StartDate: args.StartDate, EndDate: args.EndDate}
	report := rewards.BuildReport(txns, customers, filter)
	status.Stop()

	uc.log.Info("report built",
		"transactions", len(txns),
		"customers", len(customers),
		"months", len(report.Months),
	)

	uc.console.DisplayPanel("Rewards Program Rules", rulesLines)

	for _, view := range opts.views {
		switch view {
		case "monthly":
			renderTable(uc.console, "User Monthly Rewards", report.Monthly, monthlyColumns(), sortFor(monthlyColumns(), opts.sort, defaultMonthlySort), opts)
		case "total":
			renderTable(uc.console, "Total Rewards", report.Total, totalColumns(), sortFor(totalColumns(), opts.sort, defaultTotalSort), opts)
		case "transactions":
			renderTable(uc.console, "Transactions", report.Transactions, transactionColumns(), sortFor(transactionColumns(), opts.sort, defaultTransactionSort), opts)
		case "trend":
			uc.displayTrend(report)
		}
	}

	uc.exportReport(report, args)
	return nil
}

// sortFor usa a ordenação pedida quando a coluna existe nesta tabela.
func sortFor[T any](columns []types.Column[T], requested, fallback types.SortSpec) types.SortSpec {
	if requested.Key != "" && types.HasColumn(columns, requested.Key) {
		return requested
	}
	return fallback
}

func renderTable[T any](console types.ConsoleInterface, title string, rows []T, columns []types.Column[T], spec types.SortSpec, opts viewOptions) {
	sorted, err := types.SortRows(rows, columns, spec)
	if err != nil {
		// As chaves padrão sempre existem; só chega aqui com colunas inconsistentes.
		sorted = rows
	}

	pages := types.PageCount(len(sorted), opts.pageSize)
	page := min(opts.page, pages)

	table := console.CreateTable(title)
	visible := types.VisibleColumns(columns)
	for _, c := range visible {
		table.AddColumn(c.Header)
	}
	for _, row := range types.Paginate(sorted, page, opts.pageSize) {
		cells := make([]interface{}, len(visible))
		for i, c := range visible {
			cells[i] = c.Cell(row)
		}
		table.AddRow(cells...)
	}

	if len(sorted) == 0 {
		table.SetFooter("No data available")
	} else {
		table.SetFooter(fmt.Sprintf("Page %d of %d | %d rows | sorted by %s %s", page, pages, len(sorted), spec.Key, spec.Direction))
	}

	console.Print(table.Render())
}

// displayTrend mostra o total de pontos de todos os clientes exibidos por mês.
func (uc *RewardsUseCase) displayTrend(report entity.RewardsReport) {
	totals := rewards.PointsByMonth(report.Monthly, report.Months)
	points := make([]types.MonthlyPoints, 0, len(totals))
	for i, m := range report.Months {
		name, err := rewards.MonthName(m.Month)
		if err != nil {
			continue
		}
		points = append(points, types.MonthlyPoints{
			Month:  fmt.Sprintf("%s %d", name, m.Year),
			Points: totals[i],
		})
	}
	uc.console.DisplayTrendBars(points)
}

func (uc *RewardsUseCase) exportReport(report entity.RewardsReport, args *types.CLIArgs) {
	if args.ReportName == "" || len(args.ReportType) == 0 {
		return
	}

	for _, reportType := range args.ReportType {
		switch strings.ToLower(reportType) {
		case "csv":
			csvPaths, err := uc.exportRepo.ExportToCSV(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
				uc.log.Error("export failed", "type", "csv", "error", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", strings.Join(csvPaths, ", "))
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
				uc.log.Error("export failed", "type", "json", "error", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
				uc.log.Error("export failed", "type", "pdf", "error", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type %q ignored", reportType)
		}
	}
}

// ImportTransactions carrega as fontes e grava as transações no store.
// Em modo estrito, dados inválidos impedem a gravação.
func (uc *RewardsUseCase) ImportTransactions(ctx context.Context, args *types.CLIArgs, store repository.TransactionStore) (int, error) {
	txns, err := uc.LoadTransactions(ctx, args.Sources)
	if err != nil {
		return 0, err
	}
	if len(txns) == 0 {
		return 0, types.ErrNoTransactions
	}

	if err := uc.checkDataQuality(txns, args.Strict); err != nil {
		return 0, err
	}

	n, err := store.Upsert(ctx, txns)
	if err != nil {
		return 0, fmt.Errorf("failed to store transactions: %w", err)
	}

	uc.log.Info("transactions imported", "count", n)
	return n, nil
}

// IsUsageError reports whether err comes from invalid user input rather than
// from a data source.
func IsUsageError(err error) bool {
	return errors.Is(err, types.ErrInvalidView) ||
		errors.Is(err, types.ErrInvalidSortKey) ||
		errors.Is(err, types.ErrNoSources)
}

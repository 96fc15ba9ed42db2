package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/diillson/rewards-dashboard-go/internal/domain/entity"
	"github.com/diillson/rewards-dashboard-go/internal/shared/types"
)

type fakeSourceRepo struct {
	mu      sync.Mutex
	data    map[string][]entity.Transaction
	errs    map[string]error
	fetched []string
}

func (f *fakeSourceRepo) FetchTransactions(_ context.Context, location string) ([]entity.Transaction, error) {
	f.mu.Lock()
	f.fetched = append(f.fetched, location)
	f.mu.Unlock()

	if err, ok := f.errs[location]; ok {
		return nil, err
	}
	txns, ok := f.data[location]
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedSource, location)
	}
	return txns, nil
}

type fakeExportRepo struct {
	calls   []string
	reports []entity.RewardsReport
	err     error
}

func (f *fakeExportRepo) ExportToCSV(report entity.RewardsReport, filename, outputDir string) ([]string, error) {
	f.calls = append(f.calls, "csv:"+filename+":"+outputDir)
	f.reports = append(f.reports, report)
	return []string{outputDir + "/" + filename + "_monthly.csv"}, f.err
}

func (f *fakeExportRepo) ExportToJSON(report entity.RewardsReport, filename, outputDir string) (string, error) {
	f.calls = append(f.calls, "json:"+filename+":"+outputDir)
	f.reports = append(f.reports, report)
	return outputDir + "/" + filename + ".json", f.err
}

func (f *fakeExportRepo) ExportToPDF(report entity.RewardsReport, filename, outputDir string) (string, error) {
	f.calls = append(f.calls, "pdf:"+filename+":"+outputDir)
	f.reports = append(f.reports, report)
	return outputDir + "/" + filename + ".pdf", f.err
}

type fakeTable struct {
	title   string
	columns []string
	rows    [][]string
	footer  string
}

func (t *fakeTable) AddColumn(name string, _ ...interface{}) { t.columns = append(t.columns, name) }

func (t *fakeTable) AddRow(cells ...interface{}) {
	row := make([]string, len(cells))
	for i, c := range cells {
		row[i] = fmt.Sprint(c)
	}
	t.rows = append(t.rows, row)
}

func (t *fakeTable) SetFooter(text string) { t.footer = text }
func (t *fakeTable) Render() string { return "" }

type noopHandle struct{}

func (noopHandle) Update(string) {}
func (noopHandle) Increment() {}
func (noopHandle) Stop() {}

type fakeConsole struct {
	warnings []string
	errors   []string
	success  []string
	panels   []string
	tables   []*fakeTable
	trend    []types.MonthlyPoints
}

func (c *fakeConsole) Print(...interface{}) {}
func (c *fakeConsole) Printf(string, ...interface{}) {}
func (c *fakeConsole) Println(...interface{}) {}
func (c *fakeConsole) LogInfo(string, ...interface{}) {}

func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) Status(string) types.StatusHandle { return noopHandle{} }
func (c *fakeConsole) ProgressWithTotal(string, int) types.ProgressHandle { return noopHandle{} }

func (c *fakeConsole) CreateTable(title string) types.TableInterface {
	t := &fakeTable{title: title}
	c.tables = append(c.tables, t)
	return t
}

func (c *fakeConsole) DisplayPanel(title string, _ []string) { c.panels = append(c.panels, title) }

func (c *fakeConsole) DisplayTrendBars(points []types.MonthlyPoints) { c.trend = points }

func (c *fakeConsole) table(title string) *fakeTable {
	for _, t := range c.tables {
		if t.title == title {
			return t
		}
	}
	return nil
}

type fakeStore struct {
	stored []entity.Transaction
	closed bool
}

func (s *fakeStore) Upsert(_ context.Context, txns []entity.Transaction) (int, error) {
	s.stored = append(s.stored, txns...)
	return len(txns), nil
}

func (s *fakeStore) Close() error {
	s.closed = true
	return nil
}

type fakeConfigRepo struct {
	cfg *types.Config
	err error
}

func (f *fakeConfigRepo) LoadConfigFile(string) (*types.Config, error) { return f.cfg, f.err }

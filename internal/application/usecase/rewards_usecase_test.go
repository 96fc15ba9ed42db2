package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/diillson/rewards-dashboard-go/internal/adapter/driven/source"
	"github.com/diillson/rewards-dashboard-go/internal/domain/entity"
	"github.com/diillson/rewards-dashboard-go/internal/domain/rewards"
	"github.com/diillson/rewards-dashboard-go/internal/shared/types"
	"github.com/google/go-cmp/cmp"
)

func newTestUseCase(data map[string][]entity.Transaction) (*RewardsUseCase, *fakeConsole, *fakeExportRepo, *fakeSourceRepo) {
	if data == nil {
		data = map[string][]entity.Transaction{"sample:": source.SampleTransactions()}
	}
	src := &fakeSourceRepo{data: data, errs: map[string]error{}}
	exp := &fakeExportRepo{}
	con := &fakeConsole{}
	return NewRewardsUseCase(src, exp, con, nil), con, exp, src
}

func column(t *fakeTable, i int) []string {
	out := make([]string, 0, len(t.rows))
	for _, r := range t.rows {
		out = append(out, r[i])
	}
	return out
}

func TestRunDashboard_DefaultViews(t *testing.T) {
	uc, con, exp, _ := newTestUseCase(nil)

	err := uc.RunDashboard(context.Background(), &types.CLIArgs{Sources: []string{"sample:"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff([]string{"Rewards Program Rules"}, con.panels); diff != "" {
		t.Fatalf("panels (-want +got):\n%s", diff)
	}

	var titles []string
	for _, tbl := range con.tables {
		titles = append(titles, tbl.title)
	}
	if diff := cmp.Diff([]string{"User Monthly Rewards", "Total Rewards", "Transactions"}, titles); diff != "" {
		t.Fatalf("tables (-want +got):\n%s", diff)
	}

	monthly := con.table("User Monthly Rewards")
	if diff := cmp.Diff([]string{"Customer ID", "Name", "Month", "Reward Points"}, monthly.columns); diff != "" {
		t.Fatalf("monthly columns (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1", "John Doe", "January 2024", "236"}, monthly.rows[0]); diff != "" {
		t.Fatalf("first monthly row (-want +got):\n%s", diff)
	}
	if len(monthly.rows) != 10 {
		t.Fatalf("expected a page of 10 monthly rows, got %d", len(monthly.rows))
	}
	if want := "Page 1 of 2 | 12 rows | sorted by year desc"; monthly.footer != want {
		t.Fatalf("footer = %q, want %q", monthly.footer, want)
	}

	total := con.table("Total Rewards")
	want := [][]string{
		{"John Doe", "907"},
		{"Jane Smith", "580"},
		{"Bob Johnson", "552"},
		{"Alice Brown", "210"},
	}
	if diff := cmp.Diff(want, total.rows); diff != "" {
		t.Fatalf("total rows (-want +got):\n%s", diff)
	}

	txns := con.table("Transactions")
	if diff := cmp.Diff([]string{"16", "John Doe", "2024-02-28", "Tech Gadgets", "$220.45", "290"}, txns.rows[0]); diff != "" {
		t.Fatalf("first transaction row (-want +got):\n%s", diff)
	}

	if len(exp.calls) != 0 {
		t.Fatalf("no export expected without report name, got %v", exp.calls)
	}
}

func TestRunDashboard_NameFilterAndSort(t *testing.T) {
	uc, con, _, _ := newTestUseCase(nil)

	args := &types.CLIArgs{
		Sources: []string{"sample:"},
		Name:    "JANE",
		Views:   []string{"total", "monthly"},
		SortBy:  "rewardPoints:asc",
	}
	if err := uc.RunDashboard(context.Background(), args); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff([][]string{{"Jane Smith", "580"}}, con.table("Total Rewards").rows); diff != "" {
		t.Fatalf("total rows (-want +got):\n%s", diff)
	}

	monthly := con.table("User Monthly Rewards")
	if diff := cmp.Diff([]string{"45", "185", "350"}, column(monthly, 3)); diff != "" {
		t.Fatalf("monthly points (-want +got):\n%s", diff)
	}
	if con.table("Transactions") != nil {
		t.Fatalf("transactions view was not requested")
	}
}

func TestRunDashboard_MonthSortIsChronological(t *testing.T) {
	uc, con, _, _ := newTestUseCase(nil)

	args := &types.CLIArgs{
		Sources: []string{"sample:"},
		Name:    "john",
		Views:   []string{"monthly"},
		SortBy:  "monthYear:desc",
	}
	if err := uc.RunDashboard(context.Background(), args); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"February 2024", "January 2024", "December 2023"}
	if diff := cmp.Diff(want, column(con.table("User Monthly Rewards"), 2)); diff != "" {
		t.Fatalf("months (-want +got):\n%s", diff)
	}
}

func TestRunDashboard_DateRange(t *testing.T) {
	uc, con, _, _ := newTestUseCase(nil)

	args := &types.CLIArgs{
		Sources:   []string{"sample:"},
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
		Views:     []string{"transactions", "total"},
		SortBy:    "id",
	}
	if err := uc.RunDashboard(context.Background(), args); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff([]string{"6", "7", "8", "9", "10"}, column(con.table("Transactions"), 0)); diff != "" {
		t.Fatalf("transaction ids (-want +got):\n%s", diff)
	}
	// O total ignora o intervalo de datas.
	if got := con.table("Total Rewards").rows[0]; got[1] != "907" {
		t.Fatalf("expected total for John Doe to stay 907, got %v", got)
	}
}

func TestRunDashboard_Pagination(t *testing.T) {
	uc, con, _, _ := newTestUseCase(nil)

	args := &types.CLIArgs{Sources: []string{"sample:"}, Views: []string{"transactions"}, PageSize: 5, Page: 4}
	if err := uc.RunDashboard(context.Background(), args); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tbl := con.table("Transactions")
	if diff := cmp.Diff([]string{"4"}, column(tbl, 0)); diff != "" {
		t.Fatalf("last page (-want +got):\n%s", diff)
	}
	if !strings.HasPrefix(tbl.footer, "Page 4 of 4 | 16 rows") {
		t.Fatalf("unexpected footer %q", tbl.footer)
	}

	// Páginas além do fim mostram a última.
	uc, con, _, _ = newTestUseCase(nil)
	args.Page = 99
	if err := uc.RunDashboard(context.Background(), args); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(con.table("Transactions").footer, "Page 4 of 4") {
		t.Fatalf("unexpected footer %q", con.table("Transactions").footer)
	}
}

func TestRunDashboard_Trend(t *testing.T) {
	uc, con, _, _ := newTestUseCase(nil)

	if err := uc.RunDashboard(context.Background(), &types.CLIArgs{Sources: []string{"sample:"}, Views: []string{"trend"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []types.MonthlyPoints{
		{Month: "December 2023", Points: 526},
		{Month: "January 2024", Points: 742},
		{Month: "February 2024", Points: 981},
	}
	if diff := cmp.Diff(want, con.trend); diff != "" {
		t.Fatalf("trend (-want +got):\n%s", diff)
	}
}

func TestRunDashboard_Errors(t *testing.T) {
	tests := []struct {
		name string
		args types.CLIArgs
		data map[string][]entity.Transaction
		want error
	}{
		{name: "no sources", args: types.CLIArgs{}, want: types.ErrNoSources},
		{name: "empty data", args: types.CLIArgs{Sources: []string{"empty"}}, data: map[string][]entity.Transaction{"empty": {}}, want: types.ErrNoTransactions},
		{name: "invalid view", args: types.CLIArgs{Sources: []string{"sample:"}, Views: []string{"pie"}}, want: types.ErrInvalidView},
		{name: "unknown sort key", args: types.CLIArgs{Sources: []string{"sample:"}, SortBy: "price"}, want: types.ErrInvalidSortKey},
		{name: "sort key of another view", args: types.CLIArgs{Sources: []string{"sample:"}, Views: []string{"total"}, SortBy: "product"}, want: types.ErrInvalidSortKey},
		{name: "bad direction", args: types.CLIArgs{Sources: []string{"sample:"}, SortBy: "id:up"}, want: types.ErrInvalidSortKey},
		{name: "unknown source", args: types.CLIArgs{Sources: []string{"sample:", "nowhere"}}, want: types.ErrUnsupportedSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _, _ := newTestUseCase(tt.data)
			err := uc.RunDashboard(context.Background(), &tt.args)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	uc, _, _, _ := newTestUseCase(nil)
	if err := uc.RunDashboard(context.Background(), &types.CLIArgs{Sources: []string{"sample:"}, PageSize: 7}); err == nil {
		t.Fatalf("expected page size error")
	}
}

func degradedTransactions() []entity.Transaction {
	txns := source.SampleTransactions()[:2]
	txns[0].Amount = entity.ParseAmount("abc")
	txns[1].Date = "not-a-date"
	return txns
}

func TestRunDashboard_DataQuality(t *testing.T) {
	data := map[string][]entity.Transaction{"bad": degradedTransactions()}

	uc, con, _, _ := newTestUseCase(data)
	if err := uc.RunDashboard(context.Background(), &types.CLIArgs{Sources: []string{"bad"}}); err != nil {
		t.Fatalf("non-strict run should succeed, got %v", err)
	}
	if len(con.warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", con.warnings)
	}

	uc, _, _, _ = newTestUseCase(data)
	err := uc.RunDashboard(context.Background(), &types.CLIArgs{Sources: []string{"bad"}, Strict: true})
	if !errors.Is(err, types.ErrDataQuality) {
		t.Fatalf("expected ErrDataQuality, got %v", err)
	}
	if !errors.Is(err, rewards.ErrInvalidAmount) || !errors.Is(err, rewards.ErrUnparseableDate) {
		t.Fatalf("expected both issues to be wrapped, got %v", err)
	}
}

func TestRunDashboard_Export(t *testing.T) {
	uc, con, exp, _ := newTestUseCase(nil)

	args := &types.CLIArgs{
		Sources:    []string{"sample:"},
		Name:       "john",
		ReportName: "rewards",
		ReportType: []string{"csv", "JSON", "pdf", "xml"},
		Dir:        "/tmp/out",
	}
	if err := uc.RunDashboard(context.Background(), args); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"csv:rewards:/tmp/out", "json:rewards:/tmp/out", "pdf:rewards:/tmp/out"}
	if diff := cmp.Diff(want, exp.calls); diff != "" {
		t.Fatalf("export calls (-want +got):\n%s", diff)
	}
	if len(con.success) != 3 || len(con.warnings) != 1 {
		t.Fatalf("unexpected messages: success=%v warnings=%v", con.success, con.warnings)
	}
	if got := exp.reports[0]; got.Filter.Name != "john" || len(got.Total) != 1 {
		t.Fatalf("exported report does not carry the filter: %+v", got.Filter)
	}

	uc, con, exp, _ = newTestUseCase(nil)
	exp.err = errors.New("disk full")
	args.ReportType = []string{"json"}
	if err := uc.RunDashboard(context.Background(), args); err != nil {
		t.Fatalf("export failures are reported, not returned: %v", err)
	}
	if len(con.errors) != 1 {
		t.Fatalf("expected one export error, got %v", con.errors)
	}
}

func TestLoadTransactions_KeepsSourceOrder(t *testing.T) {
	a := source.SampleTransactions()[:2]
	b := source.SampleTransactions()[10:12]
	uc, _, _, src := newTestUseCase(map[string][]entity.Transaction{"a": a, "b": b})

	got, err := uc.LoadTransactions(context.Background(), []string{"b", "a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var ids []int
	for _, txn := range got {
		ids = append(ids, txn.ID)
	}
	if diff := cmp.Diff([]int{11, 12, 1, 2}, ids); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if len(src.fetched) != 2 {
		t.Fatalf("expected 2 fetches, got %v", src.fetched)
	}
}

func TestImportTransactions(t *testing.T) {
	uc, _, _, _ := newTestUseCase(nil)
	store := &fakeStore{}

	n, err := uc.ImportTransactions(context.Background(), &types.CLIArgs{Sources: []string{"sample:"}}, store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 16 || len(store.stored) != 16 {
		t.Fatalf("expected 16 stored transactions, got n=%d stored=%d", n, len(store.stored))
	}

	uc, _, _, _ = newTestUseCase(map[string][]entity.Transaction{"bad": degradedTransactions()})
	store = &fakeStore{}
	_, err = uc.ImportTransactions(context.Background(), &types.CLIArgs{Sources: []string{"bad"}, Strict: true}, store)
	if !errors.Is(err, types.ErrDataQuality) || len(store.stored) != 0 {
		t.Fatalf("strict import must not store degraded data: err=%v stored=%d", err, len(store.stored))
	}
}

func TestApplyConfigFile(t *testing.T) {
	repo := &fakeConfigRepo{cfg: &types.Config{
		Sources:  []string{"data.json"},
		Name:     "jane",
		PageSize: 25,
	}}

	args := &types.CLIArgs{
		ConfigFile: "rewards.toml",
		Name:       "john",
		PageSize:   10,
		Changed:    map[string]bool{"name": true},
	}
	cfg, err := ApplyConfigFile(repo, args)
	if err != nil || cfg == nil {
		t.Fatalf("unexpected result: cfg=%v err=%v", cfg, err)
	}
	if args.Name != "john" || args.PageSize != 25 || args.Sources[0] != "data.json" {
		t.Fatalf("unexpected merge result: %+v", args)
	}

	if cfg, err := ApplyConfigFile(repo, &types.CLIArgs{}); cfg != nil || err != nil {
		t.Fatalf("no config file should be a no-op, got cfg=%v err=%v", cfg, err)
	}

	repo.err = types.ErrUnsupportedFormat
	if _, err := ApplyConfigFile(repo, &types.CLIArgs{ConfigFile: "x.ini"}); !errors.Is(err, types.ErrUnsupportedFormat) {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestIsUsageError(t *testing.T) {
	if !IsUsageError(types.ErrInvalidSortKey) || IsUsageError(types.ErrDataQuality) {
		t.Fatalf("unexpected classification")
	}
}

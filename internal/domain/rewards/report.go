package rewards

import (
	"time"

	"github.com/diillson/rewards-dashboard-go/internal/domain/entity"
)

// BuildMonthlyReport filters the transactions by date only, aggregates them per
// customer and month, then narrows the rows by name.
func BuildMonthlyReport(transactions []entity.Transaction, customers []entity.Customer, filter entity.ReportFilter) []entity.MonthlyRewardRow {
	dated := FilterTransactions(transactions, "", filter.StartDate, filter.EndDate)
	return FilterMonthlyRewardsByName(GenerateMonthlyRewardsData(dated, customers), filter.Name)
}

// BuildTotalReport aggregates all transactions per customer and narrows the rows
// by name. The date range does not apply to totals.
func BuildTotalReport(transactions []entity.Transaction, customers []entity.Customer, filter entity.ReportFilter) []entity.TotalRewardRow {
	return FilterTotalRewardsByName(GenerateTotalRewardsData(transactions, customers), filter.Name)
}

// BuildTransactionReport filters by name and date, sorts newest first and
// attaches the points of each transaction.
func BuildTransactionReport(transactions []entity.Transaction, filter entity.ReportFilter) []entity.TransactionRow {
	sorted := SortTransactionsByDate(FilterTransactions(transactions, filter.Name, filter.StartDate, filter.EndDate))
	rows := make([]entity.TransactionRow, 0, len(sorted))
	for _, t := range sorted {
		rows = append(rows, entity.TransactionRow{
			Transaction: t,
			Points:      CalculateTransactionPoints(t.Amount),
		})
	}
	return rows
}

// BuildReport monta as três visões a partir do mesmo conjunto de transações.
func BuildReport(transactions []entity.Transaction, customers []entity.Customer, filter entity.ReportFilter) entity.RewardsReport {
	dated := FilterTransactions(transactions, "", filter.StartDate, filter.EndDate)
	return entity.RewardsReport{
		GeneratedAt:  time.Now(),
		Filter:       filter,
		Customers:    customers,
		Months:       GetUniqueMonthsAndYears(dated),
		Monthly:      BuildMonthlyReport(transactions, customers, filter),
		Total:        BuildTotalReport(transactions, customers, filter),
		Transactions: BuildTransactionReport(transactions, filter),
	}
}

// PointsByMonth soma os pontos de todos os clientes para cada chave mês/ano,
// na ordem das chaves. Alimenta a visão de tendência.
func PointsByMonth(rows []entity.MonthlyRewardRow, months []entity.MonthYear) []int {
	index := make(map[entity.MonthYear]int, len(months))
	for i, m := range months {
		index[m] = i
	}
	totals := make([]int, len(months))
	for _, r := range rows {
		key := entity.MonthYear{Month: MonthIndex(r.Month), Year: r.Year}
		if i, ok := index[key]; ok {
			totals[i] += r.RewardPoints
		}
	}
	return totals
}

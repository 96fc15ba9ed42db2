package rewards

import (
	"slices"

	"github.com/diillson/rewards-dashboard-go/internal/domain/entity"
)

// CalculateMonthlyRewards sums the points of one customer's transactions dated in
// exactly the given 0-based month and year.
func CalculateMonthlyRewards(transactions []entity.Transaction, customerID, month, year int) int {
	total := 0
	for _, t := range transactions {
		if t.CustomerID != customerID {
			continue
		}
		key, ok := MonthYearOf(t.Date)
		if !ok || key.Month != month || key.Year != year {
			continue
		}
		total += CalculateTransactionPoints(t.Amount)
	}
	return total
}

// CalculateTotalRewards sums the points of every transaction of one customer.
func CalculateTotalRewards(transactions []entity.Transaction, customerID int) int {
	total := 0
	for _, t := range transactions {
		if t.CustomerID == customerID {
			total += CalculateTransactionPoints(t.Amount)
		}
	}
	return total
}

// GenerateMonthlyRewardsData emits one row per customer per month-year key present
// in the transactions, customers in input order and keys in ascending order.
// Customers without purchases in a period still get a zero-point row for it.
func GenerateMonthlyRewardsData(transactions []entity.Transaction, customers []entity.Customer) []entity.MonthlyRewardRow {
	months := GetUniqueMonthsAndYears(transactions)

	// Uma única passada agrupando por cliente e mês; a ordem de saída
	// continua sendo a de customers x months.
	points := make(map[int]map[entity.MonthYear]int)
	for _, t := range transactions {
		key, ok := MonthYearOf(t.Date)
		if !ok {
			continue
		}
		byMonth, ok := points[t.CustomerID]
		if !ok {
			byMonth = make(map[entity.MonthYear]int)
			points[t.CustomerID] = byMonth
		}
		byMonth[key] += CalculateTransactionPoints(t.Amount)
	}

	rows := make([]entity.MonthlyRewardRow, 0, len(customers)*len(months))
	for _, c := range customers {
		for _, m := range months {
			name, _ := MonthName(m.Month) // chaves vêm de MonthYearOf, sempre 0-11
			rows = append(rows, entity.MonthlyRewardRow{
				CustomerID:   c.ID,
				Name:         c.Name,
				Month:        name,
				Year:         m.Year,
				RewardPoints: points[c.ID][m],
			})
		}
	}
	return rows
}

// GenerateTotalRewardsData emits one row per customer, in input order.
func GenerateTotalRewardsData(transactions []entity.Transaction, customers []entity.Customer) []entity.TotalRewardRow {
	totals := make(map[int]int, len(customers))
	for _, t := range transactions {
		totals[t.CustomerID] += CalculateTransactionPoints(t.Amount)
	}

	rows := make([]entity.TotalRewardRow, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, entity.TotalRewardRow{
			CustomerName: c.Name,
			RewardPoints: totals[c.ID],
		})
	}
	return rows
}

// GetUniqueCustomers deduplicates by customer id in first-seen order, keeping the
// name from the first transaction of each id.
func GetUniqueCustomers(transactions []entity.Transaction) []entity.Customer {
	seen := make(map[int]struct{})
	customers := make([]entity.Customer, 0)
	for _, t := range transactions {
		if _, ok := seen[t.CustomerID]; ok {
			continue
		}
		seen[t.CustomerID] = struct{}{}
		customers = append(customers, entity.Customer{ID: t.CustomerID, Name: t.CustomerName})
	}
	return customers
}

// SortTransactionsByDate returns a copy sorted by date, newest first. The sort is
// stable; transactions with an unparseable date go last.
func SortTransactionsByDate(transactions []entity.Transaction) []entity.Transaction {
	sorted := slices.Clone(transactions)
	if sorted == nil {
		sorted = []entity.Transaction{}
	}
	slices.SortStableFunc(sorted, func(a, b entity.Transaction) int {
		ta, errA := ParseDate(a.Date)
		tb, errB := ParseDate(b.Date)
		switch {
		case errA != nil && errB != nil:
			return 0
		case errA != nil:
			return 1
		case errB != nil:
			return -1
		}
		return tb.Compare(ta)
	})
	return sorted
}

package rewards

import (
	"strings"
	"time"

	"github.com/diillson/rewards-dashboard-go/internal/domain/entity"
)

// FilterTransactionsByName keeps transactions whose customer name contains the
// filter, ignoring case. A blank filter returns the input elements unchanged.
func FilterTransactionsByName(transactions []entity.Transaction, nameFilter string) []entity.Transaction {
	return filterByName(transactions, nameFilter, func(t entity.Transaction) string { return t.CustomerName })
}

// FilterMonthlyRewardsByName applies the name filter to monthly report rows.
func FilterMonthlyRewardsByName(rows []entity.MonthlyRewardRow, nameFilter string) []entity.MonthlyRewardRow {
	return filterByName(rows, nameFilter, func(r entity.MonthlyRewardRow) string { return r.Name })
}

// FilterTotalRewardsByName applies the name filter to total report rows.
func FilterTotalRewardsByName(rows []entity.TotalRewardRow, nameFilter string) []entity.TotalRewardRow {
	return filterByName(rows, nameFilter, func(r entity.TotalRewardRow) string { return r.CustomerName })
}

func filterByName[T any](items []T, nameFilter string, name func(T) string) []T {
	needle := strings.ToLower(strings.TrimSpace(nameFilter))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if needle == "" || strings.Contains(strings.ToLower(name(item)), needle) {
			out = append(out, item)
		}
	}
	return out
}

// FilterTransactionsByDateRange keeps transactions dated within the inclusive
// bounds. An empty or unparseable bound is ignored; with both ignored the input
// elements come back unchanged. A transaction whose own date does not parse
// never satisfies an active bound. Timestamps compare by their local calendar day.
func FilterTransactionsByDateRange(transactions []entity.Transaction, startDate, endDate string) []entity.Transaction {
	start, hasStart := parseBound(startDate)
	end, hasEnd := parseBound(endDate)

	out := make([]entity.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if !hasStart && !hasEnd {
			out = append(out, t)
			continue
		}
		d, err := ParseDate(t.Date)
		if err != nil {
			continue
		}
		d = localDay(d)
		if hasStart && d.Before(start) {
			continue
		}
		if hasEnd && d.After(end) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func parseBound(s string) (time.Time, bool) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, false
	}
	t, err := ParseDate(s)
	if err != nil {
		return time.Time{}, false
	}
	return localDay(t), true
}

// FilterTransactions applies the name filter and then the date range.
func FilterTransactions(transactions []entity.Transaction, nameFilter, startDate, endDate string) []entity.Transaction {
	return FilterTransactionsByDateRange(FilterTransactionsByName(transactions, nameFilter), startDate, endDate)
}

package usecase

import (
	"fmt"
	"strings"

	"github.com/diillson/rewards-dashboard-go/internal/domain/entity"
	"github.com/diillson/rewards-dashboard-go/internal/domain/rewards"
	"github.com/diillson/rewards-dashboard-go/internal/shared/types"
)

// Ordenações iniciais de cada tabela.
var (
	defaultMonthlySort     = types.SortSpec{Key: "year", Direction: types.SortDesc}
	defaultTotalSort       = types.SortSpec{Key: "rewardPoints", Direction: types.SortDesc}
	defaultTransactionSort = types.SortSpec{Key: "date", Direction: types.SortDesc}
)

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// monthSortKey ordena cronologicamente: year*100 + mês (1-12).
func monthSortKey(r entity.MonthlyRewardRow) int {
	return r.Year*100 + rewards.MonthIndex(r.Month) + 1
}

func monthlyColumns() []types.Column[entity.MonthlyRewardRow] {
	return []types.Column[entity.MonthlyRewardRow]{
		{
			Key:    "customerId",
			Header: "Customer ID",
			Value:  func(r entity.MonthlyRewardRow) any { return r.CustomerID },
		},
		{
			Key:     "name",
			Header:  "Name",
			Value:   func(r entity.MonthlyRewardRow) any { return r.Name },
			Compare: func(a, b entity.MonthlyRewardRow) int { return compareFold(a.Name, b.Name) },
		},
		{
			Key:    "monthYear",
			Header: "Month",
			Value:  func(r entity.MonthlyRewardRow) any { return monthSortKey(r) },
			Render: func(r entity.MonthlyRewardRow) string { return fmt.Sprintf("%s %d", r.Month, r.Year) },
		},
		{
			Key:    "year",
			Header: "Year",
			Value:  func(r entity.MonthlyRewardRow) any { return r.Year },
			Hidden: true,
		},
		{
			Key:    "rewardPoints",
			Header: "Reward Points",
			Value:  func(r entity.MonthlyRewardRow) any { return r.RewardPoints },
		},
	}
}

func totalColumns() []types.Column[entity.TotalRewardRow] {
	return []types.Column[entity.TotalRewardRow]{
		{
			Key:     "customerName",
			Header:  "Customer Name",
			Value:   func(r entity.TotalRewardRow) any { return r.CustomerName },
			Compare: func(a, b entity.TotalRewardRow) int { return compareFold(a.CustomerName, b.CustomerName) },
		},
		{
			Key:    "rewardPoints",
			Header: "Reward Points",
			Value:  func(r entity.TotalRewardRow) any { return r.RewardPoints },
		},
	}
}

// amountValue coloca valores inválidos antes de qualquer valor válido.
func amountValue(a entity.Amount) float64 {
	if v, ok := a.Float64(); ok {
		return v
	}
	return -1
}

func formatAmount(a entity.Amount) string {
	if d, ok := a.Decimal(); ok {
		return "$" + d.StringFixed(2)
	}
	return a.Raw()
}

// compareDates ordena datas inválidas antes das válidas (ficam por último em desc).
func compareDates(a, b string) int {
	ta, errA := rewards.ParseDate(a)
	tb, errB := rewards.ParseDate(b)
	switch {
	case errA != nil && errB != nil:
		return 0
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	}
	return ta.Compare(tb)
}

func transactionColumns() []types.Column[entity.TransactionRow] {
	return []types.Column[entity.TransactionRow]{
		{
			Key:    "id",
			Header: "Transaction ID",
			Value:  func(r entity.TransactionRow) any { return r.ID },
		},
		{
			Key:     "customerName",
			Header:  "Customer Name",
			Value:   func(r entity.TransactionRow) any { return r.CustomerName },
			Compare: func(a, b entity.TransactionRow) int { return compareFold(a.CustomerName, b.CustomerName) },
		},
		{
			Key:     "date",
			Header:  "Purchase Date",
			Value:   func(r entity.TransactionRow) any { return r.Date },
			Compare: func(a, b entity.TransactionRow) int { return compareDates(a.Date, b.Date) },
		},
		{
			Key:    "product",
			Header: "Product Purchased",
			Value:  func(r entity.TransactionRow) any { return r.Product },
		},
		{
			Key:    "amount",
			Header: "Price",
			Value:  func(r entity.TransactionRow) any { return amountValue(r.Amount) },
			Render: func(r entity.TransactionRow) string { return formatAmount(r.Amount) },
		},
		{
			Key:    "points",
			Header: "Reward Points",
			Value:  func(r entity.TransactionRow) any { return r.Points },
		},
	}
}

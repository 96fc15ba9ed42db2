package entity

import "time"

// MonthYear identifica um bucket de agregação mensal. Month é 0-based (0 = janeiro).
type MonthYear struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// MonthlyRewardRow is one row of the monthly rewards report.
type MonthlyRewardRow struct {
	CustomerID   int    `json:"customerId"`
	Name         string `json:"name"`
	Month        string `json:"month"`
	Year         int    `json:"year"`
	RewardPoints int    `json:"rewardPoints"`
}

// TotalRewardRow is one row of the total rewards report.
type TotalRewardRow struct {
	CustomerName string `json:"customerName"`
	RewardPoints int    `json:"rewardPoints"`
}

// TransactionRow é uma transação enriquecida com os pontos calculados.
type TransactionRow struct {
	Transaction
	Points int `json:"points"`
}

// ReportFilter carries the name substring and the inclusive date bounds.
// Empty fields mean "no filter".
type ReportFilter struct {
	Name      string `json:"name,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// IsZero reports whether no filter is set.
func (f ReportFilter) IsZero() bool {
	return f.Name == "" && f.StartDate == "" && f.EndDate == ""
}

// RewardsReport agrupa as três visões do relatório para exibição e exportação.
type RewardsReport struct {
	GeneratedAt  time.Time          `json:"generated_at"`
	Filter       ReportFilter       `json:"filter"`
	Customers    []Customer         `json:"customers"`
	Months       []MonthYear        `json:"months"`
	Monthly      []MonthlyRewardRow `json:"monthly"`
	Total        []TotalRewardRow   `json:"total"`
	Transactions []TransactionRow   `json:"transactions"`
}

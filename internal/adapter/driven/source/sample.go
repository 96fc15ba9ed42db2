package source

import "github.com/diillson/rewards-dashboard-go/internal/domain/entity"

type sampleRow struct {
	id, customerID int
	name           string
	amount         float64
	date, product  string
}

// Três meses consecutivos: dez/2023, jan/2024 e fev/2024.
var sampleRows = []sampleRow{
	{1, 1, "John Doe", 120.20, "2023-12-15", "Electronics Bundle"},
	{2, 2, "Jane Smith", 85.50, "2023-12-20", "Home Decor Set"},
	{3, 1, "John Doe", 200.75, "2023-12-25", "Gaming Console"},
	{4, 3, "Bob Johnson", 45.00, "2023-12-10", "Books Collection"},
	{5, 2, "Jane Smith", 150.40, "2023-12-30", "Kitchen Appliances"},

	{6, 1, "John Doe", 75.25, "2024-01-05", "Office Supplies"},
	{7, 3, "Bob Johnson", 300.60, "2024-01-14", "Furniture Set"},
	{8, 2, "Jane Smith", 95.80, "2024-01-18", "Clothing Items"},
	{9, 1, "John Doe", 180.50, "2024-01-22", "Sports Equipment"},
	{10, 4, "Alice Brown", 60.00, "2024-01-28", "Health Products"},

	{11, 2, "Jane Smith", 250.30, "2024-02-03", "Jewelry Collection"},
	{12, 1, "John Doe", 90.75, "2024-02-08", "Tools Set"},
	{13, 3, "Bob Johnson", 125.90, "2024-02-12", "Garden Supplies"},
	{14, 4, "Alice Brown", 175.25, "2024-02-18", "Beauty Products"},
	{15, 2, "Jane Smith", 40.00, "2024-02-25", "Accessories"},
	{16, 1, "John Doe", 220.45, "2024-02-28", "Tech Gadgets"},
}

// SampleTransactions retorna uma cópia nova do conjunto de exemplo.
func SampleTransactions() []entity.Transaction {
	txns := make([]entity.Transaction, 0, len(sampleRows))
	for _, r := range sampleRows {
		txns = append(txns, entity.Transaction{
			ID:           r.id,
			CustomerID:   r.customerID,
			CustomerName: r.name,
			Amount:       entity.NewAmount(r.amount),
			Date:         r.date,
			Product:      r.product,
		})
	}
	return txns
}

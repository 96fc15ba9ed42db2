package source

import (
	"context"
	"fmt"

	"github.com/diillson/rewards-dashboard-go/internal/domain/entity"
	"github.com/jackc/pgx/v5/pgxpool"
)

// A tabela no PostgreSQL é gerida externamente. amount e date são lidos
// como texto para preservar o valor original.
const selectPostgresTransactions = `SELECT id, customer_id, customer_name, amount::text, date::text, COALESCE(product, '')
FROM transactions
ORDER BY id`

func fetchPostgres(ctx context.Context, dsn string) ([]entity.Transaction, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("error creating pgx pool: %w", err)
	}
	defer pool.Close()

	rows, err := pool.Query(ctx, selectPostgresTransactions)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	txns := []entity.Transaction{}
	for rows.Next() {
		var (
			t      entity.Transaction
			amount string
		)
		if err := rows.Scan(&t.ID, &t.CustomerID, &t.CustomerName, &amount, &t.Date, &t.Product); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Amount = entity.ParseAmount(amount)
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

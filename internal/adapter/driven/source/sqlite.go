package source

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/diillson/rewards-dashboard-go/internal/domain/entity"

	_ "modernc.org/sqlite"
)

const selectTransactions = `SELECT id, customer_id, customer_name, amount, date, product
FROM transactions
ORDER BY id`

// SQLiteStore guarda transações num arquivo SQLite local.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore abre (ou cria) o banco em dbPath e aplica as migrations.
func OpenSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close fecha a conexão.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Transactions retorna todas as transações ordenadas por id.
func (s *SQLiteStore) Transactions(ctx context.Context) ([]entity.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, selectTransactions)
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

// Upsert grava as transações numa única transação do banco. Ids já
// existentes são substituídos.
func (s *SQLiteStore) Upsert(ctx context.Context, txns []entity.Transaction) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO transactions (id, customer_id, customer_name, amount, date, product)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    customer_id = excluded.customer_id,
    customer_name = excluded.customer_name,
    amount = excluded.amount,
    date = excluded.date,
    product = excluded.product`)
	if err != nil {
		return 0, fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, t := range txns {
		if _, err := stmt.ExecContext(ctx, t.ID, t.CustomerID, t.CustomerName, t.Amount.Raw(), t.Date, t.Product); err != nil {
			return 0, fmt.Errorf("upsert transaction %d: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return len(txns), nil
}

func fetchSQLite(ctx context.Context, dbPath string) ([]entity.Transaction, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("error accessing sqlite database: %w", err)
	}

	store, err := OpenSQLiteStore(dbPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.Transactions(ctx)
}

package repository

import (
	"context"

	"github.com/diillson/rewards-dashboard-go/internal/domain/entity"
)

// TransactionRepository defines the interface for fetching raw transactions.
// The location selects the backend: a file path, an http(s) URL, s3://,
// sqlite://, postgres:// or sample:.
type TransactionRepository interface {
	FetchTransactions(ctx context.Context, location string) ([]entity.Transaction, error)
}

// TransactionStore persiste transações para consultas posteriores.
type TransactionStore interface {
	Upsert(ctx context.Context, txns []entity.Transaction) (int, error)
	Close() error
}

// Package source carrega transações brutas das fontes suportadas:
// arquivos locais, HTTP, S3, SQLite, PostgreSQL e o conjunto de exemplo.
package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/diillson/rewards-dashboard-go/internal/domain/entity"
	"github.com/diillson/rewards-dashboard-go/internal/shared/types"
	"github.com/diillson/rewards-dashboard-go/pkg/logger"
)

const schemeSample = "sample:"

// Repository implementa repository.TransactionRepository despachando pelo
// esquema da localização.
type Repository struct {
	log        *logger.Logger
	httpClient *http.Client
	s3         *s3Fetcher
}

// Option configura o Repository.
type Option func(*Repository)

// WithLogger define o logger usado nos eventos API_*.
func WithLogger(l *logger.Logger) Option {
	return func(r *Repository) {
		if l != nil {
			r.log = l
		}
	}
}

// WithHTTPClient substitui o cliente HTTP padrão.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Repository) {
		if c != nil {
			r.httpClient = c
		}
	}
}

// WithAWSProfile seleciona o perfil AWS usado nas localizações s3://.
func WithAWSProfile(profile string) Option {
	return func(r *Repository) {
		r.s3.profile = profile
	}
}

// NewTransactionRepository cria o repositório de fontes de transações.
func NewTransactionRepository(opts ...Option) *Repository {
	r := &Repository{
		log:        logger.Nop(),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		s3:         newS3Fetcher(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FetchTransactions carrega todas as transações de uma única localização.
func (r *Repository) FetchTransactions(ctx context.Context, location string) ([]entity.Transaction, error) {
	location = strings.TrimSpace(location)
	r.log.APIStart("fetchTransactions", "resource", location)

	txns, err := r.fetch(ctx, location)
	if err != nil {
		r.log.APIError("fetchTransactions", fmt.Errorf("%s: %w", location, err))
		return nil, err
	}

	r.log.APISuccess("fetchTransactions", "resource", location, "count", len(txns))
	return txns, nil
}

func (r *Repository) fetch(ctx context.Context, location string) ([]entity.Transaction, error) {
	if location == "" {
		return nil, types.ErrNoSources
	}

	if strings.HasPrefix(location, schemeSample) {
		return SampleTransactions(), nil
	}

	scheme, rest, ok := strings.Cut(location, "://")
	if !ok {
		return readFile(location)
	}

	switch strings.ToLower(scheme) {
	case "file":
		return readFile(rest)
	case "http", "https":
		return r.fetchHTTP(ctx, location)
	case "s3":
		return r.s3.fetch(ctx, location)
	case "sqlite":
		return fetchSQLite(ctx, rest)
	case "postgres", "postgresql":
		return fetchPostgres(ctx, location)
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedSource, scheme)
	}
}

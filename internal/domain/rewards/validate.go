package rewards

import (
	"errors"
	"fmt"

	"github.com/diillson/rewards-dashboard-go/internal/domain/entity"
)

// ErrUnparseableDate and ErrInvalidAmount classify data-quality issues.
var (
	ErrUnparseableDate = errors.New("unparseable transaction date")
	ErrInvalidAmount   = errors.New("invalid transaction amount")
)

// DataQualityError points at one transaction that the core will score or group
// in a degraded way.
type DataQualityError struct {
	TransactionID int
	Field         string
	Value         string
	Err           error
}

func (e *DataQualityError) Error() string {
	return fmt.Sprintf("transaction %d: %s %q: %v", e.TransactionID, e.Field, e.Value, e.Err)
}

func (e *DataQualityError) Unwrap() error {
	return e.Err
}

// ValidateTransactions reports every transaction with an unparseable date or an
// amount that is not a finite non-negative number, joined with errors.Join.
// It returns nil for clean input. The aggregation functions stay tolerant and
// never call it.
func ValidateTransactions(transactions []entity.Transaction) error {
	var errs []error
	for _, t := range transactions {
		if _, err := ParseDate(t.Date); err != nil {
			errs = append(errs, &DataQualityError{TransactionID: t.ID, Field: "date", Value: t.Date, Err: ErrUnparseableDate})
		}
		if !t.Amount.Valid() {
			errs = append(errs, &DataQualityError{TransactionID: t.ID, Field: "amount", Value: t.Amount.Raw(), Err: ErrInvalidAmount})
		}
	}
	return errors.Join(errs...)
}

// Issues flattens the error returned by ValidateTransactions.
func Issues(err error) []*DataQualityError {
	if err == nil {
		return nil
	}
	var out []*DataQualityError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			var dq *DataQualityError
			if errors.As(e, &dq) {
				out = append(out, dq)
			}
		}
		return out
	}
	var dq *DataQualityError
	if errors.As(err, &dq) {
		out = append(out, dq)
	}
	return out
}

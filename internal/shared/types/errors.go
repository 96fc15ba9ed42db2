package types

import "errors"

var (
	ErrNoTransactions    = errors.New("no transactions found in the configured sources")
	ErrNoSources         = errors.New("no transaction source configured. Use --source or a config file")
	ErrUnsupportedSource = errors.New("unsupported transaction source")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrBodyTooLarge      = errors.New("payload exceeds the size limit")
	ErrDataQuality       = errors.New("transaction data failed validation")
	ErrInvalidView       = errors.New("invalid view")
	ErrInvalidSortKey    = errors.New("invalid sort key")
)

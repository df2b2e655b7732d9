package types

import "errors"

var (
	ErrEmptyDataset      = errors.New("no usable transactions remain after normalization")
	ErrStatementNotFound = errors.New("statement file not found")
	ErrNoUsableColumns   = errors.New("could not resolve a date column in the statement")
	ErrUnsupportedFormat = errors.New("unsupported statement format (expected .csv or .xlsx)")
)

package inventory

import "errors"

var (
	ErrInvalidStatus       = errors.New("invalid stock status")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrInvalidExportFormat = errors.New("invalid export format")
)

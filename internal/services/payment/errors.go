package payment

import "errors"

var (
	ErrNotFound      = errors.New("payment not found")
	ErrBadExportKind = errors.New("unsupported export format")
)

package timeoff

import "errors"

var (
	// ErrTimeOffNotFound возвращается, когда период отсутствия не найден у данного барбера
	ErrTimeOffNotFound = errors.New("timeoff.repository: time off not found")

	ErrBuildQuery = errors.New("timeoff.repository: failed to build query")
	ErrExecQuery  = errors.New("timeoff.repository: failed to execute query")
	ErrScanRow    = errors.New("timeoff.repository: failed to scan row")
)

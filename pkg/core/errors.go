package core

import "errors"

// Common errors.
var (
	ErrEmptyPlan       = errors.New("plan has no cells")
	ErrEmptySource     = errors.New("cell has no source lines")
	ErrUnknownCellType = errors.New("unknown cell type")
)

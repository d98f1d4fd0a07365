package probe

import "errors"

var (
	ErrInvalidNumber = errors.New("invalid number")
	ErrInvalidColor  = errors.New("invalid color mode")
)

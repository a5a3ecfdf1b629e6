package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrLocationNotFound = errors.New("location not found")
	ErrInvalidStatus    = errors.New("invalid employment status")
)

package models

import "fmt"

// MarketNotFoundError is raised when a requested code does not match the
// catalog after normalization. Code keeps the original, un-normalized input.
type MarketNotFoundError struct {
	Code string
}

func (e *MarketNotFoundError) Error() string {
	return fmt.Sprintf("unknown market code: %s", e.Code)
}

// NewMarketNotFound creates a MarketNotFoundError for the given code.
func NewMarketNotFound(code string) *MarketNotFoundError {
	return &MarketNotFoundError{Code: code}
}

// InvalidParameterError is raised when a numeric bound is outside its
// documented range, or a range is not evenly divisible by its resolution.
type InvalidParameterError struct {
	Field      string
	Constraint string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Constraint)
}

// NewInvalidParameter creates an InvalidParameterError naming the field.
func NewInvalidParameter(field, constraint string) *InvalidParameterError {
	return &InvalidParameterError{Field: field, Constraint: constraint}
}

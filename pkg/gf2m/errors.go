package gf2m

import "errors"

var (
	// ErrInvalidFieldOrder is returned when a characteristic other than 2 is requested
	ErrInvalidFieldOrder = errors.New("field order must be 2")
	// ErrDivisionByZeroPolynomial is returned when dividing by the zero polynomial
	ErrDivisionByZeroPolynomial = errors.New("division by zero polynomial")
	// ErrNotInvertible is returned when a polynomial shares a factor with the modulus
	ErrNotInvertible = errors.New("polynomial is not invertible")
	// ErrDegreeOutOfRange is returned for field degrees outside 1..MaxDegree
	ErrDegreeOutOfRange = errors.New("field degree out of range")
	// ErrReducibleModulus is returned when a field modulus has a nontrivial factor
	ErrReducibleModulus = errors.New("modulus is reducible")
	// ErrFieldMismatch is returned when combining elements of different fields
	ErrFieldMismatch = errors.New("elements belong to different fields")
)

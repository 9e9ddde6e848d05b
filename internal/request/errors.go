package request

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a validation failure
type ErrorKind int

const (
	// KindArgsQty means the argument list does not have exactly three entries
	KindArgsQty ErrorKind = iota + 1
	// KindIntervalValue means the interval is not an integer in [0,255]
	KindIntervalValue
	// KindSiteName means the site is not an absolute URL with a host
	KindSiteName
)

// Message returns the user-facing text for the kind
func (k ErrorKind) Message() string {
	switch k {
	case KindArgsQty:
		return "Number of arguments is wrong"
	case KindIntervalValue:
		return "Wrong interval duration argument format"
	case KindSiteName:
		return "URL parsing error"
	}
	return "Unknown error"
}

// String implements fmt.Stringer
func (k ErrorKind) String() string {
	switch k {
	case KindArgsQty:
		return "args_qty"
	case KindIntervalValue:
		return "interval_value"
	case KindSiteName:
		return "site_name"
	}
	return "unknown"
}

// Error represents a request validation error
type Error struct {
	Kind  ErrorKind
	Input string
	Err   error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.Kind.Message()
	if e.Input != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Input)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new Error
func NewError(kind ErrorKind, input string, err error) *Error {
	return &Error{
		Kind:  kind,
		Input: input,
		Err:   err,
	}
}

// KindOf returns the kind of a request error anywhere in the chain, or 0
func KindOf(err error) ErrorKind {
	var reqErr *Error
	if errors.As(err, &reqErr) {
		return reqErr.Kind
	}
	return 0
}

// IsKind checks if an error is a request.Error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

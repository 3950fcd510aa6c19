package errs

import (
	"fmt"
	"net/http"
)

// ErrCode represents an error code in the system.
type ErrCode struct {
	value int
}

// Value returns the integer value of the error code.
func (ec ErrCode) Value() int {
	return ec.value
}

// String returns the string representation of the error code.
func (ec ErrCode) String() string {
	return codeNames[ec]
}

// UnmarshalText implement the unmarshal interface for JSON conversions.
func (ec *ErrCode) UnmarshalText(data []byte) error {
	errName := string(data)

	v, exists := codeNumbers[errName]
	if !exists {
		return fmt.Errorf("err code %q does not exist", errName)
	}

	*ec = v

	return nil
}

// MarshalText implement the marshal interface for JSON conversions.
func (ec ErrCode) MarshalText() ([]byte, error) {
	return []byte(ec.String()), nil
}

// The set of error codes used by the application.
var (
	OK                 = ErrCode{value: 0}
	Internal           = ErrCode{value: 1}
	InternalOnlyLog    = ErrCode{value: 2}
	InvalidArgument    = ErrCode{value: 3}
	NotFound           = ErrCode{value: 4}
	Unauthenticated    = ErrCode{value: 5}
	PermissionDenied   = ErrCode{value: 6}
	Aborted            = ErrCode{value: 7}
	FailedPrecondition = ErrCode{value: 8}
)

var codeNames = map[ErrCode]string{
	OK:                 "ok",
	Internal:           "internal",
	InternalOnlyLog:    "internal",
	InvalidArgument:    "invalid_argument",
	NotFound:           "not_found",
	Unauthenticated:    "unauthenticated",
	PermissionDenied:   "permission_denied",
	Aborted:            "aborted",
	FailedPrecondition: "failed_precondition",
}

var codeNumbers = map[string]ErrCode{
	"ok":                  OK,
	"internal":            Internal,
	"invalid_argument":    InvalidArgument,
	"not_found":           NotFound,
	"unauthenticated":     Unauthenticated,
	"permission_denied":   PermissionDenied,
	"aborted":             Aborted,
	"failed_precondition": FailedPrecondition,
}

var httpStatus = map[ErrCode]int{
	OK:                 http.StatusOK,
	Internal:           http.StatusInternalServerError,
	InternalOnlyLog:    http.StatusInternalServerError,
	InvalidArgument:    http.StatusBadRequest,
	NotFound:           http.StatusNotFound,
	Unauthenticated:    http.StatusUnauthorized,
	PermissionDenied:   http.StatusForbidden,
	Aborted:            http.StatusConflict,
	FailedPrecondition: http.StatusBadRequest,
}

package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/yungbote/workload-backend/internal/domain/aggregates"
)

// Error carries the HTTP status and a stable machine code for a failure
// that reaches the API.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// From converts err into an *Error. API errors pass through; coded aggregate
// errors get a matching status; anything else becomes a 500 with fallbackCode.
func From(err error, fallbackCode string) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	switch aggregates.CodeOf(err) {
	case aggregates.CodeValidation:
		return New(http.StatusBadRequest, fallbackCode, err)
	case aggregates.CodeNotFound:
		return New(http.StatusNotFound, fallbackCode, err)
	case aggregates.CodeConflict, aggregates.CodePreconditionFailed:
		return New(http.StatusConflict, fallbackCode, err)
	case aggregates.CodeRetryable:
		return New(http.StatusServiceUnavailable, fallbackCode, err)
	default:
		return New(http.StatusInternalServerError, fallbackCode, err)
	}
}

package rest

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusCodeRange classifies HTTP status codes by their hundreds.
type StatusCodeRange int

const (
	StatusUnknown StatusCodeRange = iota
	Status1xx
	Status2xx
	Status3xx
	Status4xx
	Status5xx
)

var rangeNames = map[StatusCodeRange]string{
	Status1xx: "informational response",
	Status2xx: "success",
	Status3xx: "redirect",
	Status4xx: "client error",
	Status5xx: "server error",
}

func (sc StatusCodeRange) String() string {
	if name, ok := rangeNames[sc]; ok {
		return name
	}
	return fmt.Sprintf("unknown (%d)", sc)
}

// RangeOf returns the range of the status code.
//
// Codes below 200 are treated as 1xx, and codes 600 or larger are unknown.
func RangeOf(code int) StatusCodeRange {
	if code >= 600 {
		return StatusUnknown
	}
	if code < 200 {
		return Status1xx
	}
	return StatusCodeRange(code / 100)
}

// StatusError is an error response from the backend.
type StatusError struct {
	Code int
}

func (se *StatusError) Error() string {
	return fmt.Sprintf("%s (status code = %d)", se.Range(), se.Code)
}

func (se *StatusError) Range() StatusCodeRange {
	return RangeOf(se.Code)
}

// IsRetryable tells whether the request failed with err is worth to send again.
//
// Server errors, 408 and 429 are retryable, and also failures without response.
// Other error responses are not.
func IsRetryable(err error) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return true
	}
	switch se.Code {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	}
	return se.Range() == Status5xx
}

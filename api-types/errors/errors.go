package errors

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorMessage is the error payload of the studio backend.
//
// The backend answers with `{"detail": ...}` for request validation errors and
// with `{"message": ...}` (optionally with `status`) for application errors.
type ErrorMessage struct {
	Detail  string `json:"detail,omitempty"`
	Message string `json:"message,omitempty"`
	Status  string `json:"status,omitempty"`
	Cause   error  `json:"-"`
}

func (em *ErrorMessage) UnmarshalJSON(bytes []byte) error {
	f := new(struct {
		Detail  json.RawMessage `json:"detail"`
		Message *string         `json:"message"`
		Status  *string         `json:"status"`
	})
	if err := json.Unmarshal(bytes, f); err != nil {
		return err
	}

	if f.Detail == nil && f.Message == nil {
		return fmt.Errorf(`required field missing: "detail" or "message"`)
	}

	if f.Detail != nil {
		// detail is a string, or a list of validation errors.
		var s string
		if err := json.Unmarshal(f.Detail, &s); err == nil {
			em.Detail = s
		} else {
			em.Detail = string(f.Detail)
		}
	}
	if f.Message != nil {
		em.Message = *f.Message
	}
	if f.Status != nil {
		em.Status = *f.Status
	}

	return nil
}

func (e ErrorMessage) String() string {
	lines := []string{}
	if e.Message != "" {
		lines = append(lines, e.Message)
	}
	if e.Detail != "" {
		lines = append(lines, e.Detail)
	}
	if e.Cause != nil {
		lines = append(lines, fmt.Sprint(" caused by:", e.Cause.Error()))
	}
	return strings.Join(lines, "\n")
}

func (e ErrorMessage) Error() string {
	return e.String()
}

func (e ErrorMessage) Unwrap() error {
	return e.Cause
}

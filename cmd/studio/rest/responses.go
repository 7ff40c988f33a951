package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apierr "github.com/opst/synthstudio/api-types/errors"
	cerr "github.com/opst/synthstudio/cmd/studio/errors"
)

type MessageFor map[StatusCodeRange]string

// unmarshal http response which has json content.
//
// args:
//   - resp: http response to be processed.
//   - v: value which response should be.
//   - messageFor: title of error message for HTTP status code range.
//
// return:
//
//	error if...
//	- can not read response body
//	- response body is not shaped of v
//	- status code is in 4xx or 5xx. The error wraps *StatusError.
func unmarshalJsonResponse[T any](resp *http.Response, v *T, messageFor MessageFor) error {
	if RangeOf(resp.StatusCode) <= Status2xx {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			message := fmt.Sprintf("unexpected response: %s (status code = %d)", err.Error(), resp.StatusCode)
			return cerr.NewCuiError(message, cerr.WithCause(err))
		}
		return nil
	}
	return errorResponse(resp, messageFor)
}

// errorResponse builds an error from a response with status code 3xx or larger.
func errorResponse(resp *http.Response, messageFor MessageFor) error {
	scr := RangeOf(resp.StatusCode)
	message, ok := messageFor[scr]
	if !ok {
		message = scr.String()
	}
	status := &StatusError{Code: resp.StatusCode}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return cerr.NewCuiError(
			fmt.Sprintf("%s\ncannot read server message: %s", message, err.Error()),
			cerr.WithCause(status),
		)
	}

	detail := parseErrorMessage(body)
	return cerr.NewCuiError(
		message,
		cerr.WithCause(status),
		cerr.WithDetail(func(summary string) (string, error) {
			if detail == "" {
				return summary, nil
			}
			return summary + "\n" + detail, nil
		}),
	)
}

func unmarshalStreamResponse(resp *http.Response, messageFor MessageFor) (io.ReadCloser, error) {
	if RangeOf(resp.StatusCode) <= Status2xx {
		return resp.Body, nil
	}
	return nil, errorResponse(resp, messageFor)
}

func unmarshalResponseDiscardingPayload(resp *http.Response, messageFor MessageFor) error {
	rc, err := unmarshalStreamResponse(resp, messageFor)
	if rc != nil {
		io.Copy(io.Discard, rc)
		rc.Close()
	}
	return err
}

// parseErrorMessage extracts message from error response body.
//
// Bodies not in the form of the backend error payload are returned as they are.
func parseErrorMessage(body []byte) string {
	eresp := apierr.ErrorMessage{}
	if err := json.Unmarshal(body, &eresp); err == nil {
		return eresp.String()
	}
	return string(body)
}

package errors

import (
	"errors"
	"fmt"
	"strings"
)

type Verbose interface {
	Verbose() string
}

// CUIError is an error to be shown to the user of the command.
type CUIError interface {
	error
	Verbose

	// Advice tells the user what to do next. Empty if there is no advice.
	Advice() string
}

type cuierror struct {
	summary     string
	verbose     string
	advice      string
	printDetail func(summary string) (string, error)
	base        error
}

func (ce *cuierror) Unwrap() error {
	return ce.base
}

func (ce *cuierror) Error() string {
	message := ce.summary
	if ce.printDetail != nil {
		m, err := ce.printDetail(ce.summary)
		if err != nil {
			m = fmt.Sprintf(
				"%s\n(building detailed message causes error: %s)",
				ce.summary, err.Error(),
			)
		}
		message = m
	}
	if ce.advice != "" {
		message += "\n\n" + ce.advice
	}
	return message
}

func (ce *cuierror) Advice() string {
	return ce.advice
}

func (ce *cuierror) Verbose() string {
	message := []string{ce.Error()}
	if ce.verbose != "" {
		message = append(message, " ("+ce.verbose+") ")
	}

	switch base := ce.base.(type) {
	case nil:
	case Verbose:
		message = append(message, "caused by: ", base.Verbose())
	default:
		message = append(message, "caused by: ", base.Error())
	}
	return strings.Join(message, "\n")
}

type CuiErrorOption func(cerr *cuierror) *cuierror

func NewCuiError(
	summary string,
	options ...CuiErrorOption,
) CUIError {
	err := &cuierror{summary: summary}
	for _, o := range options {
		err = o(err)
	}
	return err
}

func WithVerbose(verbose string) CuiErrorOption {
	return func(cerr *cuierror) *cuierror {
		cerr.verbose = verbose
		return cerr
	}
}

func WithDetail(printer func(summary string) (string, error)) CuiErrorOption {
	return func(cerr *cuierror) *cuierror {
		cerr.printDetail = printer
		return cerr
	}
}

func WithCause(err error) CuiErrorOption {
	return func(cerr *cuierror) *cuierror {
		cerr.base = err
		return cerr
	}
}

func WithAdvice(advice string) CuiErrorOption {
	return func(cerr *cuierror) *cuierror {
		cerr.advice = advice
		return cerr
	}
}

// AdviceOf finds the first advice in the error chain.
func AdviceOf(err error) (string, bool) {
	var ce CUIError
	for err != nil {
		if !errors.As(err, &ce) {
			return "", false
		}
		if a := ce.Advice(); a != "" {
			return a, true
		}
		err = errors.Unwrap(ce)
	}
	return "", false
}

package submission

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/opst/synthstudio/api-types/synthesis"
	"github.com/opst/synthstudio/pkg/wizard"
)

var ErrAlreadySubmitted = errors.New("the job has been submitted already")

// StartOver is the advice for a failed submission.
const StartOver = "Start over the wizard to submit the job again."

// SubmitError is a failure of posting the job. It is not retried.
type SubmitError struct {
	Payload Payload
	Err     error
}

func (se *SubmitError) Error() string {
	return fmt.Sprintf("failed to submit the job to %s: %s", se.Payload.Endpoint, se.Err)
}

func (se *SubmitError) Unwrap() error {
	return se.Err
}

// Submitter posts a job.
type Submitter interface {
	Submit(ctx context.Context, endpoint string, req synthesis.Request) (synthesis.Result, error)
}

// Section is rows of a topic in the preview.
type Section struct {
	// Topic is empty for rows not grouped by topic.
	Topic string             `json:"topic,omitempty"`
	Rows  []synthesis.Record `json:"rows"`
}

// Outcome is what the Finish step shows.
type Outcome struct {
	Payload Payload          `json:"payload"`
	Result  synthesis.Result `json:"result"`

	// Preview is set for demo jobs.
	Preview []Section `json:"preview,omitempty"`
}

// IsJob reports whether the job runs in the backend, and is to be monitored.
func (o Outcome) IsJob() bool {
	return o.Result.IsJob()
}

// PreviewOf groups rows of the result by topic, in order of requested topics.
func PreviewOf(r synthesis.Result, topics []string) []Section {
	if r.Results.ByTopic == nil {
		if len(r.Results.Rows) == 0 {
			return nil
		}
		return []Section{{Rows: r.Results.Rows}}
	}
	ret := []Section{}
	for _, t := range r.Results.Topics(topics) {
		ret = append(ret, Section{Topic: t, Rows: r.Results.ByTopic[t]})
	}
	return ret
}

// Finisher submits the job of a wizard once.
type Finisher struct {
	submitter Submitter

	mu        sync.Mutex
	submitted bool
}

func NewFinisher(s Submitter) *Finisher {
	return &Finisher{submitter: s}
}

// Finish posts the job built from the configuration.
//
// It fails with ErrStepIncomplete when a step is incomplete, and nothing is posted.
// The job is posted at most once. Later calls return ErrAlreadySubmitted,
// even if the first one fails with *SubmitError.
func (f *Finisher) Finish(ctx context.Context, c wizard.JobConfiguration) (Outcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.submitted {
		return Outcome{}, ErrAlreadySubmitted
	}
	if err := wizard.CheckUntil(wizard.Finish, c); err != nil {
		return Outcome{}, err
	}

	payload := Build(c)
	f.submitted = true
	result, err := f.submitter.Submit(ctx, payload.Endpoint, payload.Request)
	if err != nil {
		return Outcome{Payload: payload}, &SubmitError{Payload: payload, Err: err}
	}

	o := Outcome{Payload: payload, Result: result}
	if !result.IsJob() {
		o.Preview = PreviewOf(result, c.Topics)
	}
	return o, nil
}

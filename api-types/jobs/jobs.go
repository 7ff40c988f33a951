package jobs

import "strings"

// Status is a state of a backend job, as reported in history records.
//
// Empty Status means no job has been executed for the record.
type Status string

const (
	None       Status = ""
	Scheduling Status = "ENGINE_SCHEDULING"
	Running    Status = "ENGINE_RUNNING"
	Succeeded  Status = "ENGINE_SUCCEEDED"
	Stopped    Status = "ENGINE_STOPPED"
	TimedOut   Status = "ENGINE_TIMEDOUT"

	// statuses below are reported by the job engine but not by history listings usually.

	Starting Status = "STARTING"
	Stopping Status = "STOPPING"
	Failed   Status = "FAILED"
	Unknown  Status = "UNKNOWN"
)

// UnmarshalText accepts `null`-ish values as None.
func (s *Status) UnmarshalText(b []byte) error {
	v := strings.TrimSpace(string(b))
	switch strings.ToLower(v) {
	case "", "null", "none":
		*s = None
	default:
		*s = Status(strings.ToUpper(v))
	}
	return nil
}

func (s Status) String() string {
	if s == None {
		return "none"
	}
	return string(s)
}

// Terminal reports whether the job will not change its status anymore.
func (s Status) Terminal() bool {
	switch s {
	case Succeeded, Stopped, TimedOut, Failed:
		return true
	default:
		return false
	}
}

// Reference is an acknowledgment of an asynchronous job.
type Reference struct {
	JobName string `json:"job_name"`
	JobId   string `json:"job_id"`
}

func (r Reference) Equal(o Reference) bool {
	return r.JobName == o.JobName && r.JobId == o.JobId
}

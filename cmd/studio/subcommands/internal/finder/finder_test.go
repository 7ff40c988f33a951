package finder_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/opst/synthstudio/api-types/jobs"
	"github.com/opst/synthstudio/cmd/studio/env"
	srest "github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/cmd/studio/rest/mock"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	"github.com/opst/synthstudio/cmd/studio/subcommands/internal/commandline"
	"github.com/opst/synthstudio/cmd/studio/subcommands/internal/finder"
	"github.com/opst/synthstudio/cmd/studio/subcommands/logger"
	"github.com/opst/synthstudio/pkg/listing"
	"github.com/youta-t/flarc"
)

type record struct {
	N string      `json:"name"`
	S jobs.Status `json:"status"`
	T string      `json:"time"`
}

func (r record) Name() string        { return r.N }
func (r record) Status() jobs.Status { return r.S }
func (r record) Time() string        { return r.T }

var records = []record{
	{N: "alpha", S: jobs.Succeeded, T: "2024-01-01T00:00:00"},
	{N: "Beta", S: jobs.Running, T: "2024-01-03T00:00:00"},
	{N: "gamma", S: jobs.Stopped, T: "2024-01-02T00:00:00"},
	{N: "alphabet", S: jobs.None, T: "2024-01-04T00:00:00"},
}

func newListing(fetch func(context.Context) ([]record, error)) finder.Listing[record] {
	return finder.Listing[record]{
		CacheKey: "records",
		Fetch: func(ctx context.Context, _ srest.StudioClient) ([]record, error) {
			return fetch(ctx)
		},
		Columns: []listing.Column[record]{
			{Header: "NAME", Value: record.Name},
		},
	}
}

func TestFind(t *testing.T) {
	type When struct {
		flags finder.Flags
	}
	type Then struct {
		names []string
	}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			l := newListing(func(context.Context) ([]record, error) {
				return records, nil
			})
			stdout := new(strings.Builder)
			err := finder.Task(l)(
				context.Background(), logger.Null(), common.Session{}, mock.New(t),
				commandline.MockCommandline[finder.Flags]{Stdout_: stdout, Flags_: when.flags},
				nil,
			)
			if err != nil {
				t.Fatal(err)
			}

			actual := []record{}
			if err := json.Unmarshal([]byte(stdout.String()), &actual); err != nil {
				t.Fatal(err)
			}
			names := []string{}
			for _, r := range actual {
				names = append(names, r.N)
			}
			if strings.Join(names, ",") != strings.Join(then.names, ",") {
				t.Errorf("names: actual=%v, expected=%v", names, then.names)
			}
		}
	}

	t.Run("newest first by default flags", theory(
		When{flags: finder.Flags{Sort: "time", Desc: true, Page: 1}},
		Then{names: []string{"alphabet", "Beta", "gamma", "alpha"}},
	))

	t.Run("search ignores case", theory(
		When{flags: finder.Flags{Search: "ALPHA", Sort: "name", Page: 1}},
		Then{names: []string{"alpha", "alphabet"}},
	))

	t.Run("pagination", theory(
		When{flags: finder.Flags{Sort: "name", Page: 2, PageSize: 3}},
		Then{names: []string{"gamma"}},
	))

	t.Run("page out of range is empty", theory(
		When{flags: finder.Flags{Sort: "name", Page: 5, PageSize: 3}},
		Then{names: []string{}},
	))
}

func TestFind_Table(t *testing.T) {
	l := newListing(func(context.Context) ([]record, error) { return records[:1], nil })
	stdout := new(strings.Builder)
	err := finder.Task(l)(
		context.Background(), logger.Null(), common.Session{}, mock.New(t),
		commandline.MockCommandline[finder.Flags]{
			Stdout_: stdout,
			Flags_:  finder.Flags{Sort: "time", Page: 1, Table: true},
		},
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	out := stdout.String()
	for _, expected := range []string{"NAME", "STATUS", "alpha", "Success!"} {
		if !strings.Contains(out, expected) {
			t.Errorf("%q is not in output:\n%s", expected, out)
		}
	}
}

func TestFind_Errors(t *testing.T) {
	t.Run("unknown sort key is usage error", func(t *testing.T) {
		l := newListing(func(context.Context) ([]record, error) {
			t.Error("it should not fetch")
			return nil, nil
		})
		err := finder.Task(l)(
			context.Background(), logger.Null(), common.Session{}, mock.New(t),
			commandline.MockCommandline[finder.Flags]{
				Stdout_: new(strings.Builder),
				Flags_:  finder.Flags{Sort: "size", Page: 1},
			},
			nil,
		)
		if !errors.Is(err, flarc.ErrUsage) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("negative page size is usage error", func(t *testing.T) {
		l := newListing(func(context.Context) ([]record, error) { return nil, nil })
		err := finder.Task(l)(
			context.Background(), logger.Null(), common.Session{}, mock.New(t),
			commandline.MockCommandline[finder.Flags]{
				Stdout_: new(strings.Builder),
				Flags_:  finder.Flags{Page: 1, PageSize: -1},
			},
			nil,
		)
		if !errors.Is(err, flarc.ErrUsage) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("fetch error is returned without --watch", func(t *testing.T) {
		expected := errors.New("fake error")
		l := newListing(func(context.Context) ([]record, error) { return nil, expected })
		err := finder.Task(l)(
			context.Background(), logger.Null(), common.Session{}, mock.New(t),
			commandline.MockCommandline[finder.Flags]{
				Stdout_: new(strings.Builder),
				Flags_:  finder.Flags{Page: 1},
			},
			nil,
		)
		if !errors.Is(err, expected) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestFind_Watch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	l := newListing(func(context.Context) ([]record, error) {
		calls += 1
		switch calls {
		case 1:
			return records[:1], nil
		case 2:
			return nil, errors.New("temporary failure")
		default:
			cancel()
			return records[1:2], nil
		}
	})

	stdout := new(strings.Builder)
	err := finder.Task(l)(
		ctx, logger.Null(),
		common.Session{Vars: env.Vars{PollInterval: 2 * time.Millisecond}},
		mock.New(t),
		commandline.MockCommandline[finder.Flags]{
			Stdout_: stdout,
			Flags_:  finder.Flags{Sort: "time", Page: 1, Watch: true},
		},
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	if calls < 3 {
		t.Errorf("fetch is called only %d times", calls)
	}
	out := stdout.String()
	if !strings.Contains(out, `"alpha"`) || !strings.Contains(out, `"Beta"`) {
		t.Errorf("unexpected output:\n%s", out)
	}
}

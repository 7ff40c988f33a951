// Package finder implements "find" commands of listings.
package finder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/opst/synthstudio/api-types/jobs"
	srest "github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	"github.com/opst/synthstudio/pkg/listing"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Search   string `flag:"search" alias:"s" metavar:"TEXT" help:"Find records whose display name contains TEXT, ignoring case."`
	Sort     string `flag:"sort" metavar:"time|name|status" help:"Sort key."`
	Desc     bool   `flag:"desc" help:"Sort in descending order."`
	Page     int    `flag:"page" metavar:"N" help:"Show N-th page (1-origin)."`
	PageSize int    `flag:"page-size" metavar:"SIZE" help:"Records per page. 0 shows all."`
	Watch    bool   `flag:"watch" alias:"w" help:"Keep fetching the listing periodically, until interrupted."`
	Table    bool   `flag:"table" help:"Print a text table instead of JSON."`
}

// Listing describes a listing page.
type Listing[R listing.Record] struct {
	// CacheKey is the key of the listing in the cache store.
	CacheKey string

	// Fetch gets all records.
	Fetch func(context.Context, srest.StudioClient) ([]R, error)

	// Columns are columns of --table output, except the status.
	Columns []listing.Column[R]

	// Overrides are tooltips of statuses specific to the listing.
	Overrides map[jobs.Status]string
}

func New[R listing.Record](synopsis string, description string, l Listing[R]) (flarc.Command, error) {
	return flarc.NewCommand(
		synopsis,
		Flags{Sort: string(listing.ByTime), Desc: true, Page: 1},
		flarc.Args{},
		common.NewTask(Task(l)),
		flarc.WithDescription(description+`
Records are filtered by --search, and then sorted and paginated.

With --watch, the listing is fetched again every STUDIO_POLL_INTERVAL (default: 15s).
When STUDIO_CACHE_URL (redis://...) is set, the listing is shared through redis
with other studio commands.
`),
	)
}

func Task[R listing.Record](l Listing[R]) common.Task[Flags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		session common.Session,
		client srest.StudioClient,
		cl flarc.Commandline[Flags],
		_ []any,
	) error {
		flags := cl.Flags()
		key, err := listing.ParseSortKey(flags.Sort)
		if err != nil {
			return fmt.Errorf("%w: %w", flarc.ErrUsage, err)
		}
		if flags.PageSize < 0 {
			return fmt.Errorf("%w: --page-size should not be negative", flarc.ErrUsage)
		}

		store, err := session.Cache()
		if err != nil {
			return err
		}
		defer store.Close()
		interval := session.PollInterval()
		fetch := listing.Cached(
			store, l.CacheKey, interval/2,
			func(ctx context.Context) ([]R, error) { return l.Fetch(ctx, client) },
		)

		render := func(records []R) error {
			selected := listing.SortBy(listing.Search(records, flags.Search), key, flags.Desc)
			page := listing.Paginate(selected, flags.Page, flags.PageSize)
			return Print(cl.Stdout(), page, flags.Table, l)
		}

		if !flags.Watch {
			records, err := fetch(ctx)
			if err != nil {
				return err
			}
			return render(records)
		}

		poller := listing.NewPoller(
			fetch,
			listing.WithInterval[R](interval),
			listing.WithErrorHandler[R](func(err error) error {
				if errors.Is(err, context.Canceled) {
					return err
				}
				logger.Printf("failed to fetch, retry in %s: %s", interval, err)
				return nil
			}),
		)
		poller.Subscribe(listing.Anything[R](), func(records []R) error {
			if flags.Table {
				fmt.Fprintf(cl.Stdout(), "# %s\n", time.Now().Format(time.RFC3339))
			}
			return render(records)
		})
		if err := poller.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}
}

// Print writes records as JSON, or as a table.
func Print[R listing.Record](w io.Writer, records []R, table bool, l Listing[R]) error {
	if table {
		columns := append([]listing.Column[R]{}, l.Columns...)
		columns = append(columns, listing.StatusColumn[R](l.Overrides))
		_, err := fmt.Fprintln(w, listing.Table(records, columns...))
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(records)
}

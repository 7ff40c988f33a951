package listing

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/opst/synthstudio/api-types/jobs"
)

var ErrUnknownSortKey = errors.New("unknown sort key")

// Record is a row of listing pages.
type Record interface {
	// Name is the display name.
	Name() string

	Status() jobs.Status

	// Time is the timestamp, as the backend reports.
	Time() string
}

// Search returns records whose display name contains the query, ignoring case.
//
// Empty query matches everything.
func Search[R Record](records []R, query string) []R {
	q := strings.ToLower(strings.TrimSpace(query))
	ret := make([]R, 0, len(records))
	for _, r := range records {
		if q == "" || strings.Contains(strings.ToLower(r.Name()), q) {
			ret = append(ret, r)
		}
	}
	return ret
}

type SortKey string

const (
	ByTime   SortKey = "time"
	ByName   SortKey = "name"
	ByStatus SortKey = "status"
)

func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(s)); k {
	case ByTime, ByName, ByStatus:
		return k, nil
	case "":
		return ByTime, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownSortKey, s)
	}
}

// SortBy returns records sorted by the key. Ties keep the original order.
//
// Timestamps are compared as strings: the backend sends ISO 8601.
func SortBy[R Record](records []R, key SortKey, desc bool) []R {
	ret := slices.Clone(records)
	var cmp func(a, b R) int
	switch key {
	case ByName:
		cmp = func(a, b R) int { return strings.Compare(strings.ToLower(a.Name()), strings.ToLower(b.Name())) }
	case ByStatus:
		cmp = func(a, b R) int { return strings.Compare(string(a.Status()), string(b.Status())) }
	default:
		cmp = func(a, b R) int { return strings.Compare(a.Time(), b.Time()) }
	}
	if desc {
		asc := cmp
		cmp = func(a, b R) int { return asc(b, a) }
	}
	slices.SortStableFunc(ret, cmp)
	return ret
}

// Paginate returns the page-th page (1-origin) of records.
//
// size <= 0 means all records in one page.
func Paginate[R any](records []R, page int, size int) []R {
	if size <= 0 {
		if page <= 1 {
			return records
		}
		return []R{}
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if len(records) <= start {
		return []R{}
	}
	end := min(start+size, len(records))
	return records[start:end]
}

// Pages returns the number of pages.
func Pages(total int, size int) int {
	if size <= 0 || total == 0 {
		return 1
	}
	return (total + size - 1) / size
}

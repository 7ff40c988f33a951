package common

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/opst/synthstudio/cmd/studio/config/profiles"
	"github.com/opst/synthstudio/cmd/studio/env"
	"github.com/opst/synthstudio/pkg/cache"
	"github.com/opst/synthstudio/pkg/listing"
)

// Session is what a command knows about the place it runs in.
type Session struct {
	Env       env.StudioEnv
	Vars      env.Vars
	Profile   profiles.StudioProfile
	StateFile string
}

// Links makes urls into the workbench of the profile.
func (s Session) Links() listing.Links {
	return listing.Links{
		Workbench: s.Profile.Workbench.Url,
		Owner:     s.Profile.Workbench.Owner,
		Project:   s.Profile.Workbench.Project,
	}
}

// PollInterval is the interval of refetching listings.
func (s Session) PollInterval() time.Duration {
	if s.Vars.PollInterval <= 0 {
		return listing.DefaultInterval
	}
	return s.Vars.PollInterval
}

// CacheNamespace prefixes cache keys of the session.
//
// It is derived from the api root, so profiles of different backends
// sharing a redis do not see listings of each other.
func (s Session) CacheNamespace() string {
	sum := sha256.Sum256([]byte(s.Profile.ApiRoot))
	return "studio:" + hex.EncodeToString(sum[:8])
}

// Cache returns the listing cache. Close it after use.
//
// It is redis when STUDIO_CACHE_URL is set, shared by processes.
// Otherwise, it is in the memory of this process.
func (s Session) Cache() (cache.Store, error) {
	if s.Vars.CacheUrl == "" {
		return cache.NewMemory(), nil
	}
	return cache.FromUrl(s.Vars.CacheUrl, s.CacheNamespace())
}

// InvalidateListings drops cached listings after mutations,
// so that watchers sharing the redis cache fetch them at their next tick.
//
// Without STUDIO_CACHE_URL, nothing is shared and it does nothing.
func (s Session) InvalidateListings(ctx context.Context, keys ...string) error {
	if s.Vars.CacheUrl == "" {
		return nil
	}
	store, err := s.Cache()
	if err != nil {
		return err
	}
	defer store.Close()
	return listing.Invalidate(ctx, store, keys...)
}

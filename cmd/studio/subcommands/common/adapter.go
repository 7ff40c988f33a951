package common

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/opst/synthstudio/cmd/studio/config/profiles"
	"github.com/opst/synthstudio/cmd/studio/env"
	srest "github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/cmd/studio/subcommands/logger"
	"github.com/youta-t/flarc"
)

type StudioTaskWithCommonFlag[T any] func(
	ctx context.Context,
	logger *log.Logger,
	commonFlag CommonFlags,
	cl flarc.Commandline[T],
	params []any,
) error

func NewTaskWithCommonFlag[T any](task StudioTaskWithCommonFlag[T]) flarc.Task[T] {
	return func(ctx context.Context, cl flarc.Commandline[T], pos []any) error {
		var commonFlag CommonFlags
		found := false
		newpos := make([]any, 0, len(pos))
		for _, p := range pos {
			switch v := p.(type) {
			case CommonFlags:
				found = true
				commonFlag = v
			default:
				newpos = append(newpos, p)
			}
		}
		if !found {
			return errors.New("programming error: common flags not found")
		}

		var w io.Writer = cl.Stderr()
		if commonFlag.LogFile != "" {
			file := logger.Rotating(commonFlag.LogFile)
			defer file.Close()
			w = io.MultiWriter(w, file)
		}
		logger := log.New(w, "", log.LstdFlags)
		logger.SetPrefix(fmt.Sprintf("[%s] ", cl.Fullname()))

		return task(ctx, logger, commonFlag, cl, newpos)
	}
}

type Task[T any] func(
	ctx context.Context,
	logger *log.Logger,
	session Session,
	client srest.StudioClient,
	cl flarc.Commandline[T],
	params []any,
) error

func NewTask[T any](task Task[T]) flarc.Task[T] {
	return NewTaskWithCommonFlag(func(
		ctx context.Context,
		logger *log.Logger,
		commonFlag CommonFlags,
		cl flarc.Commandline[T],
		params []any,
	) error {
		session, client, err := Connect(commonFlag)
		if err != nil {
			return err
		}
		return task(ctx, logger, session, client, cl, params)
	})
}

// Connect loads the profile and environments, and creates a client for them.
func Connect(commonFlag CommonFlags, options ...srest.ClientOption) (Session, srest.StudioClient, error) {
	store, err := profiles.LoadProfileStore(commonFlag.ProfileStore)
	if err != nil {
		if errors.Is(err, profiles.ErrProfileStoreNotFound) || errors.Is(err, os.ErrNotExist) {
			return Session{}, nil, fmt.Errorf(
				"%w: studio profile store (%s) is not found. Please try `studio init` first",
				err, commonFlag.ProfileStore,
			)
		}
		return Session{}, nil, fmt.Errorf(
			"%w: failed to load studio profile store (%s)",
			err, commonFlag.ProfileStore,
		)
	}
	prof, err := store.Get(commonFlag.Profile)
	if err != nil {
		return Session{}, nil, fmt.Errorf(
			"%w: profile '%s' in the profile store (%s)",
			err, commonFlag.Profile, commonFlag.ProfileStore,
		)
	}

	e, err := env.LoadStudioEnv(commonFlag.Env)
	if err != nil {
		return Session{}, nil, fmt.Errorf("%w: failed to load studioenv", err)
	}

	vars, err := env.LoadVars(commonFlag.DotEnv)
	if err != nil {
		return Session{}, nil, fmt.Errorf("failed to read STUDIO_* environment variables: %w", err)
	}

	p := vars.Apply(*prof)
	client, err := srest.NewClient(&p, options...)
	if err != nil {
		return Session{}, nil, fmt.Errorf(
			"%w: failed to create studio client. Your studio profile (%s in %s) can be broken.\n\nRemove it and try `studio init` again",
			err, commonFlag.Profile, commonFlag.ProfileStore,
		)
	}

	return Session{
		Env:       *e,
		Vars:      vars,
		Profile:   p,
		StateFile: StateFile(commonFlag.ProfileStore),
	}, client, nil
}

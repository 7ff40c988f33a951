package common

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

type CommonFlags struct {
	Profile      string `flag:"profile" help:"studio profile name to use"`
	ProfileStore string `flag:"profile-store" help:"path to studio profile store file"`
	Env          string `flag:"env" help:"path to studioenv file"`
	DotEnv       string `flag:"dotenv" help:"path to .env file setting STUDIO_* variables"`
	LogFile      string `flag:"log-file" metavar:"path/to/file.log" help:"write logs also into this file. It is rotated."`
}

type commonFlagDetection struct {
	home string
}

type CommonFlagDetectionOption func(*commonFlagDetection) *commonFlagDetection

func WithHome(home string) CommonFlagDetectionOption {
	return func(opt *commonFlagDetection) *commonFlagDetection {
		opt.home = home
		return opt
	}
}

// StateFile is the path of the local state file in the studio directory.
func StateFile(profileStore string) string {
	return path.Join(path.Dir(profileStore), "state.yaml")
}

// Flags detects default values of common flags.
//
// ".studioprofile" (holding the profile name), "studioenv" and ".env" are
// searched from the directory up to the root. The nearest one wins.
func Flags(from string, opt ...CommonFlagDetectionOption) (CommonFlags, error) {
	detparam := commonFlagDetection{}
	for _, o := range opt {
		detparam = *o(&detparam)
	}

	home := detparam.home
	if home == "" {
		if h, err := os.UserHomeDir(); err == nil {
			home = h
		}
	}

	if _from, err := filepath.Abs(from); err == nil {
		from = _from
	}

	profile := from
	env := path.Join(from, "studioenv")
	dotenv := path.Join(from, ".env")

	found := map[string]bool{}
	isFile := func(p string) bool {
		s, err := os.Stat(p)
		return err == nil && s.Mode().IsRegular()
	}

	for searchpath := from; ; {
		if candidate := path.Join(searchpath, ".studioprofile"); !found["profile"] && isFile(candidate) {
			content, err := os.ReadFile(candidate)
			if err != nil {
				return CommonFlags{}, err
			}
			found["profile"] = true
			if p := strings.Split(string(content), "\n"); 0 < len(p) {
				profile = strings.TrimSpace(p[0])
			}
		}
		if candidate := path.Join(searchpath, "studioenv"); !found["env"] && isFile(candidate) {
			found["env"] = true
			env = candidate
		}
		if candidate := path.Join(searchpath, ".env"); !found["dotenv"] && isFile(candidate) {
			found["dotenv"] = true
			dotenv = candidate
		}

		if found["profile"] && found["env"] && found["dotenv"] {
			break
		}

		next := path.Dir(searchpath)
		if next == searchpath {
			break
		}
		searchpath = next
	}

	return CommonFlags{
		Profile:      profile,
		ProfileStore: path.Join(home, ".studio", "profile"),
		Env:          env,
		DotEnv:       dotenv,
	}, nil
}

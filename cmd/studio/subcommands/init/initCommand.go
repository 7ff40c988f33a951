package init

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	prof "github.com/opst/synthstudio/cmd/studio/config/profiles"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	"github.com/opst/synthstudio/cmd/studio/subcommands/welcome"
	"github.com/youta-t/flarc"
)

const ARG_PROFILE_FILE = "PROFILE_FILE"

// ProfileNameFile is the file marking the directory as a studio project.
const ProfileNameFile = ".studioprofile"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Initialize this directory as a studio project.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_PROFILE_FILE, Required: true,
				Help: "filepath to a studio profile file, which points the backend of the studio.",
			},
		},
		common.NewTaskWithCommonFlag(Task),
		flarc.WithDescription(`
Register a studio profile into your profile store.

A studio profile is a yaml file like below:

	apiRoot: https://studio.example.com/api
	cert:
	    ca: <base64 encoded PEM, optional>
	workbench:
	    url: https://workbench.example.com   # optional, for links to jobs and files
	    owner: your-name
	    project: your-project

"{{ .Command }}" registers the given profile into your profile store,
and writes its name into ./.studioprofile.

The name of the profile is given by "--profile" ( default: current filepath ).
`),
	)
}

func Task(
	ctx context.Context,
	logger *log.Logger,
	cf common.CommonFlags,
	cl flarc.Commandline[struct{}],
	_ []any,
) error {
	profFile := cl.Args()[ARG_PROFILE_FILE][0]

	profStore, err := prof.LoadProfileStore(cf.ProfileStore)
	if errors.Is(err, prof.ErrProfileStoreNotFound) {
		profStore = prof.ProfileStore{}
	} else if err != nil {
		return fmt.Errorf("failed to load profile store (%s): %w", cf.ProfileStore, err)
	}

	newProf := new(prof.StudioProfile)
	{
		content, err := os.ReadFile(profFile)
		if err != nil {
			return fmt.Errorf("failed to read profile file (%s): %w", profFile, err)
		}
		if err := yaml.Unmarshal(content, newProf); err != nil {
			return fmt.Errorf("%w: failed to parse profile file (%s): %w", prof.ErrProfileInvalid, profFile, err)
		}
	}
	if err := newProf.Verify(); err != nil {
		return fmt.Errorf("%s: %w", profFile, err)
	}

	profName := cf.Profile
	profStore[profName] = newProf
	if err := profStore.Save(cf.ProfileStore); err != nil {
		return fmt.Errorf("failed to save profile store (%s): %w", cf.ProfileStore, err)
	}
	logger.Printf("profile %s is saved to %s", profName, cf.ProfileStore)

	if err := os.WriteFile(ProfileNameFile, []byte(profName), os.FileMode(0600)); err != nil {
		return fmt.Errorf("failed to write %s: %w", ProfileNameFile, err)
	}

	if err := welcome.Show(cl.Stdout(), common.StateFile(cf.ProfileStore)); err != nil {
		logger.Printf("failed to read %s: %s", common.StateFile(cf.ProfileStore), err)
	}
	return nil
}

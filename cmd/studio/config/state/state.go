package state

import (
	"fmt"
	"os"

	"github.com/opst/synthstudio/cmd/studio/config/open"
	"gopkg.in/yaml.v3"
)

// State is local state of the studio command kept between invocations.
type State struct {
	// WelcomeMuted is true when the user asked not to show the welcome message again.
	WelcomeMuted bool `yaml:"welcomeMuted"`
}

// Load reads state from file. When the file does not exist, it returns zero value.
func Load(path string) (State, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{}, nil
		}
		return State{}, err
	}
	s := State{}
	if err := yaml.Unmarshal(buf, &s); err != nil {
		return State{}, fmt.Errorf("broken state file at %s: %w", path, err)
	}
	return s, nil
}

func (s State) Save(path string) error {
	buf, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return open.WriteWithBackup(path, buf)
}

package profiles

import (
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/opst/synthstudio/cmd/studio/config/open"
	yaml "gopkg.in/yaml.v3"
)

var ErrProfileStoreNotFound = errors.New("profile store is not found")
var ErrProfileNotFound = errors.New("profile is not found")
var ErrProfileInvalid = errors.New("studio profile is invalid")

// ProfileStore maps profile names to StudioProfile.
type ProfileStore map[string]*StudioProfile

type Cert struct {
	// base64 encoded PEM of CA certificate
	CA string `yaml:"ca,omitempty"`
}

// Workbench locates the project hosting the studio.
//
// It is used only to build links to the workbench UI.
type Workbench struct {
	Url     string `yaml:"url,omitempty"`
	Owner   string `yaml:"owner,omitempty"`
	Project string `yaml:"project,omitempty"`
}

// StudioProfile is a connection profile for a studio backend.
type StudioProfile struct {
	// root URL of the backend API
	ApiRoot string `yaml:"apiRoot"`

	Cert Cert `yaml:"cert,omitempty"`

	Workbench Workbench `yaml:"workbench,omitempty"`
}

func verifyUrl(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

func verifyPEM(b64cert string) bool {
	bin, err := base64.StdEncoding.DecodeString(b64cert)
	if err != nil {
		return false
	}
	blk, _ := pem.Decode(bin)
	return blk != nil
}

// Verify returns nil if the profile is valid, otherwise ErrProfileInvalid.
func (p *StudioProfile) Verify() error {
	if !verifyUrl(p.ApiRoot) {
		return fmt.Errorf("%w: apiRoot is not URL: %s", ErrProfileInvalid, p.ApiRoot)
	}
	if p.Cert.CA != "" && !verifyPEM(p.Cert.CA) {
		return fmt.Errorf("%w: cert.ca is not PEM", ErrProfileInvalid)
	}
	if p.Workbench.Url != "" && !verifyUrl(p.Workbench.Url) {
		return fmt.Errorf("%w: workbench.url is not URL: %s", ErrProfileInvalid, p.Workbench.Url)
	}
	return nil
}

// LoadProfileStore loads profile store from file.
func LoadProfileStore(filepath string) (ProfileStore, error) {
	buf, err := os.ReadFile(filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrProfileStoreNotFound, filepath)
		}
		return nil, err
	}
	return Unmarshall(buf)
}

// Unmarshall profile store from yaml.
func Unmarshall(buf []byte) (ProfileStore, error) {
	ret := ProfileStore{}
	if err := yaml.Unmarshal(buf, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Get returns the named profile.
func (ps ProfileStore) Get(name string) (*StudioProfile, error) {
	p, ok := ps[name]
	if !ok || p == nil {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	return p, nil
}

// Save profile store to file.
//
// The file is readable only by the current user, since profiles can hold certificates.
func (ps ProfileStore) Save(path string) error {
	buf, err := yaml.Marshal(ps)
	if err != nil {
		return err
	}
	return open.WriteWithBackup(path, buf)
}

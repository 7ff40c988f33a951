package profiles_test

import (
	"encoding/base64"
	"encoding/pem"
	"errors"
	"path/filepath"
	"testing"

	prof "github.com/opst/synthstudio/cmd/studio/config/profiles"
	"github.com/opst/synthstudio/pkg/utils/try"
)

func TestUnmarshall(t *testing.T) {
	conf := try.To(prof.Unmarshall([]byte(`
profname:
    apiRoot: "https://studio.example.com/api"
    cert:
        ca: BASE64_ENCODED_CERT
    workbench:
        url: https://workbench.example.com
        owner: alice
        project: synth
`))).OrFatal(t)

	p, err := conf.Get("profname")
	if err != nil {
		t.Fatal(err)
	}

	expected := prof.StudioProfile{
		ApiRoot: "https://studio.example.com/api",
		Cert:    prof.Cert{CA: "BASE64_ENCODED_CERT"},
		Workbench: prof.Workbench{
			Url: "https://workbench.example.com", Owner: "alice", Project: "synth",
		},
	}
	if *p != expected {
		t.Errorf("(actual, expected) = (%+v, %+v)", *p, expected)
	}

	if _, err := conf.Get("missing"); !errors.Is(err, prof.ErrProfileNotFound) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStudioProfile_Verify(t *testing.T) {
	cacert := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: []byte("dummy")})

	for name, testcase := range map[string]struct {
		prof *prof.StudioProfile
		then error
	}{
		"when all values are valid, it is valid": {
			prof: &prof.StudioProfile{
				ApiRoot: "https://studio.example.com/api",
				Cert:    prof.Cert{CA: base64.StdEncoding.EncodeToString(cacert)},
			},
		},
		"when CA is not given, it is valid": {
			prof: &prof.StudioProfile{ApiRoot: "https://studio.example.com/api"},
		},
		"when apiRoot is not URL, it is not valid": {
			prof: &prof.StudioProfile{ApiRoot: "not url"},
			then: prof.ErrProfileInvalid,
		},
		"when CA is not PEM, it is not valid": {
			prof: &prof.StudioProfile{
				ApiRoot: "https://studio.example.com/api",
				Cert:    prof.Cert{CA: base64.StdEncoding.EncodeToString([]byte("broken cert"))},
			},
			then: prof.ErrProfileInvalid,
		},
		"when workbench url is not URL, it is not valid": {
			prof: &prof.StudioProfile{
				ApiRoot:   "https://studio.example.com/api",
				Workbench: prof.Workbench{Url: "workbench"},
			},
			then: prof.ErrProfileInvalid,
		},
	} {
		t.Run(name, func(t *testing.T) {
			if err := testcase.prof.Verify(); !errors.Is(err, testcase.then) {
				t.Errorf("(actual, expected) = (%v, %v)", err, testcase.then)
			}
		})
	}
}

func TestProfileStore_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".studio", "profile")

	store := prof.ProfileStore{
		"default": {ApiRoot: "https://studio.example.com/api"},
	}
	if err := store.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded := try.To(prof.LoadProfileStore(path)).OrFatal(t)
	p := try.To(loaded.Get("default")).OrFatal(t)
	if p.ApiRoot != "https://studio.example.com/api" {
		t.Errorf("unexpected profile: %+v", p)
	}

	if _, err := prof.LoadProfileStore(filepath.Join(t.TempDir(), "nothing")); !errors.Is(err, prof.ErrProfileStoreNotFound) {
		t.Errorf("unexpected error: %v", err)
	}
}

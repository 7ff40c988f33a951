//go:build windows

package open

import (
	"os"

	winacl "github.com/hectane/go-acl"
)

// restrict sets the ACL, since the mode given on creation is ignored.
func restrict(filepath string) error {
	return winacl.Chmod(filepath, os.FileMode(0600))
}

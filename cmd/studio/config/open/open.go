// Package open writes files holding secrets, like profiles.
package open

import "os"

// NewSafeFile creates an empty file readable and writable only by the current user.
//
// An existing file is truncated.
func NewSafeFile(filepath string) (*os.File, error) {
	f, err := os.OpenFile(filepath, os.O_TRUNC|os.O_CREATE|os.O_RDWR, os.FileMode(0600))
	if err != nil {
		return nil, err
	}
	if err := restrict(filepath); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

package open

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hectane/go-acl"
)

var ErrCannotCreate = errors.New("cannot create file")
var ErrCannotUpdate = errors.New("cannot update file")

// WriteWithBackup replaces the content of the file at path with buf.
//
// The previous content is kept in "path.backup" while writing,
// and the backup is removed once the new content is written.
// The file is readable and writable only by the current user after that.
func WriteWithBackup(path string, buf []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), os.FileMode(0700)); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR, os.FileMode(0600))
	switch {
	case err == nil:
		// existing files may have loose permissions.
		if err := acl.Chmod(path, os.FileMode(0600)); err != nil {
			f.Close()
			return err
		}
	case os.IsPermission(err):
		return fmt.Errorf("%w: no permission to write file at %s", ErrCannotUpdate, path)
	case os.IsNotExist(err):
		f, err = NewSafeFile(path)
		if err != nil {
			return fmt.Errorf("%w at %s: %w", ErrCannotCreate, path, err)
		}
	default:
		return err
	}
	defer f.Close()

	bkpath := path + ".backup"
	bk, err := NewSafeFile(bkpath)
	if err != nil {
		return err
	}
	defer bk.Close()
	if _, err := io.Copy(bk, f); err != nil {
		os.Remove(bkpath)
		return err
	}

	if _, err := f.Seek(0, 0); err != nil {
		return err
	}
	if err := f.Truncate(0); err != nil {
		return err
	}
	if _, err := f.Write(buf); err != nil {
		// keep the backup to recover.
		return fmt.Errorf("%w (previous content is at %s): %w", ErrCannotUpdate, bkpath, err)
	}
	return os.Remove(bkpath)
}

//go:build !windows

package open

// restrict is a no-op: the mode given on creation is respected.
func restrict(string) error {
	return nil
}

package fsutil

import "os"

// ForceLink creates linkName as a hard link to source, replacing whatever
// linkName pointed to before.
//
// The replacement is not atomic: between the removal and the link another
// process may observe linkName missing or recreate it.
func ForceLink(source, linkName string) error {
	if err := IgnoreMissingFile("", func() error {
		return os.Remove(linkName)
	}); err != nil {
		return err
	}

	return os.Link(source, linkName)
}

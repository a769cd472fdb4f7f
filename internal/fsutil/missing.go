// Package fsutil holds small scoped helpers around filesystem primitives:
// temporary files and directories that clean up after themselves, working
// directory scoping and hard link replacement.
package fsutil

import (
	"errors"
	"io/fs"
	"os"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("fsutil")

// IsMissingFile reports whether err is a "not found" failure that should be
// ignored for filename. An empty filename matches any path.
func IsMissingFile(err error, filename string) bool {
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return false
	}

	if filename == "" {
		return true
	}

	return reportedPath(err) == filename
}

// IgnoreMissingFile runs fn and swallows a "not found" error reported for
// filename (or for any path when filename is empty). Other errors are
// returned as is.
func IgnoreMissingFile(filename string, fn func() error) error {
	err := fn()
	if IsMissingFile(err, filename) {
		log.Debugf("Ignoring missing file: %s", err)
		return nil
	}
	return err
}

func reportedPath(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Path
	}

	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return linkErr.Old
	}

	return ""
}

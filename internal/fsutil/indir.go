package fsutil

import (
	"os"
	"path/filepath"
)

// InDir switches the process working directory to dir for the duration of
// fn and switches back afterwards, whatever fn returns.
//
// The working directory is process-wide state, so InDir is not safe for
// concurrent use. Callers running goroutines must serialize access.
func InDir(dir string, fn func() error) (err error) {
	prev, err := os.Getwd()
	if err != nil {
		return err
	}

	if prev, err = filepath.Abs(prev); err != nil {
		return err
	}

	if err = os.Chdir(dir); err != nil {
		return err
	}

	defer func() {
		if restoreErr := os.Chdir(prev); err == nil && restoreErr != nil {
			err = restoreErr
		}
	}()

	return fn()
}

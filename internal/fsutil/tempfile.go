package fsutil

import (
	"errors"
	"os"

	"github.com/spf13/afero"
)

// TempFileOptions mirrors the knobs of the temporary file primitive.
type TempFileOptions struct {
	// Dir is the parent directory. Empty means os.TempDir().
	Dir    string
	Prefix string
	Suffix string
}

func (o TempFileOptions) pattern() string {
	return o.Prefix + "*" + o.Suffix
}

// WithTempFile creates a new uniquely named file, passes the open handle to
// fn, then closes and deletes it. Unlike a plain deferred Remove, it does not
// fail when fn closed, moved or deleted the file itself.
func WithTempFile(fs afero.Fs, opts TempFileOptions, fn func(f afero.File) error) (err error) {
	f, err := afero.TempFile(fs, opts.Dir, opts.pattern())
	if err != nil {
		return err
	}
	name := f.Name()
	log.Debugf("Created temporary file [%s]", name)

	defer func() {
		cleanupErr := cleanupTempFile(fs, f, name)
		if err == nil && cleanupErr != nil {
			err = cleanupErr
		}
	}()

	return fn(f)
}

func cleanupTempFile(fs afero.Fs, f afero.File, name string) error {
	if err := f.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		return err
	}

	return IgnoreMissingFile("", func() error {
		return fs.Remove(name)
	})
}

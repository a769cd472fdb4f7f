package fsutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// TempDirOptions mirrors the knobs of the temporary directory primitive.
type TempDirOptions struct {
	// Dir is the parent directory. Empty means os.TempDir().
	Dir    string
	Prefix string
	Suffix string
}

const maxTempDirAttempts = 10000

// WithTempDir creates a new uniquely named directory, passes its path to fn
// and removes it with all of its content once fn returns. A directory that
// fn already removed is not an error.
func WithTempDir(fs afero.Fs, opts TempDirOptions, fn func(dir string) error) (err error) {
	dir, err := mkdirTemp(fs, opts)
	if err != nil {
		return err
	}
	log.Debugf("Created temporary directory [%s]", dir)

	defer func() {
		removeErr := IgnoreMissingFile(dir, func() error {
			return fs.RemoveAll(dir)
		})
		if err == nil && removeErr != nil {
			err = removeErr
		}
	}()

	return fn(dir)
}

func mkdirTemp(fs afero.Fs, opts TempDirOptions) (string, error) {
	if opts.Suffix == "" {
		return afero.TempDir(fs, opts.Dir, opts.Prefix)
	}

	parent := opts.Dir
	if parent == "" {
		parent = os.TempDir()
	}

	var err error
	for i := 0; i < maxTempDirAttempts; i++ {
		name := filepath.Join(parent, opts.Prefix+randomToken()+opts.Suffix)
		err = fs.Mkdir(name, 0o700)
		if os.IsExist(err) {
			continue
		}
		if err != nil {
			return "", err
		}
		return name, nil
	}

	return "", err
}

func randomToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

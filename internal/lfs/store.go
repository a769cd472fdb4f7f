package lfs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/codingsince1985/checksum"
	"github.com/op/go-logging"
	"github.com/shini4i/git-lfs-fetch/internal/fsutil"
	"github.com/spf13/afero"
)

var (
	ErrObjectMissing = errors.New("object is not present in the local store")
	ErrCorruptObject = errors.New("object does not match its pointer")
)

// ObjectStore is the content addressed storage under <git dir>/lfs.
type ObjectStore struct {
	root string
	fs   afero.Fs
	log  *logging.Logger
}

// NewObjectStore returns the store located inside gitDir.
func NewObjectStore(gitDir string, log *logging.Logger) *ObjectStore {
	return &ObjectStore{
		root: filepath.Join(gitDir, "lfs"),
		fs:   afero.NewOsFs(),
		log:  log,
	}
}

// Path returns where the object with the given oid is stored.
func (s *ObjectStore) Path(oid string) string {
	return filepath.Join(s.root, "objects", oid[0:2], oid[2:4], oid)
}

// Has reports whether the object is present.
func (s *ObjectStore) Has(oid string) bool {
	exists, err := afero.Exists(s.fs, s.Path(oid))
	return err == nil && exists
}

// Put copies r into the store and returns the pointer describing it.
func (s *ObjectStore) Put(r io.Reader) (Pointer, error) {
	staging := filepath.Join(s.root, "tmp")
	if err := s.fs.MkdirAll(staging, 0o755); err != nil {
		return Pointer{}, fmt.Errorf("failed to prepare staging area: %w", err)
	}

	var pointer Pointer
	err := fsutil.WithTempDir(s.fs, fsutil.TempDirOptions{Dir: staging, Prefix: "put-"}, func(dir string) error {
		return fsutil.WithTempFile(s.fs, fsutil.TempFileOptions{Dir: dir, Suffix: ".part"}, func(f afero.File) error {
			size, err := io.Copy(f, r)
			if err != nil {
				return err
			}
			if err := f.Sync(); err != nil {
				return err
			}

			oid, err := checksum.SHA256sum(f.Name())
			if err != nil {
				return err
			}
			pointer = Pointer{Oid: oid, Size: size}

			if s.Has(oid) {
				s.log.Debugf("Object [%s] already stored", oid)
				return nil
			}

			dest := s.Path(oid)
			if err := s.fs.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
				return err
			}
			return s.fs.Rename(f.Name(), dest)
		})
	})
	if err != nil {
		return Pointer{}, fmt.Errorf("failed to store object: %w", err)
	}

	return pointer, nil
}

// Verify checks that the stored object matches p.
func (s *ObjectStore) Verify(p Pointer) error {
	path := s.Path(p.Oid)

	info, err := s.fs.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrObjectMissing, p.Oid)
	}
	if err != nil {
		return err
	}

	if info.Size() != p.Size {
		return fmt.Errorf("%w: %s has size %d, expected %d", ErrCorruptObject, p.Oid, info.Size(), p.Size)
	}

	sum, err := checksum.SHA256sum(path)
	if err != nil {
		return err
	}
	if sum != p.Oid {
		return fmt.Errorf("%w: %s hashes to %s", ErrCorruptObject, p.Oid, sum)
	}

	return nil
}

// Checkout places the object referenced by p at dest as a hard link.
func (s *ObjectStore) Checkout(p Pointer, dest string) error {
	if !s.Has(p.Oid) {
		return fmt.Errorf("%w: %s", ErrObjectMissing, p.Oid)
	}

	if err := s.fs.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	s.log.Debugf("Linking [%s] to [%s]", p.Oid, dest)
	return fsutil.ForceLink(s.Path(p.Oid), dest)
}

package ports

import (
	"io"

	"github.com/shini4i/git-lfs-fetch/internal/lfs"
)

//go:generate mockgen -source=ports.go -destination=../mocks/ports.go -package=mocks

// Repository exposes the parts of a git repository used by the LFS workflow.
type Repository interface {
	GitDir() string
	WorkTree() string
	Endpoint() (lfs.Endpoint, error)
	Pointers() ([]lfs.TrackedPointer, error)
}

// ObjectStore abstracts the local LFS object storage.
type ObjectStore interface {
	Has(oid string) bool
	Put(r io.Reader) (lfs.Pointer, error)
	Verify(p lfs.Pointer) error
	Checkout(p lfs.Pointer, dest string) error
}

// Matcher reports whether a repository path matches a glob pattern.
type Matcher interface {
	Match(pattern, name string) (bool, error)
}

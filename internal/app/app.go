package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/op/go-logging"
	"github.com/shini4i/git-lfs-fetch/internal/fsutil"
	"github.com/shini4i/git-lfs-fetch/internal/lfs"
	"github.com/shini4i/git-lfs-fetch/internal/ports"
	"github.com/shini4i/git-lfs-fetch/internal/utils"
)

// RepositoryOpener opens the repository that contains path.
type RepositoryOpener func(path string, log *logging.Logger) (ports.Repository, error)

// StoreFactory builds the object store living inside gitDir.
type StoreFactory func(gitDir string, log *logging.Logger) ports.ObjectStore

// Dependencies aggregates runtime collaborators required by App.
type Dependencies struct {
	OpenRepository RepositoryOpener
	NewStore       StoreFactory
	Matcher        ports.Matcher
	Logger         *logging.Logger
	Out            io.Writer
}

// App runs the local LFS workflows against a repository.
type App struct {
	cfg            Config
	openRepository RepositoryOpener
	newStore       StoreFactory
	matcher        ports.Matcher
	logger         *logging.Logger
	out            io.Writer
}

// New constructs an App using the supplied configuration and dependencies.
func New(cfg Config, deps Dependencies) (*App, error) {
	if deps.Logger == nil {
		return nil, errors.New("logger must be provided")
	}
	if deps.OpenRepository == nil {
		deps.OpenRepository = defaultRepositoryOpener
	}
	if deps.NewStore == nil {
		deps.NewStore = defaultStoreFactory
	}
	if deps.Matcher == nil {
		deps.Matcher = utils.ZglobMatcher{}
	}
	if deps.Out == nil {
		deps.Out = os.Stdout
	}

	return &App{
		cfg:            cfg,
		openRepository: deps.OpenRepository,
		newStore:       deps.NewStore,
		matcher:        deps.Matcher,
		logger:         deps.Logger,
		out:            deps.Out,
	}, nil
}

func defaultRepositoryOpener(path string, log *logging.Logger) (ports.Repository, error) {
	return lfs.OpenRepository(path, log)
}

func defaultStoreFactory(gitDir string, log *logging.Logger) ports.ObjectStore {
	return lfs.NewObjectStore(gitDir, log)
}

// withRepository runs fn from inside the configured working directory, so
// relative paths given on the command line resolve the way git resolves them.
func (a *App) withRepository(fn func(repo ports.Repository, store ports.ObjectStore) error) error {
	return fsutil.InDir(a.cfg.WorkDir, func() error {
		repo, err := a.openRepository(".", a.logger)
		if err != nil {
			return err
		}
		return fn(repo, a.newStore(repo.GitDir(), a.logger))
	})
}

// Checkout replaces committed pointer files with hard links to the objects
// available in the local store.
func (a *App) Checkout() error {
	a.logger.Infof("===> Running git-lfs-fetch version [%s]", cyan(a.cfg.Version))

	return a.withRepository(func(repo ports.Repository, store ports.ObjectStore) error {
		pointers, err := a.selectedPointers(repo)
		if err != nil {
			return err
		}

		if len(pointers) == 0 {
			a.logger.Info("No LFS pointer files found. Exiting...")
			return nil
		}

		var missing []string
		for _, tracked := range pointers {
			if err := a.checkoutPointer(repo, store, tracked); err != nil {
				if !errors.Is(err, lfs.ErrObjectMissing) {
					return err
				}
				missing = append(missing, tracked.Path)
			}
		}

		return a.reportMissing(missing)
	})
}

func (a *App) checkoutPointer(repo ports.Repository, store ports.ObjectStore, tracked lfs.TrackedPointer) error {
	if !store.Has(tracked.Pointer.Oid) {
		return lfs.ErrObjectMissing
	}

	if a.cfg.Verify {
		if err := store.Verify(tracked.Pointer); err != nil {
			return fmt.Errorf("failed to verify %s: %w", tracked.Path, err)
		}
	}

	dest := filepath.Join(repo.WorkTree(), filepath.FromSlash(tracked.Path))
	if err := store.Checkout(tracked.Pointer, dest); err != nil {
		return fmt.Errorf("failed to checkout %s: %w", tracked.Path, err)
	}

	a.logger.Infof("▶ %s", tracked.Path)
	return nil
}

func (a *App) reportMissing(missing []string) error {
	if len(missing) == 0 {
		return nil
	}

	a.logger.Info("===> The following objects are not available locally and were skipped")
	for _, file := range missing {
		a.logger.Warningf("▶ %s", red(file))
	}

	return fmt.Errorf("%d objects missing", len(missing))
}

// selectedPointers lists pointers of HEAD narrowed down by include/exclude patterns.
func (a *App) selectedPointers(repo ports.Repository) ([]lfs.TrackedPointer, error) {
	a.logger.Debug("===> Found the following pointer files:")

	pointers, err := repo.Pointers()
	if err != nil {
		return nil, err
	}

	var selected []lfs.TrackedPointer
	for _, tracked := range pointers {
		ok, err := a.selected(tracked.Path)
		if err != nil {
			return nil, err
		}
		if ok {
			selected = append(selected, tracked)
		} else {
			a.logger.Debugf("Skipping filtered file [%s]", tracked.Path)
		}
	}

	return selected, nil
}

func (a *App) selected(path string) (bool, error) {
	excluded, err := a.matchesAny(a.cfg.Exclude, path)
	if err != nil || excluded {
		return false, err
	}

	if len(a.cfg.Include) == 0 {
		return true, nil
	}

	return a.matchesAny(a.cfg.Include, path)
}

func (a *App) matchesAny(patterns []string, path string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := a.matcher.Match(pattern, path)
		if err != nil {
			return false, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

// ListFiles prints every pointer file with a marker telling whether its
// object is present locally.
func (a *App) ListFiles() error {
	return a.withRepository(func(repo ports.Repository, store ports.ObjectStore) error {
		pointers, err := a.selectedPointers(repo)
		if err != nil {
			return err
		}

		for _, tracked := range pointers {
			marker := "-"
			if store.Has(tracked.Pointer.Oid) {
				marker = "*"
			}
			if _, err := fmt.Fprintf(a.out, "%s %s %s\n", tracked.Pointer.Oid[:10], marker, tracked.Path); err != nil {
				return err
			}
		}

		return nil
	})
}

// Import stores the content of files and prints the resulting pointers.
func (a *App) Import(files []string) error {
	if len(files) == 0 {
		return errors.New("no files to import")
	}

	return a.withRepository(func(_ ports.Repository, store ports.ObjectStore) error {
		for _, file := range files {
			pointer, err := a.importFile(store, file)
			if err != nil {
				return err
			}

			a.logger.Infof("▶ %s", yellow(file))
			if _, err := fmt.Fprintf(a.out, "%s %d %s\n", pointer.Oid, pointer.Size, file); err != nil {
				return err
			}
		}
		return nil
	})
}

func (a *App) importFile(store ports.ObjectStore, file string) (lfs.Pointer, error) {
	f, err := os.Open(file) // #nosec G304
	if err != nil {
		return lfs.Pointer{}, err
	}
	defer func(f *os.File) {
		if err := f.Close(); err != nil {
			a.logger.Errorf("Failed to close [%s]: %s", file, err)
		}
	}(f)

	return store.Put(f)
}

// Endpoint prints the LFS endpoint of the repository. Credentials embedded
// in the configured URL are never printed.
func (a *App) Endpoint() error {
	return a.withRepository(func(repo ports.Repository, _ ports.ObjectStore) error {
		endpoint, err := repo.Endpoint()
		if err != nil {
			return err
		}

		auth := "none"
		if _, ok := endpoint.Header["Authorization"]; ok {
			auth = "basic"
		}

		_, err = fmt.Fprintf(a.out, "Endpoint=%s (auth=%s)\n", endpoint.URL, auth)
		return err
	})
}

package lfs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	format "github.com/go-git/go-git/v5/plumbing/format/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/filesystem"
	"github.com/op/go-logging"
	"github.com/shini4i/git-lfs-fetch/internal/fsutil"
	"github.com/shini4i/git-lfs-fetch/internal/helpers"
)

const (
	defaultRemote = "origin"
	lfsConfigFile = ".lfsconfig"
)

var (
	ErrNoEndpoint = errors.New("no lfs endpoint configured")

	scpLikeURL = regexp.MustCompile(`^(?:[^@/]+@)?([^:/]+):(.+)$`)
)

// Endpoint is the LFS server location with credentials moved into Header.
type Endpoint struct {
	URL    string
	Header map[string]string
}

// TrackedPointer is a pointer file committed at Path.
type TrackedPointer struct {
	Path    string
	Pointer Pointer
}

type Repository struct {
	repo     *git.Repository
	gitDir   string
	workTree string
	log      *logging.Logger
}

// OpenRepository opens the repository containing path.
func OpenRepository(path string, log *logging.Logger) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	storage, ok := repo.Storer.(*filesystem.Storage)
	if !ok {
		return nil, errors.New("repository is not backed by a filesystem")
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	return &Repository{
		repo:     repo,
		gitDir:   storage.Filesystem().Root(),
		workTree: worktree.Filesystem.Root(),
		log:      log,
	}, nil
}

func (r *Repository) GitDir() string {
	return r.gitDir
}

func (r *Repository) WorkTree() string {
	return r.workTree
}

// Endpoint resolves the LFS server URL. lfs.url from the repository config
// wins over .lfsconfig, which wins over the URL derived from the origin remote.
func (r *Repository) Endpoint() (Endpoint, error) {
	raw, err := r.configuredEndpoint()
	if err != nil {
		return Endpoint{}, err
	}

	if raw == "" {
		raw, err = r.remoteEndpoint(defaultRemote)
		if err != nil {
			return Endpoint{}, err
		}
	}

	url, header := helpers.ExtractBasicAuth(raw)
	return Endpoint{URL: url, Header: header}, nil
}

func (r *Repository) configuredEndpoint() (string, error) {
	cfg, err := r.repo.Config()
	if err != nil {
		return "", fmt.Errorf("failed to read repository config: %w", err)
	}

	if url := cfg.Raw.Section("lfs").Option("url"); url != "" {
		return url, nil
	}

	lfsConfig := format.New()
	err = fsutil.IgnoreMissingFile(filepath.Join(r.workTree, lfsConfigFile), func() error {
		f, err := os.Open(filepath.Join(r.workTree, lfsConfigFile))
		if err != nil {
			return err
		}
		defer f.Close()

		return format.NewDecoder(f).Decode(lfsConfig)
	})
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", lfsConfigFile, err)
	}

	return lfsConfig.Section("lfs").Option("url"), nil
}

func (r *Repository) remoteEndpoint(name string) (string, error) {
	remote, err := r.repo.Remote(name)
	if err != nil {
		return "", fmt.Errorf("%w: remote %s: %v", ErrNoEndpoint, name, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("%w: remote %s has no url", ErrNoEndpoint, name)
	}

	return EndpointFromRemoteURL(urls[0]), nil
}

// EndpointFromRemoteURL derives the default LFS URL from a git remote URL.
// SSH remotes are mapped to their https counterpart.
func EndpointFromRemoteURL(remote string) string {
	url := strings.TrimSuffix(remote, "/")

	switch {
	case strings.HasPrefix(url, "ssh://"):
		url = strings.TrimPrefix(url, "ssh://")
		if at := strings.Index(url, "@"); at != -1 {
			url = url[at+1:]
		}
		url = "https://" + url
	case !strings.Contains(url, "://"):
		if m := scpLikeURL.FindStringSubmatch(url); m != nil {
			url = "https://" + m[1] + "/" + strings.TrimPrefix(m[2], "/")
		}
	}

	if !strings.HasSuffix(url, ".git") {
		url += ".git"
	}

	return url + "/info/lfs"
}

// Pointers lists every pointer file committed in HEAD.
func (r *Repository) Pointers() ([]TrackedPointer, error) {
	head, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}

	commit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to get commit object for HEAD: %w", err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to get tree for HEAD: %w", err)
	}

	var pointers []TrackedPointer
	err = tree.Files().ForEach(func(file *object.File) error {
		if file.Size > MaxPointerSize || !file.Mode.IsFile() || file.Mode == filemode.Symlink {
			return nil
		}

		content, err := file.Contents()
		if err != nil {
			return fmt.Errorf("failed to get contents of file %s: %w", file.Name, err)
		}

		pointer, err := ParsePointer([]byte(content))
		if err != nil {
			return nil
		}

		r.log.Debugf("▶ %s", file.Name)
		pointers = append(pointers, TrackedPointer{Path: file.Name, Pointer: pointer})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return pointers, nil
}

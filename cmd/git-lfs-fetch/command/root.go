package command

import (
	"errors"

	"github.com/shini4i/git-lfs-fetch/internal/app"
	"github.com/shini4i/git-lfs-fetch/internal/helpers"
	"github.com/spf13/cobra"
)

// Runner executes one of the application workflows.
type Runner interface {
	Checkout() error
	ListFiles() error
	Import(files []string) error
	Endpoint() error
}

// Options describes the collaborators and defaults required to build the CLI.
type Options struct {
	Version     string
	NewRunner   func(app.Config) (Runner, error)
	InitLogging func(debug bool)
}

// Execute builds and runs the Cobra command tree using the supplied options.
func Execute(opts Options, args []string) error {
	root := newRootCommand(opts)

	if args != nil {
		root.SetArgs(args)
	}

	return root.Execute()
}

type globalFlags struct {
	dir   string
	debug bool
}

// newRootCommand builds the root Cobra command with global flags and hooks.
func newRootCommand(opts Options) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:          "git-lfs-fetch",
		Short:        "Work with git-lfs objects stored in the local repository",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.InitLogging != nil {
				opts.InitLogging(flags.debug)
			}
			return nil
		},
	}

	root.Version = opts.Version
	root.PersistentFlags().StringVarP(&flags.dir, "dir", "C", helpers.GetEnv("GIT_LFS_FETCH_DIR", "."), "Run as if started in this directory")
	root.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "Enable debug mode")

	root.AddCommand(
		newCheckoutCommand(opts, flags),
		newListFilesCommand(opts, flags),
		newImportCommand(opts, flags),
		newEndpointCommand(opts, flags),
	)

	return root
}

func newCheckoutCommand(opts Options, global *globalFlags) *cobra.Command {
	var (
		include []string
		exclude []string
		verify  bool
	)

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Replace pointer files with the objects available locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := buildRunner(opts, global,
				app.WithInclude(include),
				app.WithExclude(exclude),
				app.WithVerify(verify),
			)
			if err != nil {
				return err
			}
			return runner.Checkout()
		},
	}

	cmd.Flags().StringSliceVarP(&include, "include", "I", nil, "Only checkout paths matching the pattern (can be set multiple times)")
	cmd.Flags().StringSliceVarP(&exclude, "exclude", "X", nil, "Skip paths matching the pattern (can be set multiple times)")
	cmd.Flags().BoolVar(&verify, "verify", false, "Verify object checksums before linking")

	return cmd
}

func newListFilesCommand(opts Options, global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ls-files",
		Short: "List pointer files committed in HEAD",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := buildRunner(opts, global)
			if err != nil {
				return err
			}
			return runner.ListFiles()
		},
	}
}

func newImportCommand(opts Options, global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>...",
		Short: "Copy files into the local object store and print their pointers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := buildRunner(opts, global)
			if err != nil {
				return err
			}
			return runner.Import(args)
		},
	}
}

func newEndpointCommand(opts Options, global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "endpoint",
		Short: "Print the LFS endpoint of the repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := buildRunner(opts, global)
			if err != nil {
				return err
			}
			return runner.Endpoint()
		},
	}
}

func buildRunner(opts Options, global *globalFlags, extra ...app.ConfigOption) (Runner, error) {
	if opts.NewRunner == nil {
		return nil, errors.New("no run handler provided")
	}

	configOptions := append([]app.ConfigOption{
		app.WithDebug(global.debug),
		app.WithVersion(opts.Version),
	}, extra...)

	cfg, err := app.NewConfig(global.dir, configOptions...)
	if err != nil {
		return nil, err
	}

	return opts.NewRunner(cfg)
}

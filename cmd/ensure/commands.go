package ensure

import (
	"fmt"
	"io"

	"github.com/arthur-debert/ensure/internal/version"
	"github.com/arthur-debert/ensure/pkg/config"
	"github.com/arthur-debert/ensure/pkg/logging"
	"github.com/arthur-debert/ensure/pkg/paths"
	"github.com/arthur-debert/ensure/pkg/reconcile"
	"github.com/arthur-debert/ensure/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags and the configuration they
// resolve to, shared by all subcommands
type globalOptions struct {
	verbosity  int
	dryRun     bool
	format     string
	configFile string

	cfg *config.Config
}

// ExitError reports a failure whose details were already written to the
// output. main exits with Code and prints nothing else. Err is the
// rendered cause, if any.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "ensure",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.setup(cmd); err != nil {
				return err
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newFileCmd(opts))
	rootCmd.AddCommand(newModuleCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newDocsCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// setup loads the configuration and configures logging from it
func (o *globalOptions) setup(cmd *cobra.Command) error {
	p := paths.New()

	configFile := o.configFile
	if configFile == "" {
		configFile = p.ConfigFilePath()
	}

	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("format") {
		overrides["output.format"] = o.format
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return err
	}
	o.cfg = cfg

	logging.SetupLoggerWithOptions(logging.Options{
		Verbosity:   o.verbosity,
		Console:     cmd.ErrOrStderr(),
		FileLogging: cfg.Logging.File,
		LogFile:     p.LogFilePath(),
	})
	return nil
}

// outputFormat resolves output.format for w, honoring output.no_color
func (o *globalOptions) outputFormat(w io.Writer) (ui.Format, error) {
	return ui.Resolve(o.cfg.Output.Format, o.cfg.Output.NoColor, w)
}

func (o *globalOptions) renderer(w io.Writer) (ui.Renderer, error) {
	format, err := o.outputFormat(w)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, w)
}

// reconciler builds a Reconciler on the OS filesystem from the configuration
func (o *globalOptions) reconciler() (*reconcile.Reconciler, error) {
	mode, err := o.cfg.Reconcile.Mode()
	if err != nil {
		return nil, err
	}
	return reconcile.New(reconcile.Options{
		FileMode:        mode,
		FailOnReadError: o.cfg.Reconcile.FailOnReadError(),
	}), nil
}

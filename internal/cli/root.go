// Package cli implements the mathdoc command-line interface.
package cli

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/mathdoc/internal/exercise"
	"github.com/mesh-intelligence/mathdoc/internal/paths"
	"github.com/mesh-intelligence/mathdoc/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	outputDir string
	jsonMode  bool
	verbose   bool
}

var flags rootFlags

// state is filled by the root PersistentPreRunE.
var state struct {
	configDir string
	cfg       types.Config
	logger    *log.Logger
}

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// exitCode maps an error returned by a command to a process exit code.
// Errors not tagged by a command are usage errors from cobra.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// NewRootCmd creates the top-level "mathdoc" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mathdoc",
		Short: "Generate markdown tutorials on powers and logarithms",
		Long: "mathdoc renders tutorial exercises as markdown blocks with inline math,\n" +
			"comparison tables, and plot figures saved next to the document.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadState,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/mathdoc)")
	root.PersistentFlags().StringVar(&flags.outputDir, "output-dir", "", "output directory for documents and figures (default: ./docs)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log progress to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newFiguresCmd())
	root.AddCommand(newCleanCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mathdoc:", err)
		os.Exit(exitCode(err))
	}
}

// loadState resolves directories and loads config.yaml for every command
// except version.
func loadState(cmd *cobra.Command, args []string) error {
	state.logger = exercise.NewLogger(cmd.ErrOrStderr(), flags.verbose)
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return sysError(fmt.Errorf("load config: %w", err))
	}
	cfg, err := buildConfig(v, flags.outputDir)
	if err != nil {
		return userError(err)
	}

	state.configDir = configDir
	state.cfg = cfg
	state.logger.Printf("config dir %s, output dir %s", configDir, cfg.OutputDir)
	return nil
}

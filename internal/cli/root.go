// Package cli implements the inspector command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	dataDir   string
	noJournal bool
	user      bool
}

var flags rootFlags

// NewRootCmd creates the top-level "inspector" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	flags = rootFlags{}

	root := &cobra.Command{
		Use:   "inspector",
		Short: "Browse and edit a live object graph",
		Long: "Inspector walks a running object graph slot by slot, shows each\n" +
			"member's modifiers, type and value, and edits leaf values from text.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .inspector)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: .inspector-data)")
	root.PersistentFlags().BoolVar(&flags.user, "user", false, "use the per-user platform directories instead of the working directory")
	root.PersistentFlags().BoolVar(&flags.noJournal, "no-journal", false, "do not record edits")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newRootsCmd())
	root.AddCommand(newBrowseCmd())
	root.AddCommand(newHistoryCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "inspector:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// cmdError carries the exit code for a failed command.
type cmdError struct {
	code int
	err  error
}

func (e *cmdError) Error() string { return e.err.Error() }
func (e *cmdError) Unwrap() error { return e.err }

// sysError marks err as an environment failure (files, database).
func sysError(format string, args ...any) error {
	return &cmdError{code: exitSysError, err: fmt.Errorf(format, args...)}
}

// exitCode returns exitSysError for errors built by sysError and
// exitUserError for everything else.
func exitCode(err error) int {
	var ce *cmdError
	if errors.As(err, &ce) {
		return ce.code
	}
	return exitUserError
}

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/inspector/internal/journal"
	"github.com/mesh-intelligence/inspector/internal/logging"
	"github.com/mesh-intelligence/inspector/internal/session"
	"github.com/mesh-intelligence/inspector/pkg/types"
)

const defaultRoot = "warehouse"

const browseHelp = `commands:
  ls            list the members of the current slot
  cd N          enter member N
  up            return to the parent slot
  top           return to the root
  set N TEXT    parse TEXT into member N ("nil" clears a nullable member)
  pwd           show the current path and slot
  history [N]   show the last N recorded edits
  help          show this text
  quit          leave the browser`

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [root]",
		Short: "Interactively browse and edit an object graph",
		Long:  "Start an interactive session at the named root (default " + defaultRoot + ").\n\n" + browseHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	name := defaultRoot
	if len(args) == 1 {
		name = args[0]
	}
	in, err := newInspector()
	if err != nil {
		return err
	}
	root, err := findRoot(in, name)
	if err != nil {
		return err
	}

	logger, logFile, err := logging.Open(cfg.LogFile)
	if err != nil {
		return sysError("%w", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	opts := []session.Option{session.WithLogger(logger)}
	var j *journal.Journal
	if cfg.JournalEnabled() {
		j, err = journal.Open(cfg)
		if err != nil {
			return sysError("open journal: %w", err)
		}
		defer j.Close()
		opts = append(opts, session.WithRecorder(j))
	}

	r := &repl{
		s:      session.New(root, opts...),
		j:      j,
		out:    cmd.OutOrStdout(),
		prompt: cfg.Prompt,
	}
	return r.run(cmd.InOrStdin())
}

// repl reads commands line by line and applies them to a session. Failures
// are printed and the loop continues.
type repl struct {
	s      *session.Session
	j      *journal.Journal // nil when the journal is disabled
	out    io.Writer
	prompt string
}

func (r *repl) run(in io.Reader) error {
	r.pwd()
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, r.prompt)
		if !sc.Scan() {
			fmt.Fprintln(r.out)
			return sc.Err()
		}
		if quit := r.exec(sc.Text()); quit {
			return nil
		}
	}
}

// exec runs one command line and reports whether the session should end.
func (r *repl) exec(line string) bool {
	cmd, rest := splitWord(line)
	switch cmd {
	case "":
	case "ls":
		r.ls()
	case "cd":
		i, err := parseIndex(rest)
		if err != nil {
			r.fail(err)
			return false
		}
		if _, err := r.s.Enter(i); err != nil {
			r.fail(err)
			return false
		}
		r.pwd()
	case "up":
		if err := r.s.Up(); err != nil {
			r.fail(err)
			return false
		}
		r.pwd()
	case "top":
		r.s.Top()
		r.pwd()
	case "set":
		arg, text := splitWord(rest)
		i, err := parseIndex(arg)
		if err != nil {
			r.fail(err)
			return false
		}
		if err := r.s.Set(i, text); err != nil {
			r.fail(err)
			return false
		}
		r.show(i)
	case "pwd":
		r.pwd()
	case "history":
		r.history(rest)
	case "help", "?":
		fmt.Fprintln(r.out, browseHelp)
	case "quit", "exit", "q":
		return true
	default:
		fmt.Fprintf(r.out, "unknown command %q (try help)\n", cmd)
	}
	return false
}

func (r *repl) ls() {
	children, err := r.s.List()
	if err != nil {
		r.fail(err)
		return
	}
	if len(children) == 0 {
		fmt.Fprintln(r.out, "  (empty)")
	}
	for i, c := range children {
		fmt.Fprintf(r.out, "  [%d] %s\n", i, c.Describe())
	}
}

// show prints child i from the current listing after a change.
func (r *repl) show(i int) {
	children, err := r.s.List()
	if err != nil {
		r.fail(err)
		return
	}
	if i < len(children) {
		fmt.Fprintf(r.out, "  [%d] %s\n", i, children[i].Describe())
	}
}

func (r *repl) pwd() {
	fmt.Fprintf(r.out, "%s: %s\n", r.s.Path(), r.s.Current().Describe())
}

func (r *repl) history(arg string) {
	if r.j == nil {
		r.fail(journal.ErrDisabled)
		return
	}
	limit := 10
	if arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil {
			r.fail(fmt.Errorf("history limit %q: %w", arg, types.ErrFormat))
			return
		}
		limit = n
	}
	edits, err := r.j.List(limit)
	if err != nil {
		r.fail(err)
		return
	}
	printEdits(r.out, edits)
}

func (r *repl) fail(err error) {
	fmt.Fprintf(r.out, "error: %s: %v\n", errorKind(err), err)
}

// errorKind names err for the operator.
func errorKind(err error) string {
	if k := types.ErrorKind(err); k != "" {
		return k
	}
	switch {
	case errors.Is(err, session.ErrNoSuchChild):
		return "NoSuchChild"
	case errors.Is(err, session.ErrAtRoot):
		return "AtRoot"
	case errors.Is(err, session.ErrNotWriteable):
		return "NotWriteable"
	case errors.Is(err, journal.ErrDisabled):
		return "JournalDisabled"
	}
	return "Error"
}

// splitWord returns the first word of s and the trimmed remainder.
func splitWord(s string) (string, string) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("member index %q: %w", s, session.ErrNoSuchChild)
	}
	return i, nil
}

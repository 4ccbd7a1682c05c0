package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/inspector/internal/journal"
)

func newHistoryCmd() *cobra.Command {
	var (
		limit  int
		export string
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded edits, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig()
			if err != nil {
				return err
			}
			j, err := journal.Open(cfg)
			if errors.Is(err, journal.ErrDisabled) {
				return err
			}
			if err != nil {
				return sysError("open journal: %w", err)
			}
			defer j.Close()

			edits, err := j.List(limit)
			if err != nil {
				return sysError("%w", err)
			}
			if export != "" {
				if err := journal.Export(export, edits); err != nil {
					return sysError("export: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "exported %d edits to %s\n", len(edits), export)
				return nil
			}
			printEdits(cmd.OutOrStdout(), edits)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of edits to show (0 for all)")
	cmd.Flags().StringVar(&export, "export", "", "write the edits to this file as JSON lines instead of printing them")
	return cmd
}

func printEdits(w io.Writer, edits []journal.Edit) {
	if len(edits) == 0 {
		fmt.Fprintln(w, "no edits recorded")
		return
	}
	for _, e := range edits {
		fmt.Fprintf(w, "%s  %s: %s -> %s\n",
			e.EditedAt.Local().Format(time.DateTime), e.Path, e.Before, e.After)
	}
}

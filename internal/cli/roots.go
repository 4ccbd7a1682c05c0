package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/inspector/internal/demo"
	"github.com/mesh-intelligence/inspector/pkg/inspect"
	"github.com/mesh-intelligence/inspector/pkg/types"
)

func newRootsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roots",
		Short: "List the object graphs available to browse",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := newInspector()
			if err != nil {
				return err
			}
			for _, r := range demo.Roots() {
				fmt.Fprintln(cmd.OutOrStdout(), in.Root(r.Name, r.Value).Describe())
			}
			return nil
		},
	}
}

// newInspector returns an Inspector whose registry holds the demo statics.
func newInspector() (*inspect.Inspector, error) {
	reg := inspect.NewRegistry()
	if err := demo.Register(reg); err != nil {
		return nil, fmt.Errorf("register statics: %w", err)
	}
	return inspect.New(reg), nil
}

// findRoot returns a root slot for the demo graph called name.
func findRoot(in *inspect.Inspector, name string) (types.Slot, error) {
	for _, r := range demo.Roots() {
		if r.Name == name {
			return in.Root(r.Name, r.Value), nil
		}
	}
	return nil, fmt.Errorf("unknown root %q (see 'inspector roots')", name)
}

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewPlanCommand creates the plan command.
func NewPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the collection dependency graph",
		Long: `Display the dependency graph of all collections, grouped by execution
level. Level 0 holds root entities with no dependencies; every later
level depends only on earlier ones. This is the order the generate
command builds collections in.`,
		Example: `  # Show the build plan
  casinogen plan`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd)
		},
	}

	return cmd
}

func runPlan(cmd *cobra.Command) error {
	cfg := getConfig()
	logger := newLogger(cfg)

	eng, err := newEngine(cfg, logger)
	if err != nil {
		return err
	}

	graph := eng.Graph()
	levels, err := graph.Levels()
	if err != nil {
		return fmt.Errorf("failed to get execution levels: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Generation plan (execution levels):")
	fmt.Fprintln(out)

	for i, level := range levels {
		fmt.Fprintf(out, "Level %d:\n", i)
		for _, name := range level {
			fmt.Fprintf(out, "  %s\n", name)
			if deps := graph.Parents(name); len(deps) > 0 {
				fmt.Fprintf(out, "    depends on: %s\n", strings.Join(deps, ", "))
			}
			if children := graph.Children(name); len(children) > 0 {
				fmt.Fprintf(out, "    used by: %s\n", strings.Join(children, ", "))
			}
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Total: %d collections, %d dependencies\n", graph.NodeCount(), graph.EdgeCount())
	return nil
}

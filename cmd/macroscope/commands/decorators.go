package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func (c *CLI) newDecoratorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decorators <file>",
		Short: "Collect decorator modules referenced by a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			modules := c.app.CollectDecoratorModules(string(code))
			out := cmd.OutOrStdout()
			if len(modules) == 0 {
				_, _ = fmt.Fprintln(out, "no decorator modules")
				return nil
			}
			for _, module := range modules {
				_, _ = fmt.Fprintln(out, module)
			}
			return nil
		},
	}
}

package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

func (c *CLI) newImportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "imports <file>",
		Short: "List the macro imports declared in a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			table := c.app.Imports(string(code))
			out := cmd.OutOrStdout()
			if len(table) == 0 {
				_, _ = fmt.Fprintln(out, "no macro imports")
				return nil
			}

			names := make([]string, 0, len(table))
			for name := range table {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				_, _ = fmt.Fprintf(out, "%s %s\n", name, table[name])
			}
			return nil
		},
	}
}

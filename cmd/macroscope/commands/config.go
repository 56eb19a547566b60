package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/macroscope/internal/core/domain"
)

func (c *CLI) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config [dir]",
		Short: "Print the resolved configuration for a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startDir := "."
			if len(args) == 1 {
				startDir = args[0]
			}

			cfg := c.app.LoadConfig(startDir)
			out := cmd.OutOrStdout()

			source := cfg.ConfigPath
			if source == "" {
				source = "(defaults)"
			}
			_, _ = fmt.Fprintf(out, "source: %s\n", source)
			_, _ = fmt.Fprintf(out, "keep-decorators: %t\n", cfg.KeepDecorators)
			_, _ = fmt.Fprintf(out, "generate-convenience-const: %s\n", formatOptionalBool(cfg.GenerateConvenienceConst))
			_, _ = fmt.Fprintf(out, "has-foreign-types: %s\n", formatOptionalBool(cfg.HasForeignTypes))
			_, _ = fmt.Fprintf(out, "foreign-type-count: %d\n", cfg.ForeignTypeCount)
			_, _ = fmt.Fprintf(out, "return-types: %s\n", formatReturnTypes(cfg.ReturnTypes))
			return nil
		},
	}
}

func formatOptionalBool(v *bool) string {
	if v == nil {
		return "unset"
	}
	return fmt.Sprintf("%t", *v)
}

func formatReturnTypes(v domain.ReturnTypes) string {
	if v == "" {
		return "unset"
	}
	return string(v)
}

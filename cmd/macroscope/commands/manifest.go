package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"go.trai.ch/macroscope/internal/core/domain"
	"go.trai.ch/macroscope/internal/ui/style"
)

func (c *CLI) newManifestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manifest <module-path>",
		Short: "Print the manifest exported by an external macro package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ok := c.app.Manifest(args[0])
			if !ok {
				return zerr.With(domain.ErrManifestUnavailable, "module", args[0])
			}
			renderManifest(cmd.OutOrStdout(), args[0], m)
			return nil
		},
	}
}

func renderManifest(w io.Writer, modulePath string, m *domain.Manifest) {
	_, _ = fmt.Fprintln(w, style.Header.Render("Manifest")+" "+modulePath)
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintf(w, "%s (%d)\n", style.Header.Render("Macros"), len(m.Macros))
	for _, macro := range m.Macros {
		_, _ = fmt.Fprintf(w, "  %s %s", style.Dot, macro.Name)
		if macro.Description != "" {
			_, _ = fmt.Fprintf(w, "  %s", style.Muted.Render(macro.Description))
		}
		_, _ = fmt.Fprintln(w)
	}
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintf(w, "%s (%d)\n", style.Header.Render("Decorators"), len(m.Decorators))
	for _, dec := range m.Decorators {
		_, _ = fmt.Fprintf(w, "  %s %s %s %s", style.Dot, dec.Export, style.Arrow, dec.Module)
		if dec.Description != "" {
			_, _ = fmt.Fprintf(w, "  %s", style.Muted.Render(dec.Description))
		}
		_, _ = fmt.Fprintln(w)
	}
}

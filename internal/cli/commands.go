package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/runoshun/kipp/internal/app"
	"github.com/spf13/cobra"
)

// newCommandsCommand creates the commands command.
func newCommandsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the chat commands KIPP understands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return errNoContainer
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "NAME\tUSAGE\tDESCRIPTION")
			for _, command := range c.NewSession().Commands() {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", command.Name(), command.Usage(), command.Description())
			}
			return w.Flush()
		},
	}
}

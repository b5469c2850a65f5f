package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/runoshun/kipp/internal/app"
	"github.com/runoshun/kipp/internal/storage"
	"github.com/spf13/cobra"
)

// newRunCommand creates the run command.
func newRunCommand(c *app.Container) *cobra.Command {
	var noSave bool

	cmd := &cobra.Command{
		Use:   "run <command> [args...]",
		Short: "Run a single chat command",
		Long: `Run a single chat command against the saved task list and print KIPP's reply.

The task list is loaded from the configured storage path first and saved
afterwards. A missing or empty file starts an empty list; any other load
failure aborts without touching the file.

Examples:
  kipp run todo buy milk
  kipp run deadline submit report /by 2024-01-01
  kipp run list`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c == nil {
				return errNoContainer
			}
			session := c.NewSession()

			if err := session.Load(cmd.Context()); err != nil && !errors.Is(err, storage.ErrEmpty) {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), session.Dispatch(strings.Join(args, " ")))

			if noSave {
				return nil
			}
			return session.Save(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not write the task list back")
	// Everything after the command name belongs to it, e.g. "run deadline x /by 2024-01-01"
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// Package cli provides the command-line interface for kipp.
package cli

import (
	"errors"
	"fmt"

	"github.com/runoshun/kipp/internal/app"
	"github.com/runoshun/kipp/internal/tui"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupChat  = "chat"
	groupSetup = "setup"
)

// errNoContainer is returned by commands that need an initialized app.
var errNoContainer = errors.New("kipp is not initialized")

// launchChatTUIFunc is a function variable for launching the chat window, allowing it to be mocked in tests.
var launchChatTUIFunc = launchChatTUI

// NewRootCommand creates the root command for kipp.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var plain bool

	root := &cobra.Command{
		Use:   "kipp",
		Short: "Chat with KIPP, your personal task manager",
		Long: `kipp keeps your todos, deadlines and events.

Run without arguments to open the chat window, or with --plain for a
line-by-line chat on standard input. Type "help" in the chat to list
the commands KIPP understands and "bye" to save and leave.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if plain {
				if c == nil {
					return errNoContainer
				}
				return runPlainChat(cmd.InOrStdin(), cmd.OutOrStdout(), c.NewSession(), c.Username())
			}
			return launchChatTUIFunc(c)
		},
	}

	root.Flags().BoolVar(&plain, "plain", false, "Chat line by line on standard input instead of opening the chat window")

	root.AddGroup(
		&cobra.Group{ID: groupChat, Title: "Chat Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	runCmd := newRunCommand(c)
	runCmd.GroupID = groupChat

	commandsCmd := newCommandsCommand(c)
	commandsCmd.GroupID = groupChat

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		runCmd,
		commandsCmd,
		configCmd,
	)

	return root
}

// launchChatTUI opens the chat window.
func launchChatTUI(c *app.Container) error {
	if c == nil {
		return errNoContainer
	}
	return tui.Run(tui.Config{
		Conversation: c.NewSession(),
		Username:     c.Username(),
	})
}

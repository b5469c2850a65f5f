package command

import (
	"fmt"
	"strings"
)

// UnrecognizedText is returned for input whose first word is not a
// registered command.
const UnrecognizedText = "I don't recognize that command."

// HelpName is the name of the built-in help command.
const HelpName = "help"

// Registry maps command names to commands, keeping registration order.
// Lookup is exact on the first word of the input.
type Registry struct {
	byName   map[string]*Command
	commands []*Command
}

// Option configures a Registry.
type Option func(*Registry)

// WithHelp registers the built-in help command first.
func WithHelp() Option {
	return func(r *Registry) {
		r.Register(New(HelpName, "Displays the available commands and their descriptions.", r.help))
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{byName: make(map[string]*Command)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds cmd. Registering a name twice is a programming error and
// panics.
func (r *Registry) Register(cmd *Command) {
	if _, exists := r.byName[cmd.Name()]; exists {
		panic(fmt.Sprintf("command: %q registered twice", cmd.Name()))
	}
	r.byName[cmd.Name()] = cmd
	r.commands = append(r.commands, cmd)
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (*Command, bool) {
	cmd, ok := r.byName[name]
	return cmd, ok
}

// Commands returns the registered commands in registration order.
func (r *Registry) Commands() []*Command {
	return append([]*Command(nil), r.commands...)
}

// Dispatch resolves raw input to a command and returns its rendered
// response. The input is split on the first space into the command name
// and its arguments.
func (r *Registry) Dispatch(input string) string {
	name, args := Split(input)
	cmd, ok := r.byName[name]
	if !ok {
		return UnrecognizedText
	}
	return cmd.Invoke(args)
}

// Split separates input into the command name and the argument string.
// Input without a space has empty arguments.
func Split(input string) (name, args string) {
	name, args, _ = strings.Cut(input, " ")
	return name, args
}

// HelpText lists every registered command in registration order.
func (r *Registry) HelpText() string {
	lines := make([]string, 0, len(r.commands))
	for _, cmd := range r.commands {
		lines = append(lines, fmt.Sprintf("- %s: %s [e.g. %s]", cmd.Name(), cmd.Description(), cmd.Usage()))
	}
	return strings.Join(lines, "\n")
}

func (r *Registry) help(string) Result {
	return Success("These are the available commands:\n" + r.HelpText())
}

package command

import "fmt"

// Handler runs a command with the argument string that followed its name.
type Handler func(args string) Result

// Command binds a name to a handler together with its help text.
// Commands are immutable after construction.
type Command struct {
	handler     Handler
	name        string
	usage       string
	description string
}

// New creates a command that takes no arguments. Its usage example is its
// name.
func New(name, description string, handler Handler) *Command {
	return newCommand(name, name, description, handler)
}

// NewWithArgs creates a command whose usage example is name followed by
// exampleArgs, e.g. "mark <task number>".
func NewWithArgs(name, exampleArgs, description string, handler Handler) *Command {
	return newCommand(name, name+" "+exampleArgs, description, handler)
}

func newCommand(name, usage, description string, handler Handler) *Command {
	if name == "" {
		panic("command: name must not be empty")
	}
	if handler == nil {
		panic(fmt.Sprintf("command: %q has no handler", name))
	}
	return &Command{
		name:        name,
		usage:       usage,
		description: description,
		handler:     handler,
	}
}

// Name returns the word that selects the command.
func (c *Command) Name() string { return c.name }

// Usage returns an example invocation.
func (c *Command) Usage() string { return c.usage }

// Description returns a short summary of what the command does.
func (c *Command) Description() string { return c.description }

// Run calls the handler and returns its raw result.
func (c *Command) Run(args string) Result {
	return c.handler(args)
}

// Invoke runs the command and renders the result for display.
// Usage errors get the usage example appended; unexpected errors do not,
// since the problem is not how the command was typed.
func (c *Command) Invoke(args string) string {
	res := c.Run(args)
	switch res.Kind() {
	case KindUsageError:
		return res.Text() + "\nExample: " + c.usage
	case KindSuccess, KindUnexpected:
		return res.Text()
	default:
		return res.Text()
	}
}

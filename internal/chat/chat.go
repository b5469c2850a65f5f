// Package chat binds the task use cases to text commands and owns the
// task list of a single conversation.
package chat

import "strings"

// Name is the assistant's display name.
const Name = "KIPP"

// Logo is printed when a front end starts.
const Logo = `██   ██ ██ ██████  ██████
██  ██  ██ ██   ██ ██   ██
█████   ██ ██████  ██████
██  ██  ██ ██      ██
██   ██ ██ ██      ██`

// SignOut is the reply to the bye command.
const SignOut = "Goodbye. Safe travels."

// ExitCommand ends a conversation.
const ExitCommand = "bye"

// SelfIntroduction is the reply to the hello command.
func SelfIntroduction() string {
	return "Hi there, this is " + Name + ".\nHow can I help?"
}

// IsExit reports whether input ends the conversation.
// Front ends stop reading after dispatching it.
func IsExit(input string) bool {
	return strings.HasPrefix(input, ExitCommand)
}

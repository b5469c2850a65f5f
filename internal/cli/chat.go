package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/runoshun/kipp/internal/chat"
)

// runPlainChat runs a line-mode chat: each message is printed under a
// name badge and followed by a separator. The chat ends on the exit
// command or at end of input, and the list is saved on the way out with
// the save reply printed last.
func runPlainChat(in io.Reader, out io.Writer, session *chat.Session, username string) error {
	_, _ = fmt.Fprintln(out, chat.Logo)
	printMessage(out, chat.Name, session.Open())

	scanner := bufio.NewScanner(in)
	for {
		printBadge(out, username)
		if !scanner.Scan() {
			break
		}
		input := scanner.Text()
		printSeparator(out)

		printMessage(out, chat.Name, session.Dispatch(input))
		if chat.IsExit(input) {
			break
		}
	}

	printMessage(out, chat.Name, session.Close())
	return scanner.Err()
}

func printMessage(out io.Writer, name, msg string) {
	printBadge(out, name)
	_, _ = fmt.Fprintln(out, msg)
	printSeparator(out)
}

func printBadge(out io.Writer, name string) {
	_, _ = fmt.Fprintf(out, "[%s]\n", name)
}

func printSeparator(out io.Writer) {
	_, _ = fmt.Fprintln(out, "---")
}

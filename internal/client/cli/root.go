package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if username := a.chat.Username(); username != "" {
		return fmt.Sprintf("(%s)", username)
	}
	return "(not logged in)"
}

// printIncoming renders one incoming message the way the original chat
// shows them: "<src> text", or the bare text for system notices.
func (a *App) printIncoming(srcUsername, text string) {
	if srcUsername == "" {
		printlnFn(text)
		return
	}
	printlnFn(fmt.Sprintf("<%s> %s", srcUsername, text))
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to chatline (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
	a.stopListener()
}

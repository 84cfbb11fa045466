package cli

import (
	"context"
	"os"
	"time"

	"github.com/mindcare-app/mindcare/internal/chat"
)

// sleepFn is a test seam for the simulated typing delay.
var sleepFn = time.Sleep

// Chat runs the wellness companion loop. Each line the user types gets a
// canned reply after a short simulated typing delay; an empty line or EOF
// ends the conversation.
func (a *App) Chat(ctx context.Context) error {
	if !a.requireSession() {
		return nil
	}

	printlnFn(chat.Greeting(a.session.User.Name))
	printlnFn("(press Enter on an empty line to end the conversation)")

	for {
		line, err := getSimpleText(a.reader, "", os.Stdout)
		if err != nil {
			return nil
		}
		if line == "" {
			printlnFn("Take care of yourself. I'm here whenever you need to talk.")
			return nil
		}

		sleepFn(a.selector.Delay())
		printlnFn(a.selector.Reply(line))
	}
}

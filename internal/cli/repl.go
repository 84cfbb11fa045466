package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Forgot(ctx context.Context) error
	Dashboard(ctx context.Context) error
	QuickMood(ctx context.Context, category string) error
	LogMood(ctx context.Context) error
	Entries(ctx context.Context) error
	Chat(ctx context.Context) error
	Settings(ctx context.Context) error
	Export(ctx context.Context) error
	Reset(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the MindCare CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help            — show available commands
//	  - register        — create an account
//	  - login           — authenticate
//	  - forgot          — request a password reset
//	  - exit | quit     — leave the program
//
//	Logged in:
//	  - help            — show available commands
//	  - dashboard | d   — show the stats dashboard
//	  - mood <category> — quick check-in (happy, neutral or sad)
//	  - log             — record a detailed mood entry
//	  - entries         — list recent mood entries
//	  - chat            — talk to the wellness companion
//	  - settings        — profile, password, notifications, invite
//	  - export          — write the data export file
//	  - reset           — erase all mood data
//	  - delete-account  — erase the whole local store
//	  - logout          — log out
//	  - exit | quit     — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mindcare %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (d)ashboard, mood <happy|neutral|sad>, log, entries, chat, settings, export, reset, delete-account, logout, exit")
			} else {
				printlnFn("Available commands: register, login, forgot, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "forgot":
			_ = a.Forgot(ctx)

		case "d", "dashboard":
			_ = a.Dashboard(ctx)

		case "mood":
			if len(args) == 0 {
				printlnFn("Usage: mood <happy|neutral|sad>")
				continue
			}
			_ = a.QuickMood(ctx, args[0])

		case "log":
			_ = a.LogMood(ctx)

		case "entries":
			_ = a.Entries(ctx)

		case "chat":
			_ = a.Chat(ctx)

		case "settings":
			_ = a.Settings(ctx)

		case "export":
			_ = a.Export(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "delete-account":
			_ = a.DeleteAccount(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Take care!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

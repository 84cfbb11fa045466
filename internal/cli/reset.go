package cli

import (
	"context"
	"os"
)

// confirm asks the user to type 'yes' before a destructive action proceeds.
func (a *App) confirm(prompt string) bool {
	answer, err := getSimpleText(a.reader, prompt+" Type 'yes' to confirm.", os.Stdout)
	if err != nil {
		return false
	}
	return answer == "yes"
}

// Reset erases every mood record, the stats snapshot and the notification
// preferences for the logged-in account. The account itself survives.
func (a *App) Reset(ctx context.Context) error {
	if !a.requireSession() {
		return nil
	}

	if !a.confirm("This erases all your mood data and cannot be undone.") {
		printlnFn("Cancelled.")
		return nil
	}

	if _, err := a.dashboard.ResetAll(ctx, a.userID()); err != nil {
		a.log.Error(ctx, "data reset failed", "error", err)
		return err
	}

	printlnFn("All mood data erased.")
	return nil
}

// DeleteAccount wipes the entire local store, accounts included, and ends
// the session.
func (a *App) DeleteAccount(ctx context.Context) error {
	if !a.requireSession() {
		return nil
	}

	if !a.confirm("This deletes your account and every account stored on this device.") {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.settings.DeleteAccount(ctx); err != nil {
		a.log.Error(ctx, "account deletion failed", "error", err)
		return err
	}

	a.session = nil
	printlnFn("Account deleted. Goodbye.")
	return nil
}

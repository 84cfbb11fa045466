package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mindcare-app/mindcare/internal/common"
	"github.com/mindcare-app/mindcare/internal/models"
)

// Settings runs the account-settings submenu: profile, password,
// notification preferences and the invite link. 'back' returns to the
// main prompt.
func (a *App) Settings(ctx context.Context) error {
	if !a.requireSession() {
		return nil
	}

	for {
		choice, err := getSimpleText(a.reader, "Settings: profile | password | notifications | invite | back", os.Stdout)
		if err != nil {
			return nil
		}

		switch choice {
		case "profile":
			_ = a.editProfile(ctx)
		case "password":
			_ = a.changePassword(ctx)
		case "notifications":
			_ = a.editNotifications(ctx)
		case "invite":
			printlnFn("Share MindCare with a friend: " + a.settings.InviteLink())
		case "back", "":
			return nil
		default:
			printlnFn("Unknown choice:", choice)
		}
	}
}

// editProfile prompts for new profile values; empty input keeps the current
// one. Only changed fields go into the patch.
func (a *App) editProfile(ctx context.Context) error {
	name, err := getSimpleText(a.reader, fmt.Sprintf("Name [%s] (empty keeps current)", a.session.User.Name), os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, fmt.Sprintf("Email [%s] (empty keeps current)", a.session.User.Email), os.Stdout)
	if err != nil {
		return err
	}

	patch := models.ProfilePatch{}
	if name != "" {
		patch.Name = &name
	}
	if email != "" {
		patch.Email = &email
	}
	if patch.Name == nil && patch.Email == nil {
		printlnFn("Nothing to change.")
		return nil
	}

	profile, err := a.auth.UpdateProfile(ctx, patch)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrDuplicateEmail):
			printlnFn("That email is already taken.")
		case errors.Is(err, common.ErrValidation):
			printlnFn(err.Error())
		default:
			a.log.Error(ctx, "profile update failed", "error", err)
		}
		return err
	}

	a.session.User = *profile
	printlnFn("Profile updated.")
	return nil
}

func (a *App) changePassword(ctx context.Context) error {
	current, err := getPassword("Current password", os.Stdout)
	if err != nil {
		return err
	}
	newPassword, err := getPassword("New password (min 6 characters)", os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm new password", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.ChangePassword(ctx, current, newPassword, confirm); err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidCredentials):
			printlnFn("Current password is incorrect.")
		case errors.Is(err, common.ErrValidation):
			printlnFn(err.Error())
		default:
			a.log.Error(ctx, "password change failed", "error", err)
		}
		return err
	}

	printlnFn("Password changed.")
	return nil
}

// editNotifications toggles each preference with a y/n prompt seeded from the
// stored values.
func (a *App) editNotifications(ctx context.Context) error {
	prefs, err := a.settings.Prefs(ctx, a.userID())
	if err != nil {
		a.log.Error(ctx, "preferences load failed", "error", err)
		return err
	}

	prefs.MoodReminders = a.askBool("Daily mood reminders", prefs.MoodReminders)
	prefs.WeeklyReports = a.askBool("Weekly progress reports", prefs.WeeklyReports)
	prefs.ChatUpdates = a.askBool("Chat session updates", prefs.ChatUpdates)
	prefs.EmailNotifications = a.askBool("Email notifications", prefs.EmailNotifications)

	if err := a.settings.SavePrefs(ctx, a.userID(), prefs); err != nil {
		a.log.Error(ctx, "preferences save failed", "error", err)
		return err
	}

	printlnFn("Preferences saved.")
	return nil
}

// askBool shows the current value and flips it only on an explicit y or n.
func (a *App) askBool(label string, current bool) bool {
	state := "off"
	if current {
		state = "on"
	}
	answer, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s] (y/n, empty keeps current)", label, state), os.Stdout)
	if err != nil {
		return current
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	}
	return current
}

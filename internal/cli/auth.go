package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mindcare-app/mindcare/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a name, email and password, creates the account and
// opens a session for it. Validation and duplicate-email errors are shown to
// the user; everything else is logged and returned unchanged.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password (min 6 characters)", os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	if password != confirm {
		printlnFn("Passwords do not match.")
		return fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}

	identity, err := a.auth.Register(ctx, name, email, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrDuplicateEmail):
			printlnFn("An account with this email already exists.")
		case errors.Is(err, common.ErrValidation):
			printlnFn(err.Error())
		default:
			a.log.Error(ctx, "registration failed", "error", err)
		}
		return err
	}

	session, err := a.auth.CurrentSession(ctx)
	if err != nil {
		return err
	}
	a.session = session

	printlnFn(fmt.Sprintf("Welcome to MindCare, %s!", identity.Name))
	return nil
}

// Login prompts for credentials and authenticates. Every failure shape shows
// the same generic message.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	identity, err := a.auth.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			printlnFn("Invalid email or password.")
		} else {
			a.log.Error(ctx, "login failed", "error", err)
		}
		return err
	}

	session, err := a.auth.CurrentSession(ctx)
	if err != nil {
		return err
	}
	a.session = session

	printlnFn(fmt.Sprintf("Welcome back, %s!", identity.Name))
	return nil
}

// Forgot prompts for an email and requests a password reset. The outcome
// message is the same whether or not the account exists.
func (a *App) Forgot(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter your account email", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.auth.RequestPasswordReset(ctx, email); err != nil {
		a.log.Error(ctx, "password reset request failed", "error", err)
		return err
	}

	printlnFn("If an account exists for this email, reset instructions have been sent.")
	return nil
}

// Logout closes the session. Safe to call when not logged in.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	a.session = nil
	printlnFn("Logged out.")
	return nil
}

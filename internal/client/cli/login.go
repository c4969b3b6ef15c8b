package cli

import (
	"context"
	"errors"

	"github.com/mbaklanov/chatline/internal/client/client"
	"github.com/mbaklanov/chatline/internal/common"
)

// Login authenticates against the server. The username is asked once; the
// password may be retried up to loginAttempts times before the command gives
// up and returns to the prompt.
func (a *App) Login(ctx context.Context) error {

	username, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	for attempt := 1; attempt <= loginAttempts; attempt++ {

		password, err := GetPassword(a.out)
		if err != nil {
			printlnFn("error:", err.Error())
			return err
		}

		reqCtx, cancel := a.requestCtx(ctx)
		err = a.chat.Login(reqCtx, username, string(password))
		cancel()
		common.WipeByteArray(password)

		if err == nil {
			printlnFn("Logged in as", username)
			a.startListener(ctx)
			return nil
		}

		switch {
		case errors.Is(err, client.ErrUnauthorized):
			if attempt < loginAttempts {
				printlnFn("Wrong password, try again.")
				continue
			}
			printlnFn("Too many failed attempts.")
			return err
		case errors.Is(err, client.ErrNotFound):
			printlnFn("No such user.")
			return err
		default:
			printlnFn("Login failed:", err.Error())
			return err
		}
	}

	return nil
}

// Logout stops the message feed and drops the stored tokens.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}
	a.stopListener()
	a.chat.Logout()
	printlnFn("Logged out.")
	return nil
}

package cli

import (
	"context"
	"errors"

	"github.com/mbaklanov/chatline/internal/client/client"
	"github.com/mbaklanov/chatline/internal/common"
)

func (a *App) Register(ctx context.Context) error {

	username, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	defer common.WipeByteArray(password)

	reqCtx, cancel := a.requestCtx(ctx)
	defer cancel()

	if err := a.chat.Register(reqCtx, username, string(password)); err != nil {
		switch {
		case errors.Is(err, client.ErrAlreadyExists):
			printlnFn("That username is already taken.")
		case errors.Is(err, client.ErrInvalidInput):
			printlnFn("Username and password must not be empty.")
		default:
			printlnFn("Registration failed:", err.Error())
		}
		return err
	}

	printlnFn("Account created. You can now log in.")
	return nil
}

package cli

import (
	"context"
	"errors"

	"github.com/mbaklanov/chatline/internal/client/client"
)

func (a *App) Send(ctx context.Context) error {

	dstUsername, err := GetSimpleText(a.reader, "Send to", a.out)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	text, err := GetSimpleText(a.reader, "Message", a.out)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	reqCtx, cancel := a.requestCtx(ctx)
	defer cancel()

	queued, err := a.chat.SendMessage(reqCtx, dstUsername, text)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			printlnFn("No such user:", dstUsername)
		} else {
			printlnFn("Send failed:", err.Error())
		}
		return err
	}

	if queued {
		printlnFn("User is offline, message queued.")
	} else {
		printlnFn("Delivered.")
	}
	return nil
}

package cli

import "context"

func (a *App) Users(ctx context.Context) error {

	reqCtx, cancel := a.requestCtx(ctx)
	defer cancel()

	usernames, err := a.chat.ListUsers(reqCtx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	printlnFn("Registered users:")
	for _, u := range usernames {
		printlnFn(" -", u)
	}
	return nil
}

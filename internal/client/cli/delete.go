package cli

import "context"

// Delete removes the current account after an explicit confirmation, then
// returns the REPL to the logged-out state.
func (a *App) Delete(ctx context.Context) error {

	answer, err := GetSimpleText(a.reader, `Type "confirm" to delete your account`, a.out)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	if answer != "confirm" {
		printlnFn("Aborted.")
		return nil
	}

	reqCtx, cancel := a.requestCtx(ctx)
	defer cancel()

	if err := a.chat.DeleteAccount(reqCtx); err != nil {
		printlnFn("Deletion failed:", err.Error())
		return err
	}

	a.stopListener()
	printlnFn("Account deleted.")
	return nil
}

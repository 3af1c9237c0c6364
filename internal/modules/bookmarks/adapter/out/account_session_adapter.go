package out

import (
	"context"

	accountin "eduterm/internal/modules/account/port/in"
	bookmarksout "eduterm/internal/modules/bookmarks/port/out"
)

type AccountSessionAdapter struct {
	account accountin.Usecase
}

func NewAccountSessionAdapter(account accountin.Usecase) *AccountSessionAdapter {
	return &AccountSessionAdapter{account: account}
}

var (
	_ bookmarksout.Session     = (*AccountSessionAdapter)(nil)
	_ bookmarksout.TokenSource = (*AccountSessionAdapter)(nil)
)

func (a *AccountSessionAdapter) LoggedIn(ctx context.Context) bool {
	return a.account.LoggedIn(ctx)
}

func (a *AccountSessionAdapter) Token(ctx context.Context) string {
	return a.account.Token(ctx)
}

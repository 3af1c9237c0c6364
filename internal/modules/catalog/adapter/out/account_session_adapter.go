package out

import (
	"context"

	accountin "eduterm/internal/modules/account/port/in"
	catalogout "eduterm/internal/modules/catalog/port/out"
)

type AccountSessionAdapter struct {
	account accountin.Usecase
}

func NewAccountSessionAdapter(account accountin.Usecase) *AccountSessionAdapter {
	return &AccountSessionAdapter{account: account}
}

var (
	_ catalogout.Session     = (*AccountSessionAdapter)(nil)
	_ catalogout.TokenSource = (*AccountSessionAdapter)(nil)
)

func (a *AccountSessionAdapter) LoggedIn(ctx context.Context) bool {
	return a.account.LoggedIn(ctx)
}

func (a *AccountSessionAdapter) IsAdmin(ctx context.Context) bool {
	return a.account.IsAdmin(ctx)
}

func (a *AccountSessionAdapter) Token(ctx context.Context) string {
	return a.account.Token(ctx)
}

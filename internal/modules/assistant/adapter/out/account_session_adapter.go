package out

import (
	"context"

	accountin "eduterm/internal/modules/account/port/in"
	assistantout "eduterm/internal/modules/assistant/port/out"
)

type AccountSessionAdapter struct {
	account accountin.Usecase
}

func NewAccountSessionAdapter(account accountin.Usecase) assistantout.TokenSource {
	return &AccountSessionAdapter{account: account}
}

func (a *AccountSessionAdapter) Token(ctx context.Context) string {
	return a.account.Token(ctx)
}

package usecase

import (
	"context"

	"eduterm/internal/modules/account/domain"
	"eduterm/internal/modules/account/dto"
	"eduterm/internal/modules/account/service"
)

type Interactor struct {
	accounts *service.AccountService
}

func NewInteractor(accounts *service.AccountService) *Interactor {
	return &Interactor{accounts: accounts}
}

func toOutput(user domain.User) dto.UserOutput {
	return dto.UserOutput{ID: user.ID, Name: user.Name, Email: user.Email, IsAdmin: user.IsAdmin}
}

func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.UserOutput, error) {
	user, err := i.accounts.Login(ctx, domain.Credentials{Email: input.Email, Password: input.Password})
	if err != nil {
		return dto.UserOutput{}, err
	}
	return toOutput(user), nil
}

func (i *Interactor) Register(ctx context.Context, input dto.RegisterInput) (dto.UserOutput, error) {
	user, err := i.accounts.Register(ctx, domain.Registration{
		Name:            input.Name,
		Email:           input.Email,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	})
	if err != nil {
		return dto.UserOutput{}, err
	}
	return toOutput(user), nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.accounts.Logout(ctx)
}

func (i *Interactor) CurrentUser(_ context.Context) (dto.UserOutput, bool) {
	user, ok := i.accounts.CurrentUser()
	if !ok {
		return dto.UserOutput{}, false
	}
	return toOutput(user), true
}

func (i *Interactor) LoggedIn(_ context.Context) bool {
	return i.accounts.LoggedIn()
}

func (i *Interactor) IsAdmin(_ context.Context) bool {
	return i.accounts.IsAdmin()
}

func (i *Interactor) Token(_ context.Context) string {
	return i.accounts.Token()
}

func (i *Interactor) ChangePassword(ctx context.Context, input dto.PasswordChangeInput) error {
	return i.accounts.ChangePassword(ctx, domain.PasswordChange{
		Current: input.Current,
		New:     input.New,
		Confirm: input.Confirm,
	})
}

func (i *Interactor) UpdateProfile(ctx context.Context, name string) (dto.UserOutput, error) {
	user, err := i.accounts.UpdateProfile(ctx, name)
	if err != nil {
		return dto.UserOutput{}, err
	}
	return toOutput(user), nil
}

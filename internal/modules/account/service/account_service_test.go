package service

import (
	"context"
	"errors"
	"testing"

	"eduterm/internal/modules/account/domain"
	apperrors "eduterm/internal/platform/errors"
	"eduterm/internal/platform/kvstore"
)

type fakeAuthClient struct {
	loginErr        error
	registerErr     error
	passwordErr     error
	logins          int
	registers       int
	passwordChanges int
	user            domain.User
}

func (f *fakeAuthClient) Login(_ context.Context, creds domain.Credentials) (domain.Token, error) {
	f.logins++
	if f.loginErr != nil {
		return domain.Token{}, f.loginErr
	}
	return domain.Token{AccessToken: "tok-1", TokenType: "bearer", User: f.user}, nil
}

func (f *fakeAuthClient) Register(_ context.Context, reg domain.Registration) (domain.Token, error) {
	f.registers++
	if f.registerErr != nil {
		return domain.Token{}, f.registerErr
	}
	return domain.Token{AccessToken: "tok-2", TokenType: "bearer", User: f.user}, nil
}

func (f *fakeAuthClient) Me(_ context.Context, token string) (domain.User, error) {
	return f.user, nil
}

func (f *fakeAuthClient) UpdateProfile(_ context.Context, token, name string) (domain.User, error) {
	u := f.user
	u.Name = name
	return u, nil
}

func (f *fakeAuthClient) ChangePassword(_ context.Context, token, current, next string) error {
	f.passwordChanges++
	return f.passwordErr
}

func alice() domain.User {
	return domain.User{ID: "u1", Name: "Alice", Email: "alice@example.edu", IsAdmin: true}
}

func TestLoginStoresSession(t *testing.T) {
	t.Parallel()

	durable := kvstore.NewMemory()
	ctx := context.Background()
	svc := NewAccountService(ctx, &fakeAuthClient{user: alice()}, durable)

	user, err := svc.Login(ctx, domain.Credentials{Email: "alice@example.edu", Password: "secret"})
	if err != nil {
		t.Fatal(err)
	}
	if user.Name != "Alice" {
		t.Errorf("user = %+v", user)
	}
	if !svc.LoggedIn() || !svc.IsAdmin() || svc.Token() != "tok-1" {
		t.Error("session not established")
	}

	if v, err := durable.Get(ctx, "isAdmin"); err != nil || v != "true" {
		t.Errorf("isAdmin key = %q, %v", v, err)
	}
}

func TestSessionSurvivesRestart(t *testing.T) {
	t.Parallel()

	durable := kvstore.NewMemory()
	ctx := context.Background()
	svc := NewAccountService(ctx, &fakeAuthClient{user: alice()}, durable)
	if _, err := svc.Login(ctx, domain.Credentials{Email: "a@b.c", Password: "x"}); err != nil {
		t.Fatal(err)
	}

	reloaded := NewAccountService(ctx, &fakeAuthClient{}, durable)
	if !reloaded.LoggedIn() || reloaded.Token() != "tok-1" {
		t.Error("session lost across restart")
	}
	if user, ok := reloaded.CurrentUser(); !ok || user.Email != "alice@example.edu" {
		t.Errorf("CurrentUser = %+v, %v", user, ok)
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	t.Parallel()

	durable := kvstore.NewMemory()
	ctx := context.Background()
	svc := NewAccountService(ctx, &fakeAuthClient{user: alice()}, durable)
	if _, err := svc.Login(ctx, domain.Credentials{Email: "a@b.c", Password: "x"}); err != nil {
		t.Fatal(err)
	}

	if err := svc.Logout(ctx); err != nil {
		t.Fatal(err)
	}
	if svc.LoggedIn() || svc.IsAdmin() || svc.Token() != "" {
		t.Error("session survived logout")
	}
	if _, err := durable.Get(ctx, "token"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Error("token key survived logout")
	}
}

func TestRegisterValidatesBeforeBackendCall(t *testing.T) {
	t.Parallel()

	client := &fakeAuthClient{user: alice()}
	svc := NewAccountService(context.Background(), client, kvstore.NewMemory())

	cases := []domain.Registration{
		{Name: "", Email: "a@b.c", Password: "secret1", ConfirmPassword: "secret1"},
		{Name: "A", Email: "", Password: "secret1", ConfirmPassword: "secret1"},
		{Name: "A", Email: "a@b.c", Password: "short", ConfirmPassword: "short"},
		{Name: "A", Email: "a@b.c", Password: "secret1", ConfirmPassword: "secret2"},
	}
	for _, reg := range cases {
		if _, err := svc.Register(context.Background(), reg); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Errorf("Register(%+v) err = %v, want ErrInvalidInput", reg, err)
		}
	}
	if client.registers != 0 {
		t.Errorf("backend called %d times for invalid input", client.registers)
	}
}

func TestChangePasswordValidatesBeforeBackendCall(t *testing.T) {
	t.Parallel()

	client := &fakeAuthClient{user: alice()}
	ctx := context.Background()
	svc := NewAccountService(ctx, client, kvstore.NewMemory())
	if _, err := svc.Login(ctx, domain.Credentials{Email: "a@b.c", Password: "x"}); err != nil {
		t.Fatal(err)
	}

	cases := []domain.PasswordChange{
		{Current: "", New: "secret1", Confirm: "secret1"},
		{Current: "old", New: "short", Confirm: "short"},
		{Current: "old", New: "secret1", Confirm: "secret2"},
	}
	for _, change := range cases {
		if err := svc.ChangePassword(ctx, change); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Errorf("ChangePassword(%+v) err = %v, want ErrInvalidInput", change, err)
		}
	}
	if client.passwordChanges != 0 {
		t.Errorf("backend called %d times for invalid input", client.passwordChanges)
	}

	if err := svc.ChangePassword(ctx, domain.PasswordChange{Current: "old", New: "secret1", Confirm: "secret1"}); err != nil {
		t.Fatal(err)
	}
	if client.passwordChanges != 1 {
		t.Errorf("passwordChanges = %d, want 1", client.passwordChanges)
	}
}

func TestChangePasswordRequiresLogin(t *testing.T) {
	t.Parallel()

	svc := NewAccountService(context.Background(), &fakeAuthClient{}, kvstore.NewMemory())
	err := svc.ChangePassword(context.Background(), domain.PasswordChange{Current: "old", New: "secret1", Confirm: "secret1"})
	if !errors.Is(err, apperrors.ErrAuthRequired) {
		t.Errorf("err = %v, want ErrAuthRequired", err)
	}
}

func TestLoginFailureLeavesLoggedOut(t *testing.T) {
	t.Parallel()

	client := &fakeAuthClient{loginErr: apperrors.ErrAuthRequired}
	svc := NewAccountService(context.Background(), client, kvstore.NewMemory())

	if _, err := svc.Login(context.Background(), domain.Credentials{Email: "a@b.c", Password: "bad"}); err == nil {
		t.Fatal("expected login error")
	}
	if svc.LoggedIn() {
		t.Error("failed login established a session")
	}
}

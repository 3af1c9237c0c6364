package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"eduterm/internal/modules/account/domain"
	"eduterm/internal/modules/account/port/out"
	apperrors "eduterm/internal/platform/errors"
	"eduterm/internal/platform/kvstore"
)

const (
	tokenKey   = "token"
	userKey    = "currentUser"
	isAdminKey = "isAdmin"
)

// AccountService keeps the auth session. The token and user survive
// restarts through the durable store, so a login stays valid across runs
// until the backend rejects the token.
type AccountService struct {
	mu      sync.Mutex
	client  out.AuthClient
	durable kvstore.Store

	token string
	user  domain.User
	known bool
}

func NewAccountService(ctx context.Context, client out.AuthClient, durable kvstore.Store) *AccountService {
	s := &AccountService{client: client, durable: durable}
	s.load(ctx)
	return s
}

func (s *AccountService) load(ctx context.Context) {
	token, err := s.durable.Get(ctx, tokenKey)
	if err != nil {
		return
	}
	raw, err := s.durable.Get(ctx, userKey)
	if err != nil {
		return
	}
	var user domain.User
	if json.Unmarshal([]byte(raw), &user) != nil {
		return
	}
	s.token = token
	s.user = user
	s.known = true
}

func (s *AccountService) Login(ctx context.Context, creds domain.Credentials) (domain.User, error) {
	if err := creds.Validate(); err != nil {
		return domain.User{}, err
	}
	token, err := s.client.Login(ctx, creds)
	if err != nil {
		return domain.User{}, fmt.Errorf("login: %w", err)
	}
	if err := s.storeSession(ctx, token); err != nil {
		return domain.User{}, err
	}
	return token.User, nil
}

func (s *AccountService) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	if err := reg.Validate(); err != nil {
		return domain.User{}, err
	}
	token, err := s.client.Register(ctx, reg)
	if err != nil {
		return domain.User{}, fmt.Errorf("register: %w", err)
	}
	if err := s.storeSession(ctx, token); err != nil {
		return domain.User{}, err
	}
	return token.User, nil
}

func (s *AccountService) storeSession(ctx context.Context, token domain.Token) error {
	raw, err := json.Marshal(token.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.durable.Set(ctx, tokenKey, token.AccessToken); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	if err := s.durable.Set(ctx, userKey, string(raw)); err != nil {
		return fmt.Errorf("store user: %w", err)
	}
	admin := "false"
	if token.User.IsAdmin {
		admin = "true"
	}
	if err := s.durable.Set(ctx, isAdminKey, admin); err != nil {
		return fmt.Errorf("store admin flag: %w", err)
	}

	s.mu.Lock()
	s.token = token.AccessToken
	s.user = token.User
	s.known = true
	s.mu.Unlock()
	return nil
}

// Logout drops the session locally. There is no backend call; the token
// simply stops being used.
func (s *AccountService) Logout(ctx context.Context) error {
	for _, key := range []string{tokenKey, userKey, isAdminKey} {
		if err := s.durable.Delete(ctx, key); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
	}
	s.mu.Lock()
	s.token = ""
	s.user = domain.User{}
	s.known = false
	s.mu.Unlock()
	return nil
}

func (s *AccountService) CurrentUser() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, s.known
}

func (s *AccountService) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.known
}

func (s *AccountService) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.known && s.user.IsAdmin
}

func (s *AccountService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *AccountService) UpdateProfile(ctx context.Context, name string) (domain.User, error) {
	s.mu.Lock()
	token := s.token
	known := s.known
	s.mu.Unlock()
	if !known {
		return domain.User{}, fmt.Errorf("update profile: %w", apperrors.ErrAuthRequired)
	}

	user, err := s.client.UpdateProfile(ctx, token, name)
	if err != nil {
		// A rejected token means the stored session is stale.
		if errors.Is(err, apperrors.ErrAuthRequired) {
			_ = s.Logout(ctx)
		}
		return domain.User{}, fmt.Errorf("update profile: %w", err)
	}

	raw, encErr := json.Marshal(user)
	if encErr == nil {
		_ = s.durable.Set(ctx, userKey, string(raw))
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return user, nil
}

func (s *AccountService) ChangePassword(ctx context.Context, change domain.PasswordChange) error {
	if err := change.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	token := s.token
	known := s.known
	s.mu.Unlock()
	if !known {
		return fmt.Errorf("change password: %w", apperrors.ErrAuthRequired)
	}
	if err := s.client.ChangePassword(ctx, token, change.Current, change.New); err != nil {
		if errors.Is(err, apperrors.ErrAuthRequired) {
			_ = s.Logout(ctx)
		}
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}

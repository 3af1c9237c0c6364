package domain

import (
	"fmt"
	"strings"

	apperrors "eduterm/internal/platform/errors"
)

type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

type Credentials struct {
	Email    string
	Password string
}

func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Email) == "" || c.Password == "" {
		return fmt.Errorf("%w: email and password required", apperrors.ErrInvalidInput)
	}
	return nil
}

type Registration struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

type PasswordChange struct {
	Current string
	New     string
	Confirm string
}

func (p PasswordChange) Validate() error {
	if p.Current == "" {
		return fmt.Errorf("%w: current password required", apperrors.ErrInvalidInput)
	}
	if len(p.New) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", apperrors.ErrInvalidInput)
	}
	if p.New != p.Confirm {
		return fmt.Errorf("%w: passwords do not match", apperrors.ErrInvalidInput)
	}
	return nil
}

// Validate runs the client-side checks before anything reaches the backend.
func (r Registration) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name required", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("%w: email required", apperrors.ErrInvalidInput)
	}
	if len(r.Password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", apperrors.ErrInvalidInput)
	}
	if r.Password != r.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", apperrors.ErrInvalidInput)
	}
	return nil
}

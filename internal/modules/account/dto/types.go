package dto

type LoginInput struct {
	Email    string
	Password string
}

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

type PasswordChangeInput struct {
	Current string
	New     string
	Confirm string
}

type UserOutput struct {
	ID      string
	Name    string
	Email   string
	IsAdmin bool
}

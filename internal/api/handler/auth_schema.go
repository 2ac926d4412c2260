package handler

import "github.com/audiomart/catalog-api/internal/core/domain"

type signupRequest struct {
	Username  string `json:"username"  validate:"required,alphanum"`
	Firstname string `json:"firstname" validate:"omitempty,alphanum"`
	Lastname  string `json:"lastname"  validate:"omitempty,alphanum"`
	Email     string `json:"email"     validate:"required,email,emailchars"`
	Password  string `json:"password"  validate:"required,min=6"`
}

// loginRequest leaves the password unconstrained on purpose: failure is
// decided by the hash comparison, not by shape.
type loginRequest struct {
	Email    string `json:"email"    validate:"required,email,emailchars"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Firstname string `json:"firstname,omitempty"`
	Lastname  string `json:"lastname,omitempty"`
	Email     string `json:"email"`
	Token     string `json:"token"`
}

func toLoginResponse(u *domain.User, token string) loginResponse {
	return loginResponse{
		ID:        u.ID,
		Username:  u.Username,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Email:     u.Email,
		Token:     token,
	}
}

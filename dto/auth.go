package dto

import "strings"

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginRequest is the body of POST /auth/login. UsernameOrEmail is accepted as an alias.
type LoginRequest struct {
	Username        string `json:"username"`
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password" binding:"required"`
}

// Identifier returns whichever login name was supplied.
func (r LoginRequest) Identifier() string {
	if name := strings.TrimSpace(r.Username); name != "" {
		return name
	}
	return strings.TrimSpace(r.UsernameOrEmail)
}

// UpdateProfileRequest is the body of PUT /auth/profile. Nil fields are left untouched.
type UpdateProfileRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=64"`
	Bio      *string `json:"bio" binding:"omitempty,max=1000"`
	Avatar   *string `json:"avatar" binding:"omitempty,max=512"`
}

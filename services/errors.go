package services

import "errors"

// Sentinel errors returned by services. Controllers map them to HTTP statuses.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidStatus         = errors.New("invalid status transition")
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameTaken         = errors.New("username already exists")
	ErrEmailTaken            = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid username/email or password")
	ErrUserInactive          = errors.New("user account is disabled")
	ErrForbidden             = errors.New("permission denied")
	ErrResourceNotFound      = errors.New("cultural resource not found")
	ErrPostNotFound          = errors.New("post not found")
	ErrParentCommentNotFound = errors.New("parent comment not found")
)

package domain

import "errors"

var (
	ErrUnauthorized       = errors.New("could not validate credentials")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNameTaken          = errors.New("name already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrTagNotFound        = errors.New("tag not found")
	ErrSlugTaken          = errors.New("slug already used for this user")
)

package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrAlreadyExists = errors.New("user already exists")

	// ErrUnknownPostalCode rejects well-formed postal codes the resolver
	// has never heard of.
	ErrUnknownPostalCode = errors.New("unknown postal code")
)

// User is a registered account. ProfilePhoto is an object key in the
// UserImages bucket, not a URL.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Password     string    `json:"-"`
	ProfilePhoto string    `json:"profile_photo,omitempty"`
	City         string    `json:"city"`
	PostalCode   string    `json:"postal_code"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RegisterInput struct {
	Email      string   `json:"email" validate:"required,email"`
	Name       string   `json:"name" validate:"required,min=2,max=100"`
	Password   string   `json:"password" validate:"required,password_strength"`
	City       string   `json:"city" validate:"required,max=100"`
	PostalCode string   `json:"postal_code" validate:"required,cep"`
	GenreIDs   []string `json:"genre_ids" validate:"omitempty,dive,uuid"`
}

package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxPasswordBytes is the longest password bcrypt will hash.
const MaxPasswordBytes = 72

// UserDB represents a user record in the database
type UserDB struct {
	UserID         uuid.UUID `json:"id" db:"id"`                 // Primary key
	Email          string    `json:"email" db:"email"`           // Login identifier, unique case-insensitively
	HashedPassword string    `json:"-" db:"hashed_password"`     // bcrypt hash, never serialised
	CreatedAt      time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// EnrollRequest represents the JSON body for user enrollment
// swagger:model EnrollRequest
type EnrollRequest struct {
	// Email, used as the login name
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// Validate checks that both credentials were supplied and the password fits bcrypt.
func (r *EnrollRequest) Validate() error {
	v := &ValidationError{}
	if strings.TrimSpace(r.Email) == "" {
		v.add("email", "field required")
	} else if !strings.Contains(r.Email, "@") {
		v.add("email", "value is not a valid email address")
	}
	if r.Password == "" {
		v.add("password", "field required")
	} else if len(r.Password) > MaxPasswordBytes {
		v.add("password", fmt.Sprintf("must be at most %d bytes", MaxPasswordBytes))
	}
	return v.err()
}

// EnrollResponse represents a successful enrollment response
// swagger:model EnrollResponse
type EnrollResponse struct {
	// Success message
	// example: User created successfully
	Message string `json:"message"`

	// Identifier of the new user
	UserID string `json:"user_id"`
}

// TokenResponse represents a successful login response
// swagger:model TokenResponse
type TokenResponse struct {
	// Signed bearer token
	AccessToken string `json:"access_token"`

	// Always "bearer"
	// example: bearer
	TokenType string `json:"token_type"`
}

// LoginRequest carries the login credentials. The form fields follow the OAuth2
// password flow, so the email travels as "username".
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Username string `json:"username"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// Validate checks that both credentials were supplied.
func (r *LoginRequest) Validate() error {
	v := &ValidationError{}
	if r.Username == "" {
		v.add("username", "field required")
	}
	if r.Password == "" {
		v.add("password", "field required")
	}
	return v.err()
}

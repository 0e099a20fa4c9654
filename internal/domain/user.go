package domain

import (
	"context"
	"time"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is the identity resolved from the session cookie for one request.
type Session struct {
	UserID int64
	Email  string
}

// SessionStatus is what the client-side router asks for on page load.
type SessionStatus struct {
	LoggedIn   bool   `json:"logged_in"`
	UserID     int64  `json:"user_id,omitempty"`
	Email      string `json:"email,omitempty"`
	HasProfile *bool  `json:"has_profile,omitempty"`
}

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is returned by register and login. Token is the signed session.
type AuthResult struct {
	User       *User
	Token      string
	HasProfile bool
	// DisplayName is the optional name given at registration, echoed back
	// to the client. It is not stored; the profile form collects the real name.
	DisplayName string
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

type SessionIssuer interface {
	Issue(userID int64, email string) (string, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	Status(ctx context.Context, session *Session) (*SessionStatus, error)
}

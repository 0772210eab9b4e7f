package domain

import (
	"fmt"
	"strings"
	"time"
)

// User validation errors, all part of the ErrValidation family.
var (
	ErrEmptyEmail          = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrEmptyPassword       = fmt.Errorf("%w: password cannot be empty", ErrValidation)
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)
)

// User represents a registered account. Emails are stored lower-cased so
// lookups are case-insensitive; the password is persisted only as a bcrypt
// hash and never serialized in API responses.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext, held only between registration and hashing
	HashedPassword string    `json:"-"` // Never expose the hash in JSON
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewUser creates a new User with the given email and password.
// The email is normalized to lower case and the creation/update
// timestamps are set. Returns an error if validation fails.
//
// NOTE: the plaintext password is kept on the struct; the caller is
// responsible for hashing it before the user is stored.
func NewUser(email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		Email:     NormalizeEmail(email),
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// NormalizeEmail lower-cases and trims an email address so that lookups
// and uniqueness checks are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}
	// Existing users loaded from the store carry only the hash.
	if u.Password == "" && u.HashedPassword == "" {
		return ErrEmptyPassword
	}
	return nil
}

// validEmailFormat performs a basic structural check: a local part, an
// @, and a domain containing at least one interior dot. Full RFC 5322
// validation is left to the request-level validator.
func validEmailFormat(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}

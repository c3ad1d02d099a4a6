package socks5

import "fmt"

// Auth holds RFC 1929 username/password credentials for the
// username/password sub-negotiation (METHOD 0x02).
//
// Both fields must be 1..=255 bytes, matching the single-byte length
// prefixes the sub-negotiation frame uses; NewAuth validates this eagerly,
// before any I/O is attempted, rather than failing mid-handshake.
type Auth struct {
	username string
	password string
}

// NewAuth validates and builds an Auth. It fails if either field is empty
// or longer than 255 bytes.
func NewAuth(username, password string) (*Auth, error) {
	if err := validateAuthField(username); err != nil {
		return nil, fmt.Errorf("%w: username %w", ErrInvalidAuthValues, err)
	}
	if err := validateAuthField(password); err != nil {
		return nil, fmt.Errorf("%w: password %w", ErrInvalidAuthValues, err)
	}
	return &Auth{username: username, password: password}, nil
}

func validateAuthField(s string) error {
	if len(s) < userPassAuthMinLen || len(s) > userPassAuthMaxLen {
		return fmt.Errorf("must be %d..=%d bytes, got %d", userPassAuthMinLen, userPassAuthMaxLen, len(s))
	}
	return nil
}

// Username returns the configured username.
func (a *Auth) Username() string { return a.username }

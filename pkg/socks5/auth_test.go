package socks5

import (
	"errors"
	"strings"
	"testing"
)

func TestNewAuth_LengthBoundaries(t *testing.T) {
	max255 := strings.Repeat("a", 255)
	if _, err := NewAuth(max255, max255); err != nil {
		t.Fatalf("255-byte username/password should succeed: %v", err)
	}

	if _, err := NewAuth("", max255); !errors.Is(err, ErrInvalidAuthValues) {
		t.Fatalf("empty username should fail, got %v", err)
	}
	if _, err := NewAuth(max255, ""); !errors.Is(err, ErrInvalidAuthValues) {
		t.Fatalf("empty password should fail, got %v", err)
	}

	over256 := strings.Repeat("a", 256)
	if _, err := NewAuth(over256, max255); !errors.Is(err, ErrInvalidAuthValues) {
		t.Fatalf("256-byte username should fail, got %v", err)
	}
	if _, err := NewAuth(max255, over256); !errors.Is(err, ErrInvalidAuthValues) {
		t.Fatalf("256-byte password should fail, got %v", err)
	}
}

func TestAuth_Username(t *testing.T) {
	a, err := NewAuth("mylogin", "mypassword")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Username() != "mylogin" {
		t.Fatalf("unexpected username: %q", a.Username())
	}
}

package password_test

import (
	"errors"
	"hotel/shared/password"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestConstants(t *testing.T) {
	if password.DefaultCost != bcrypt.DefaultCost {
		t.Errorf("expected DefaultCost to be %d, got %d", bcrypt.DefaultCost, password.DefaultCost)
	}

	if password.MinLength != 6 {
		t.Errorf("expected MinLength to be 6, got %d", password.MinLength)
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		password string
		expected error
	}{
		{name: "empty", password: "", expected: password.ErrEmptyPassword},
		{name: "five characters", password: "abcde", expected: password.ErrPasswordTooShort},
		{name: "exactly six", password: "abcdef", expected: nil},
		{name: "default reset value", password: "admin123", expected: nil},
		{name: "multibyte counted as runes", password: "ééééé", expected: password.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Check(tt.password)
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		expectedError error
	}{
		{name: "valid password", password: "validPassword123"},
		{name: "empty password", password: "", expectedError: password.ErrEmptyPassword},
		{name: "short password", password: "abc"},
		{name: "special characters", password: "p@$$w0rd!#%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}

				if hash != "" {
					t.Errorf("expected empty hash on error, got %s", hash)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !strings.HasPrefix(hash, "$2a$") {
				t.Errorf("expected bcrypt hash, got %s", hash)
			}

			if err := password.Verify(tt.password, hash); err != nil {
				t.Errorf("hash does not verify: %v", err)
			}
		})
	}
}

func TestHashTooLong(t *testing.T) {
	_, err := password.Hash(strings.Repeat("a", 100))
	if !errors.Is(err, password.ErrHashingPassword) {
		t.Errorf("expected ErrHashingPassword, got %v", err)
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("admin123")
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		expected error
	}{
		{name: "match", password: "admin123", hash: hash},
		{name: "mismatch", password: "admin124", hash: hash, expected: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hash, expected: password.ErrInvalidPassword},
		{name: "empty hash", password: "admin123", hash: "", expected: password.ErrInvalidPassword},
		{name: "malformed hash", password: "admin123", hash: "not-a-hash", expected: password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

package contact

import (
	"testing"

	"github.com/hpungsan/satchel/internal/errors"
)

func TestNewName_Canonicalizes(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"alice", "Alice"},
		{"ALICE", "Alice"},
		{"  bob smith  ", "Bob smith"},
		{"mcCoy", "Mccoy"},
	}

	for _, test := range tests {
		name, err := NewName(test.raw)
		if err != nil {
			t.Fatalf("NewName(%q) failed: %v", test.raw, err)
		}
		if name.String() != test.want {
			t.Errorf("NewName(%q) = %q, want %q", test.raw, name.String(), test.want)
		}
	}
}

func TestNewName_TooShort(t *testing.T) {
	for _, raw := range []string{"", "al", "  a  ", "ab "} {
		_, err := NewName(raw)
		if !errors.Is(err, errors.ErrValidation) {
			t.Errorf("NewName(%q) = %v, want validation error", raw, err)
		}
	}
}

func TestNewPhone(t *testing.T) {
	phone, err := NewPhone("0123456789")
	if err != nil {
		t.Fatalf("NewPhone failed: %v", err)
	}
	if phone.String() != "0123456789" {
		t.Errorf("String() = %q, want %q", phone.String(), "0123456789")
	}
}

func TestNewPhone_Invalid(t *testing.T) {
	tests := []string{
		"123456789",   // too short
		"12345abcde",  // non-digit
		"12345 6789",  // space inside
		"+3801234567", // plus sign
		"",
	}

	for _, raw := range tests {
		_, err := NewPhone(raw)
		if !errors.Is(err, errors.ErrValidation) {
			t.Errorf("NewPhone(%q) = %v, want validation error", raw, err)
		}
	}
}

func TestNewBirthday(t *testing.T) {
	birthday, err := NewBirthday("17.03.1990")
	if err != nil {
		t.Fatalf("NewBirthday failed: %v", err)
	}
	if birthday.String() != "17.03.1990" {
		t.Errorf("String() = %q, want %q", birthday.String(), "17.03.1990")
	}
	if birthday.Date().Year() != 1990 {
		t.Errorf("Date().Year() = %d, want 1990", birthday.Date().Year())
	}
}

func TestNewBirthday_Invalid(t *testing.T) {
	for _, raw := range []string{"1990-03-17", "17/03/1990", "32.01.1990", "not-a-date", ""} {
		_, err := NewBirthday(raw)
		if !errors.Is(err, errors.ErrValidation) {
			t.Errorf("NewBirthday(%q) = %v, want validation error", raw, err)
		}
	}
}

func TestNewAddress(t *testing.T) {
	address, err := NewAddress("  12 Main Street  ")
	if err != nil {
		t.Fatalf("NewAddress failed: %v", err)
	}
	if address.String() != "12 Main Street" {
		t.Errorf("String() = %q, want trimmed value", address.String())
	}

	if _, err := NewAddress("abcd"); !errors.Is(err, errors.ErrValidation) {
		t.Errorf("NewAddress(short) = %v, want validation error", err)
	}
}

func TestNewEmail(t *testing.T) {
	valid := []string{"alice@example.com", "bob.smith@mail.co.uk", "a_b-c@host.io"}
	for _, raw := range valid {
		if _, err := NewEmail(raw); err != nil {
			t.Errorf("NewEmail(%q) failed: %v", raw, err)
		}
	}

	invalid := []string{"alice", "alice@", "@example.com", "alice@example", "a b@example.com"}
	for _, raw := range invalid {
		if _, err := NewEmail(raw); !errors.Is(err, errors.ErrValidation) {
			t.Errorf("NewEmail(%q) = %v, want validation error", raw, err)
		}
	}
}

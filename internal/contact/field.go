package contact

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/hpungsan/satchel/internal/errors"
)

// BirthdayLayout is the input and display format for birthday values.
const BirthdayLayout = "02.01.2006"

// emailPattern matches a local-part "@" domain "." tld shape.
var emailPattern = regexp.MustCompile(`^[\w.\-]+@[\w.\-]+\.\w+$`)

// Name is a validated contact name. The canonical form (first rune
// uppercased, the rest lowercased) doubles as the Book key.
type Name struct {
	value string
}

// NewName validates and canonicalizes a raw name.
func NewName(raw string) (Name, error) {
	trimmed := strings.TrimSpace(raw)
	if utf8.RuneCountInString(trimmed) < 3 {
		return Name{}, errors.NewValidation("name must have at least 3 characters")
	}
	return Name{value: capitalize(trimmed)}, nil
}

// String returns the canonical form.
func (n Name) String() string { return n.value }

// Phone is a validated phone number: digits only, at least 10 of them.
type Phone struct {
	value string
}

// NewPhone validates a raw phone number.
func NewPhone(raw string) (Phone, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) < 10 || !isDigits(trimmed) {
		return Phone{}, errors.NewValidation("phone must be 10 digits or more")
	}
	return Phone{value: trimmed}, nil
}

// String returns the digit string as entered.
func (p Phone) String() string { return p.value }

// Birthday is a validated calendar date in DD.MM.YYYY format.
type Birthday struct {
	value time.Time
}

// NewBirthday parses a raw DD.MM.YYYY date.
func NewBirthday(raw string) (Birthday, error) {
	parsed, err := time.Parse(BirthdayLayout, strings.TrimSpace(raw))
	if err != nil {
		return Birthday{}, errors.NewValidation("invalid date format, use DD.MM.YYYY")
	}
	return Birthday{value: parsed}, nil
}

// String renders the date back in DD.MM.YYYY format.
func (b Birthday) String() string { return b.value.Format(BirthdayLayout) }

// Date returns the underlying calendar date.
func (b Birthday) Date() time.Time { return b.value }

// Address is a validated postal address: at least 5 characters after trimming.
type Address struct {
	value string
}

// NewAddress validates a raw address.
func NewAddress(raw string) (Address, error) {
	trimmed := strings.TrimSpace(raw)
	if utf8.RuneCountInString(trimmed) < 5 {
		return Address{}, errors.NewValidation("address must contain at least 5 characters")
	}
	return Address{value: trimmed}, nil
}

// String returns the trimmed address.
func (a Address) String() string { return a.value }

// Email is a validated email address.
type Email struct {
	value string
}

// NewEmail validates a raw email address.
func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if !emailPattern.MatchString(trimmed) {
		return Email{}, errors.NewValidation("invalid email format")
	}
	return Email{value: trimmed}, nil
}

// String returns the trimmed email.
func (e Email) String() string { return e.value }

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// isDigits reports whether s consists entirely of ASCII digits.
func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

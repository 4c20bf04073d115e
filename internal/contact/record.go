package contact

import "github.com/hpungsan/satchel/internal/errors"

// Record is the aggregate for one person: a canonical name, an ordered
// phone list (duplicates allowed), and optional birthday, address, and
// email slots. Field values are immutable; edits replace the stored value.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
	address  *Address
	email    *Email
}

// NewRecord creates an empty record for the given name.
func NewRecord(name Name) *Record {
	return &Record{name: name}
}

// Name returns the record's canonical name.
func (r *Record) Name() Name { return r.name }

// Phones returns the phone list in insertion order. Callers must not
// modify the returned slice.
func (r *Record) Phones() []Phone { return r.phones }

// Birthday returns the birthday slot and whether it is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// Address returns the address slot and whether it is set.
func (r *Record) Address() (Address, bool) {
	if r.address == nil {
		return Address{}, false
	}
	return *r.address, true
}

// Email returns the email slot and whether it is set.
func (r *Record) Email() (Email, bool) {
	if r.email == nil {
		return Email{}, false
	}
	return *r.email, true
}

// IsEmpty reports whether the record holds no data besides its name.
func (r *Record) IsEmpty() bool {
	return len(r.phones) == 0 && r.birthday == nil && r.address == nil && r.email == nil
}

// AddPhone appends a phone. Duplicate values are allowed.
func (r *Record) AddPhone(p Phone) {
	r.phones = append(r.phones, p)
}

// EditPhone replaces the first phone whose raw value equals oldValue.
// The lookup is by exact string equality. The phone list is unchanged
// on a miss.
func (r *Record) EditPhone(oldValue string, next Phone) error {
	for i, p := range r.phones {
		if p.String() == oldValue {
			r.phones[i] = next
			return nil
		}
	}
	return errors.NewNotFound("phone", oldValue)
}

// RemovePhone removes the first phone whose raw value equals value.
func (r *Record) RemovePhone(value string) error {
	for i, p := range r.phones {
		if p.String() == value {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return nil
		}
	}
	return errors.NewNotFound("phone", value)
}

// SetBirthday replaces the birthday slot.
func (r *Record) SetBirthday(b Birthday) { r.birthday = &b }

// SetAddress replaces the address slot.
func (r *Record) SetAddress(a Address) { r.address = &a }

// SetEmail replaces the email slot.
func (r *Record) SetEmail(e Email) { r.email = &e }

// ClearBirthday nulls the birthday slot.
func (r *Record) ClearBirthday() { r.birthday = nil }

// ClearAddress nulls the address slot.
func (r *Record) ClearAddress() { r.address = nil }

// ClearEmail nulls the email slot.
func (r *Record) ClearEmail() { r.email = nil }

package contact

import (
	"time"

	"github.com/hpungsan/satchel/internal/errors"
)

// DefaultBirthdayWindow is the lookahead for the birthdays query when no
// window is given.
const DefaultBirthdayWindow = 7

// Book owns all contact records, keyed by canonical name. Insertion
// order is preserved for listings.
type Book struct {
	records map[string]*Record
	order   []string
}

// NewBook creates an empty contact book.
func NewBook() *Book {
	return &Book{records: make(map[string]*Record)}
}

// Len returns the number of records.
func (b *Book) Len() int { return len(b.order) }

// Records returns all records in insertion order.
func (b *Book) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, b.records[key])
	}
	return out
}

// Find returns the record for rawName, canonicalizing the lookup key.
func (b *Book) Find(rawName string) (*Record, error) {
	name, err := NewName(rawName)
	if err != nil {
		return nil, err
	}
	rec, ok := b.records[name.String()]
	if !ok {
		return nil, errors.NewNotFound("contact", name.String())
	}
	return rec, nil
}

// getOrCreate returns the record for name, creating it when absent.
// Name uniqueness is enforced here: an existing record is reused, never
// duplicated.
func (b *Book) getOrCreate(name Name) *Record {
	key := name.String()
	if rec, ok := b.records[key]; ok {
		return rec
	}
	rec := NewRecord(name)
	b.records[key] = rec
	b.order = append(b.order, key)
	return rec
}

// AddContact validates the inputs, finds or creates the record, and
// appends the phone.
func (b *Book) AddContact(rawName, rawPhone string) (*Record, error) {
	name, err := NewName(rawName)
	if err != nil {
		return nil, err
	}
	phone, err := NewPhone(rawPhone)
	if err != nil {
		return nil, err
	}
	rec := b.getOrCreate(name)
	rec.AddPhone(phone)
	return rec, nil
}

// SetBirthday validates the inputs, finds or creates the record, and
// replaces its birthday.
func (b *Book) SetBirthday(rawName, rawBirthday string) (*Record, error) {
	name, err := NewName(rawName)
	if err != nil {
		return nil, err
	}
	birthday, err := NewBirthday(rawBirthday)
	if err != nil {
		return nil, err
	}
	rec := b.getOrCreate(name)
	rec.SetBirthday(birthday)
	return rec, nil
}

// SetAddress validates the inputs, finds or creates the record, and
// replaces its address.
func (b *Book) SetAddress(rawName, rawAddress string) (*Record, error) {
	name, err := NewName(rawName)
	if err != nil {
		return nil, err
	}
	address, err := NewAddress(rawAddress)
	if err != nil {
		return nil, err
	}
	rec := b.getOrCreate(name)
	rec.SetAddress(address)
	return rec, nil
}

// SetEmail validates the inputs, finds or creates the record, and
// replaces its email.
func (b *Book) SetEmail(rawName, rawEmail string) (*Record, error) {
	name, err := NewName(rawName)
	if err != nil {
		return nil, err
	}
	email, err := NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	rec := b.getOrCreate(name)
	rec.SetEmail(email)
	return rec, nil
}

// Delete removes the record for rawName entirely.
func (b *Book) Delete(rawName string) error {
	name, err := NewName(rawName)
	if err != nil {
		return err
	}
	key := name.String()
	if _, ok := b.records[key]; !ok {
		return errors.NewNotFound("contact", key)
	}
	delete(b.records, key)
	for i, k := range b.order {
		if k == key {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Restore re-inserts a record loaded from a snapshot, preserving load
// order. Existing names are left untouched. Used by the persistence
// gateway only.
func (b *Book) Restore(rec *Record) {
	key := rec.Name().String()
	if _, ok := b.records[key]; ok {
		return
	}
	b.records[key] = rec
	b.order = append(b.order, key)
}

// UpcomingBirthdays returns records whose birthday occurs strictly after
// today and within windowDays, in book insertion order. A non-positive
// window falls back to DefaultBirthdayWindow.
func (b *Book) UpcomingBirthdays(today time.Time, windowDays int) []*Record {
	if windowDays <= 0 {
		windowDays = DefaultBirthdayWindow
	}
	today = truncateToDay(today)

	var upcoming []*Record
	for _, rec := range b.Records() {
		birthday, ok := rec.Birthday()
		if !ok {
			continue
		}
		days := daysUntil(birthday.Date(), today)
		if days > 0 && days <= windowDays {
			upcoming = append(upcoming, rec)
		}
	}
	return upcoming
}

// NextOccurrence returns the next occurrence of dob's month and day
// strictly relative to today: this year's occurrence, or next year's if
// it has already passed. time.Date normalizes Feb 29 to Mar 1 in
// non-leap years, so such birthdays are observed on Mar 1.
func NextOccurrence(dob, today time.Time) time.Time {
	today = truncateToDay(today)
	occurrence := time.Date(today.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
	if occurrence.Before(today) {
		occurrence = time.Date(today.Year()+1, dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
	}
	return occurrence
}

// daysUntil counts whole days from today to the next occurrence of dob.
func daysUntil(dob, today time.Time) int {
	return int(NextOccurrence(dob, today).Sub(truncateToDay(today)).Hours() / 24)
}

// truncateToDay drops the time-of-day component, pinning to UTC so day
// arithmetic never crosses DST boundaries.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

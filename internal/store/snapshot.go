package store

import (
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/hpungsan/satchel/internal/contact"
	"github.com/hpungsan/satchel/internal/errors"
	"github.com/hpungsan/satchel/internal/note"
)

// Load reads the full snapshot into fresh books. Empty tables yield
// empty books.
func Load(db *sql.DB) (*contact.Book, *note.Book, error) {
	contacts, err := loadContacts(db)
	if err != nil {
		return nil, nil, err
	}
	notes, err := loadNotes(db)
	if err != nil {
		return nil, nil, err
	}
	return contacts, notes, nil
}

// Save replaces the snapshot with the current book contents in one
// transaction and records a new snapshot revision. Returns the revision
// ID.
func Save(db *sql.DB, contacts *contact.Book, notes *note.Book) (string, error) {
	tx, err := db.Begin()
	if err != nil {
		return "", errors.NewInternal(err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM contacts"); err != nil {
		return "", errors.NewInternal(err)
	}
	if _, err := tx.Exec("DELETE FROM notes"); err != nil {
		return "", errors.NewInternal(err)
	}

	if err := saveContacts(tx, contacts); err != nil {
		return "", err
	}
	if err := saveNotes(tx, notes); err != nil {
		return "", err
	}

	revision := newSnapshotID()
	if _, err := tx.Exec(
		"INSERT INTO snapshots (id, saved_at) VALUES (?, ?)",
		revision, time.Now().Unix(),
	); err != nil {
		return "", errors.NewInternal(err)
	}

	if err := tx.Commit(); err != nil {
		return "", errors.NewInternal(err)
	}
	return revision, nil
}

// LatestRevision returns the most recent snapshot revision ID, or ""
// when nothing has been saved yet.
func LatestRevision(db *sql.DB) (string, error) {
	var id string
	err := db.QueryRow("SELECT id FROM snapshots ORDER BY rowid DESC LIMIT 1").Scan(&id)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", errors.NewInternal(err)
	}
	return id, nil
}

func saveContacts(tx *sql.Tx, book *contact.Book) error {
	stmt, err := tx.Prepare(`
		INSERT INTO contacts (position, name, birthday, address, email, phones_json)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return errors.NewInternal(err)
	}
	defer stmt.Close()

	for position, rec := range book.Records() {
		phones := make([]string, 0, len(rec.Phones()))
		for _, p := range rec.Phones() {
			phones = append(phones, p.String())
		}
		var phonesJSON sql.NullString
		if len(phones) > 0 {
			data, err := json.Marshal(phones)
			if err != nil {
				return errors.NewInternal(err)
			}
			phonesJSON = sql.NullString{String: string(data), Valid: true}
		}

		var birthday, address, email sql.NullString
		if b, ok := rec.Birthday(); ok {
			birthday = sql.NullString{String: b.String(), Valid: true}
		}
		if a, ok := rec.Address(); ok {
			address = sql.NullString{String: a.String(), Valid: true}
		}
		if e, ok := rec.Email(); ok {
			email = sql.NullString{String: e.String(), Valid: true}
		}

		if _, err := stmt.Exec(position, rec.Name().String(), birthday, address, email, phonesJSON); err != nil {
			return errors.NewInternal(err)
		}
	}
	return nil
}

func saveNotes(tx *sql.Tx, book *note.Book) error {
	stmt, err := tx.Prepare(`
		INSERT INTO notes (position, title, text, tags_json, stamped_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return errors.NewInternal(err)
	}
	defer stmt.Close()

	for position, n := range book.Notes() {
		tags := make([]string, 0, len(n.Tags()))
		for _, tag := range n.Tags() {
			tags = append(tags, tag.String())
		}
		var tagsJSON sql.NullString
		if len(tags) > 0 {
			data, err := json.Marshal(tags)
			if err != nil {
				return errors.NewInternal(err)
			}
			tagsJSON = sql.NullString{String: string(data), Valid: true}
		}

		if _, err := stmt.Exec(position, n.Title().String(), n.Text().String(), tagsJSON, n.Stamped().Unix()); err != nil {
			return errors.NewInternal(err)
		}
	}
	return nil
}

func loadContacts(db *sql.DB) (*contact.Book, error) {
	rows, err := db.Query(`
		SELECT name, birthday, address, email, phones_json
		FROM contacts ORDER BY position
	`)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	book := contact.NewBook()
	for rows.Next() {
		var name string
		var birthday, address, email, phonesJSON sql.NullString
		if err := rows.Scan(&name, &birthday, &address, &email, &phonesJSON); err != nil {
			return nil, errors.NewInternal(err)
		}

		rec, err := restoreRecord(name, birthday, address, email, phonesJSON)
		if err != nil {
			return nil, err
		}
		book.Restore(rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return book, nil
}

// restoreRecord rebuilds a record from snapshot columns. Stored values
// already passed field validation before they were saved, so a
// constructor failure here means snapshot corruption.
func restoreRecord(name string, birthday, address, email, phonesJSON sql.NullString) (*contact.Record, error) {
	n, err := contact.NewName(name)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	rec := contact.NewRecord(n)

	if phonesJSON.Valid {
		var phones []string
		if err := json.Unmarshal([]byte(phonesJSON.String), &phones); err != nil {
			return nil, errors.NewInternal(err)
		}
		for _, raw := range phones {
			p, err := contact.NewPhone(raw)
			if err != nil {
				return nil, errors.NewInternal(err)
			}
			rec.AddPhone(p)
		}
	}
	if birthday.Valid {
		b, err := contact.NewBirthday(birthday.String)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		rec.SetBirthday(b)
	}
	if address.Valid {
		a, err := contact.NewAddress(address.String)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		rec.SetAddress(a)
	}
	if email.Valid {
		e, err := contact.NewEmail(email.String)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		rec.SetEmail(e)
	}
	return rec, nil
}

func loadNotes(db *sql.DB) (*note.Book, error) {
	rows, err := db.Query(`
		SELECT title, text, tags_json, stamped_at
		FROM notes ORDER BY position
	`)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	book := note.NewBook()
	for rows.Next() {
		var title, text string
		var tagsJSON sql.NullString
		var stampedAt int64
		if err := rows.Scan(&title, &text, &tagsJSON, &stampedAt); err != nil {
			return nil, errors.NewInternal(err)
		}

		n, err := restoreNote(title, text, tagsJSON, stampedAt)
		if err != nil {
			return nil, err
		}
		book.Restore(n)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return book, nil
}

func restoreNote(title, text string, tagsJSON sql.NullString, stampedAt int64) (*note.Note, error) {
	t, err := note.NewTitle(title)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	body, err := note.NewText(text)
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	var tags []note.Tag
	if tagsJSON.Valid {
		var raw []string
		if err := json.Unmarshal([]byte(tagsJSON.String), &raw); err != nil {
			return nil, errors.NewInternal(err)
		}
		for _, value := range raw {
			tag, err := note.NewTag(value)
			if err != nil {
				return nil, errors.NewInternal(err)
			}
			tags = append(tags, tag)
		}
	}

	return note.New(t, body, tags, time.Unix(stampedAt, 0).UTC()), nil
}

// newSnapshotID mints a ULID for a snapshot revision.
func newSnapshotID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

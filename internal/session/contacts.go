package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hpungsan/satchel/internal/contact"
	"github.com/hpungsan/satchel/internal/errors"
)

// runContacts is the contacts submenu loop. It returns SignalBack when
// the user pops to the main menu and SignalExit when the whole session
// must end.
func (s *Session) runContacts() Signal {
	s.renderContactHelp()
	for {
		line, err := s.console.Prompt("contacts")
		if err != nil {
			return SignalExit
		}
		cmd, args := parseInput(line)
		if cmd == "" {
			continue
		}
		if sig := s.dispatchContact(cmd, args); sig != SignalContinue {
			return sig
		}
	}
}

func (s *Session) dispatchContact(cmd string, args []string) Signal {
	switch cmd {
	case "back":
		return SignalBack
	case "exit", "close":
		return SignalExit
	case "help":
		s.renderContactHelp()
	case "add":
		s.report(s.handleAddContact(args))
	case "add-birthday":
		s.report(s.handleAddBirthday(args))
	case "add-address":
		s.report(s.handleAddAddress(args))
	case "add-email":
		s.report(s.handleAddEmail(args))
	case "show":
		s.report(s.handleShowContact(args))
	case "show-birthday":
		s.report(s.handleShowBirthday(args))
	case "birthdays":
		s.report(s.handleBirthdays(args))
	case "all":
		s.handleAllContacts()
	case "update":
		return s.contactUpdateFlow(args)
	case "remove":
		return s.contactRemoveFlow(args)
	default:
		s.console.Errorf("Unknown contacts command %q. Type 'help' to see the menu.", cmd)
	}
	return SignalContinue
}

func (s *Session) handleAddContact(args []string) error {
	if len(args) < 2 {
		return errors.NewMissingArgument("add <name> <phone>")
	}
	rec, err := s.contacts.AddContact(args[0], args[1])
	if err != nil {
		return err
	}
	s.console.Successf("Phone %s added to %s.", args[1], rec.Name())
	return nil
}

func (s *Session) handleAddBirthday(args []string) error {
	if len(args) < 2 {
		return errors.NewMissingArgument("add-birthday <name> <DD.MM.YYYY>")
	}
	rec, err := s.contacts.SetBirthday(args[0], args[1])
	if err != nil {
		return err
	}
	s.console.Successf("Birthday for %s has been set.", rec.Name())
	return nil
}

func (s *Session) handleAddAddress(args []string) error {
	if len(args) < 2 {
		return errors.NewMissingArgument("add-address <name> <address>")
	}
	// The address is everything after the name; it may contain spaces.
	rec, err := s.contacts.SetAddress(args[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	s.console.Successf("Address for %s has been set.", rec.Name())
	return nil
}

func (s *Session) handleAddEmail(args []string) error {
	if len(args) < 2 {
		return errors.NewMissingArgument("add-email <name> <email>")
	}
	rec, err := s.contacts.SetEmail(args[0], args[1])
	if err != nil {
		return err
	}
	s.console.Successf("Email for %s has been set.", rec.Name())
	return nil
}

func (s *Session) handleShowContact(args []string) error {
	if len(args) < 1 {
		return errors.NewMissingArgument("show <name>")
	}
	rec, err := s.contacts.Find(args[0])
	if err != nil {
		return err
	}
	s.console.Table("Contact", contactColumns, [][]string{contactRow(rec)})
	return nil
}

func (s *Session) handleShowBirthday(args []string) error {
	if len(args) < 1 {
		return errors.NewMissingArgument("show-birthday <name>")
	}
	rec, err := s.contacts.Find(args[0])
	if err != nil {
		return err
	}
	if birthday, ok := rec.Birthday(); ok {
		s.console.Println(fmt.Sprintf("%s's birthday is %s.", rec.Name(), birthday))
	} else {
		s.console.Println(fmt.Sprintf("%s's birthday is not set.", rec.Name()))
	}
	return nil
}

func (s *Session) handleBirthdays(args []string) error {
	window := s.window
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return errors.NewValidationf("window must be a positive number of days, got %q", args[0])
		}
		window = n
	}

	today := s.now()
	upcoming := s.contacts.UpcomingBirthdays(today, window)
	if len(upcoming) == 0 {
		s.console.Println(fmt.Sprintf("There are no birthdays in the next %d days.", window))
		return nil
	}

	rows := make([][]string, 0, len(upcoming))
	for _, rec := range upcoming {
		birthday, _ := rec.Birthday()
		occurrence := contact.NextOccurrence(birthday.Date(), today)
		rows = append(rows, []string{
			rec.Name().String(),
			birthday.String(),
			occurrence.Format(contact.BirthdayLayout),
		})
	}
	s.console.Table(
		fmt.Sprintf("Upcoming birthdays in the next %d days", window),
		[]string{"Name", "Birthday", "Celebrated on"},
		rows,
	)
	return nil
}

func (s *Session) handleAllContacts() {
	records := s.contacts.Records()
	if len(records) == 0 {
		s.console.Println("There are no records in your address book. Start adding.")
		return
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, contactRow(rec))
	}
	s.console.Table("Contacts", contactColumns, rows)
}

// contactUpdateFlow is the interactive edit loop for one record. Each
// pass applies a single field edit; back leaves edits already applied
// in place.
func (s *Session) contactUpdateFlow(args []string) Signal {
	if len(args) < 1 {
		s.report(errors.NewMissingArgument("update <name>"))
		return SignalContinue
	}
	rec, err := s.contacts.Find(args[0])
	if err != nil {
		s.report(err)
		return SignalContinue
	}

	for {
		field, sig := s.promptValue("Update what (phone | email | address | birthday) or back")
		if sig == SignalExit {
			return SignalExit
		}
		if sig == SignalBack {
			return SignalContinue
		}

		switch strings.ToLower(field) {
		case "phone":
			if sig := s.editPhoneStep(rec); sig == SignalExit {
				return SignalExit
			}
		case "email":
			value, sig := s.promptValue("New email")
			if sig == SignalExit {
				return SignalExit
			}
			if sig == SignalBack {
				continue
			}
			_, err := s.contacts.SetEmail(rec.Name().String(), value)
			s.report(err)
			if err == nil {
				s.console.Successf("Email for %s has been updated.", rec.Name())
			}
		case "address":
			value, sig := s.promptValue("New address")
			if sig == SignalExit {
				return SignalExit
			}
			if sig == SignalBack {
				continue
			}
			_, err := s.contacts.SetAddress(rec.Name().String(), value)
			s.report(err)
			if err == nil {
				s.console.Successf("Address for %s has been updated.", rec.Name())
			}
		case "birthday":
			value, sig := s.promptValue("New birthday (DD.MM.YYYY)")
			if sig == SignalExit {
				return SignalExit
			}
			if sig == SignalBack {
				continue
			}
			_, err := s.contacts.SetBirthday(rec.Name().String(), value)
			s.report(err)
			if err == nil {
				s.console.Successf("Birthday for %s has been updated.", rec.Name())
			}
		default:
			s.console.Errorf("Choose one of: phone, email, address, birthday, back.")
		}
	}
}

// editPhoneStep prompts for the old and new phone values and swaps
// them. SignalBack aborts just this step.
func (s *Session) editPhoneStep(rec *contact.Record) Signal {
	oldValue, sig := s.promptValue("Phone to replace")
	if sig != SignalContinue {
		if sig == SignalExit {
			return SignalExit
		}
		return SignalContinue
	}
	newValue, sig := s.promptValue("New phone")
	if sig != SignalContinue {
		if sig == SignalExit {
			return SignalExit
		}
		return SignalContinue
	}

	phone, err := contact.NewPhone(newValue)
	if err != nil {
		s.report(err)
		return SignalContinue
	}
	if err := rec.EditPhone(oldValue, phone); err != nil {
		s.report(err)
		return SignalContinue
	}
	s.console.Successf("%s's phone %s has been updated to %s.", rec.Name(), oldValue, phone)
	return SignalContinue
}

// contactRemoveFlow removes a single field or the whole record.
// Removing the contact completes the flow.
func (s *Session) contactRemoveFlow(args []string) Signal {
	if len(args) < 1 {
		s.report(errors.NewMissingArgument("remove <name>"))
		return SignalContinue
	}
	rec, err := s.contacts.Find(args[0])
	if err != nil {
		s.report(err)
		return SignalContinue
	}

	for {
		field, sig := s.promptValue("Remove what (phone | email | address | birthday | contact) or back")
		if sig == SignalExit {
			return SignalExit
		}
		if sig == SignalBack {
			return SignalContinue
		}

		switch strings.ToLower(field) {
		case "phone":
			value, sig := s.promptValue("Phone to remove")
			if sig == SignalExit {
				return SignalExit
			}
			if sig == SignalBack {
				continue
			}
			if err := rec.RemovePhone(value); err != nil {
				s.report(err)
				continue
			}
			s.console.Successf("Phone %s removed from %s.", value, rec.Name())
		case "email":
			rec.ClearEmail()
			s.console.Successf("Email for %s has been removed.", rec.Name())
		case "address":
			rec.ClearAddress()
			s.console.Successf("Address for %s has been removed.", rec.Name())
		case "birthday":
			rec.ClearBirthday()
			s.console.Successf("Birthday for %s has been removed.", rec.Name())
		case "contact":
			if err := s.contacts.Delete(rec.Name().String()); err != nil {
				s.report(err)
				continue
			}
			s.console.Successf("Contact %s has been deleted.", rec.Name())
			return SignalContinue
		default:
			s.console.Errorf("Choose one of: phone, email, address, birthday, contact, back.")
		}
	}
}

var contactColumns = []string{"Name", "Phones", "Birthday", "Address", "Email"}

// contactRow flattens a record for table rendering.
func contactRow(rec *contact.Record) []string {
	phones := make([]string, 0, len(rec.Phones()))
	for _, p := range rec.Phones() {
		phones = append(phones, p.String())
	}

	birthday, address, email := "", "", ""
	if b, ok := rec.Birthday(); ok {
		birthday = b.String()
	}
	if a, ok := rec.Address(); ok {
		address = a.String()
	}
	if e, ok := rec.Email(); ok {
		email = e.String()
	}

	return []string{
		rec.Name().String(),
		strings.Join(phones, ", "),
		birthday,
		address,
		email,
	}
}

func (s *Session) renderContactHelp() {
	s.console.Table("Contacts menu", []string{"Command", "Description"}, [][]string{
		{"add <name> <phone>", "Add a contact or another phone"},
		{"add-birthday <name> <DD.MM.YYYY>", "Set a birthday"},
		{"add-address <name> <address>", "Set an address"},
		{"add-email <name> <email>", "Set an email"},
		{"update <name>", "Interactively edit fields"},
		{"remove <name>", "Interactively remove fields or the contact"},
		{"show <name>", "Show one contact"},
		{"show-birthday <name>", "Show one contact's birthday"},
		{"birthdays [days]", "Contacts with birthdays coming up"},
		{"all", "List every contact"},
		{"help", "Show this menu"},
		{"back", "Return to the main menu"},
		{"exit", "Save and quit"},
	})
}

// Package command parses one input line into a verb plus arguments and
// executes it against the address book. Every error is recovered here and
// converted to a user-facing reply; nothing propagates past Dispatch.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/smileynet/rolodex/internal/book"
)

// Sentinel errors for the dispatcher's own error kinds. Book-level kinds
// (ErrInvalidPhone, ErrPhoneNotFound, ErrEmptyName) pass through unchanged
// and are translated alongside these at the Dispatch boundary.
var (
	ErrUsage           = errors.New("command: wrong number of arguments")
	ErrContactNotFound = errors.New("command: contact not found")
)

// Reply is the outcome of dispatching one line.
type Reply struct {
	Text string
	Quit bool
}

// Dispatcher executes parsed verbs against a Book.
type Dispatcher struct {
	book     *book.Book
	farewell string
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithFarewell overrides the reply printed for exit/close.
func WithFarewell(text string) Option {
	return func(d *Dispatcher) {
		if text != "" {
			d.farewell = text
		}
	}
}

// New creates a Dispatcher over the given book.
func New(b *book.Book, opts ...Option) *Dispatcher {
	d := &Dispatcher{book: b, farewell: "Good bye!"}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch executes one line of input and returns the reply.
// A blank line yields an empty reply; errors never escape.
func (d *Dispatcher) Dispatch(line string) Reply {
	verb, args := parse(line)

	switch verb {
	case "":
		return Reply{}
	case "exit", "close":
		return Reply{Text: d.farewell, Quit: true}
	case "hello":
		return Reply{Text: "How can I help you?"}
	case "help":
		return Reply{Text: helpText}
	case "all":
		return Reply{Text: d.showAll()}
	}

	var text string
	var err error
	switch verb {
	case "add":
		text, err = d.add(args)
	case "change":
		text, err = d.change(args)
	case "phone":
		text, err = d.showPhone(args)
	case "edit":
		text, err = d.edit(args)
	case "remove":
		text, err = d.remove(args)
	case "delete":
		text, err = d.deleteContact(args)
	default:
		return Reply{Text: "Invalid command."}
	}

	if err != nil {
		return Reply{Text: errorReply(err)}
	}
	return Reply{Text: text}
}

// parse splits a line into a lowercased verb and its arguments.
func parse(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// errorReply translates an error kind into the user-facing reply.
// This is the single recovery point mandated for the command boundary.
func errorReply(err error) string {
	switch {
	case errors.Is(err, ErrUsage):
		return "Give me name and phone please."
	case errors.Is(err, ErrContactNotFound):
		return "Contact not found."
	case errors.Is(err, book.ErrPhoneNotFound):
		return "Phone not found."
	case errors.Is(err, book.ErrInvalidPhone):
		return "Phone number must be 10 digits."
	case errors.Is(err, book.ErrEmptyName):
		return "Contact name cannot be empty."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// add creates a contact on first use and appends the phone on repeats.
func (d *Dispatcher) add(args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("%w: add <name> <phone>", ErrUsage)
	}
	name, phone := args[0], args[1]

	if rec, ok := d.book.Find(name); ok {
		if err := rec.AddPhone(phone); err != nil {
			return "", err
		}
		return "Phone added.", nil
	}

	rec, err := book.NewRecord(name)
	if err != nil {
		return "", err
	}
	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	d.book.Add(rec)
	return "Contact added.", nil
}

// change replaces an existing contact's phones with the single given phone.
func (d *Dispatcher) change(args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("%w: change <name> <phone>", ErrUsage)
	}
	name, phone := args[0], args[1]

	rec, ok := d.book.Find(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrContactNotFound, name)
	}

	p, err := book.NewPhone(phone)
	if err != nil {
		return "", err
	}
	rec.Phones = []book.Phone{p}
	return "Contact updated.", nil
}

// showPhone lists a contact's phone numbers.
func (d *Dispatcher) showPhone(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: phone <name>", ErrUsage)
	}

	rec, ok := d.book.Find(args[0])
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrContactNotFound, args[0])
	}

	phones := make([]string, len(rec.Phones))
	for i, p := range rec.Phones {
		phones[i] = p.String()
	}
	return strings.Join(phones, "; "), nil
}

// edit replaces one phone number on a contact.
func (d *Dispatcher) edit(args []string) (string, error) {
	if len(args) != 3 {
		return "", fmt.Errorf("%w: edit <name> <old> <new>", ErrUsage)
	}

	rec, ok := d.book.Find(args[0])
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrContactNotFound, args[0])
	}
	if err := rec.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	return "Phone updated.", nil
}

// remove deletes all matching phone numbers from a contact.
func (d *Dispatcher) remove(args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("%w: remove <name> <phone>", ErrUsage)
	}

	rec, ok := d.book.Find(args[0])
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrContactNotFound, args[0])
	}
	rec.RemovePhone(args[1])
	return "Phone removed.", nil
}

// deleteContact removes a whole record from the book.
func (d *Dispatcher) deleteContact(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: delete <name>", ErrUsage)
	}

	if _, ok := d.book.Find(args[0]); !ok {
		return "", fmt.Errorf("%w: %s", ErrContactNotFound, args[0])
	}
	d.book.Delete(args[0])
	return "Contact deleted.", nil
}

// showAll lists every contact, one line each, sorted by name.
func (d *Dispatcher) showAll() string {
	names := d.book.Names()
	if len(names) == 0 {
		return "No contacts found."
	}

	lines := make([]string, len(names))
	for i, name := range names {
		rec, _ := d.book.Find(name)
		lines[i] = rec.String()
	}
	return strings.Join(lines, "\n")
}

const helpText = `Commands:
  hello                    greet the assistant
  add <name> <phone>       add a contact, or another phone to an existing one
  change <name> <phone>    replace a contact's phones with one number
  phone <name>             show a contact's phone numbers
  all                      list every contact
  edit <name> <old> <new>  replace one phone number
  remove <name> <phone>    remove a phone number
  delete <name>            delete a contact
  help                     show this help
  exit | close             leave the assistant`

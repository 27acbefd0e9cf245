package book

import "sort"

// Book maps contact names to their records.
// It lives for the duration of one process run; nothing is persisted.
type Book struct {
	records map[string]*Record
}

// New creates an empty Book.
func New() *Book {
	return &Book{records: make(map[string]*Record)}
}

// Add inserts rec, overwriting any existing record with the same name.
func (b *Book) Add(rec *Record) {
	b.records[rec.Name] = rec
}

// Find returns the record for name. Absence is not an error.
func (b *Book) Find(name string) (*Record, bool) {
	rec, ok := b.records[name]
	return rec, ok
}

// Delete removes the record for name. Deleting an absent name is a no-op.
func (b *Book) Delete(name string) {
	delete(b.records, name)
}

// Names returns all contact names sorted alphabetically.
func (b *Book) Names() []string {
	names := make([]string, 0, len(b.records))
	for name := range b.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of records in the book.
func (b *Book) Len() int {
	return len(b.records)
}

package prefs

import (
	"errors"

	"github.com/google/uuid"
)

// ErrIndexOutOfRange is returned when a positional index does not refer to
// an entry of the current list.
var ErrIndexOutOfRange = errors.New("index out of range")

type entry[T any] struct {
	id   string
	item T
}

// ItemList is an ordered sequence of items owned by a single section.
//
// Items are addressed by position. Each entry also carries an opaque ID
// assigned at insertion; it survives Replace and lets callers re-resolve a
// position after the list changed underneath them.
type ItemList[T any] struct {
	entries []entry[T]
}

// NewItemList returns an empty list.
func NewItemList[T any]() *ItemList[T] {
	return &ItemList[T]{}
}

// Append adds item at the end and returns its ID.
func (l *ItemList[T]) Append(item T) string {
	id := uuid.NewString()
	l.entries = append(l.entries, entry[T]{id: id, item: item})
	return id
}

// Replace swaps the item at index i in place. The entry keeps its ID.
func (l *ItemList[T]) Replace(i int, item T) error {
	if !l.valid(i) {
		return ErrIndexOutOfRange
	}
	l.entries[i].item = item
	return nil
}

// RemoveAt excises the entry at index i.
func (l *ItemList[T]) RemoveAt(i int) error {
	if !l.valid(i) {
		return ErrIndexOutOfRange
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	return nil
}

// At returns the item at index i.
func (l *ItemList[T]) At(i int) (T, error) {
	if !l.valid(i) {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return l.entries[i].item, nil
}

// ID returns the identifier of the entry at index i.
func (l *ItemList[T]) ID(i int) (string, error) {
	if !l.valid(i) {
		return "", ErrIndexOutOfRange
	}
	return l.entries[i].id, nil
}

// IndexOf returns the current position of the entry with the given ID, or -1.
func (l *ItemList[T]) IndexOf(id string) int {
	for i, e := range l.entries {
		if e.id == id {
			return i
		}
	}
	return -1
}

// Len returns the number of entries.
func (l *ItemList[T]) Len() int { return len(l.entries) }

// Items returns a copy of the items in list order.
func (l *ItemList[T]) Items() []T {
	out := make([]T, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.item
	}
	return out
}

func (l *ItemList[T]) valid(i int) bool {
	return i >= 0 && i < len(l.entries)
}

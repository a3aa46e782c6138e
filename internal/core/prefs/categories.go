package prefs

import (
	"errors"
	"fmt"
)

// ErrNoCategories is returned when a category set is built without labels.
var ErrNoCategories = errors.New("at least one category is required")

// Categories is an ordered, closed set of category labels. The first label is
// the default selection.
type Categories[C ~string] []C

// NewCategories builds a category set, rejecting empty and duplicate labels.
func NewCategories[C ~string](labels ...C) (Categories[C], error) {
	if len(labels) == 0 {
		return nil, ErrNoCategories
	}

	seen := make(map[C]struct{}, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			return nil, fmt.Errorf("duplicate category %q", string(l))
		}
		seen[l] = struct{}{}
	}

	out := make(Categories[C], len(labels))
	copy(out, labels)
	return out, nil
}

// MustCategories is NewCategories for package-level label sets.
func MustCategories[C ~string](labels ...C) Categories[C] {
	c, err := NewCategories(labels...)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the first label, or the zero value for an empty set.
func (c Categories[C]) Default() C {
	var zero C
	if len(c) == 0 {
		return zero
	}
	return c[0]
}

// Contains reports whether label is a member of the set.
func (c Categories[C]) Contains(label C) bool {
	return c.Index(label) >= 0
}

// Index returns the position of label, or -1.
func (c Categories[C]) Index(label C) int {
	for i, l := range c {
		if l == label {
			return i
		}
	}
	return -1
}

// Strings returns the labels as plain strings.
func (c Categories[C]) Strings() []string {
	out := make([]string, len(c))
	for i, l := range c {
		out[i] = string(l)
	}
	return out
}

// Package prefs holds the meal preference domain: category label sets,
// positional item lists with stable identifiers, the allergy quick-add rule
// and the append-only considerations log.
package prefs

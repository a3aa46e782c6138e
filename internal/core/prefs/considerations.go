package prefs

import "github.com/colonyops/mealprefs/internal/core/validate"

// MaxConsiderationLength caps a single consideration, in characters.
const MaxConsiderationLength = 500

// ConsiderationExamples are sample notes offered as hints.
var ConsiderationExamples = []string{
	"Texture preference: Prefers soft foods like mashed potatoes.",
	"Temperature preference: Likes food lukewarm.",
	"Cultural restriction: Avoids pork due to religious reasons.",
}

// ClampConsideration drops every character past MaxConsiderationLength.
func ClampConsideration(text string) string {
	r := []rune(text)
	if len(r) <= MaxConsiderationLength {
		return text
	}
	return string(r[:MaxConsiderationLength])
}

// ConsiderationLog is an append-only list of free-text notes.
type ConsiderationLog struct {
	entries []string
}

// Submit trims text and appends it. Blank text is ignored and Submit
// returns false.
func (l *ConsiderationLog) Submit(text string) bool {
	trimmed, err := validate.Text(ClampConsideration(text))
	if err != nil {
		return false
	}
	l.entries = append(l.entries, trimmed)
	return true
}

// Entries returns a copy of the log in submission order.
func (l *ConsiderationLog) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of submitted notes.
func (l *ConsiderationLog) Len() int { return len(l.entries) }

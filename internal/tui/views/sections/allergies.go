package sections

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/colonyops/mealprefs/internal/core/logging"
	"github.com/colonyops/mealprefs/internal/core/prefs"
	"github.com/colonyops/mealprefs/internal/tui/components/form"
	"github.com/colonyops/mealprefs/internal/tui/scrolllock"
	"github.com/colonyops/mealprefs/internal/tui/views/listeditor"
)

// Allergies edits intolerances and allergies. The selected severity lives
// here so the quick-add presets use the same severity as the add form.
type Allergies struct {
	*listeditor.Editor[prefs.Allergy, prefs.AllergySeverity]

	list     *prefs.ItemList[prefs.Allergy]
	severity prefs.AllergySeverity
	presets  *form.ButtonRow
	log      zerolog.Logger
}

// NewAllergies binds an editor and the quick-add row to list.
func NewAllergies(list *prefs.ItemList[prefs.Allergy], lock *scrolllock.Lock) (*Allergies, error) {
	a := &Allergies{
		list:     list,
		severity: prefs.AllergySeverities.Default(),
		presets:  form.NewButtonRow("Quick Add Common Allergies:", prefs.CommonAllergies),
		log:      logging.Component("allergies"),
	}

	e, err := listeditor.New(listeditor.Config[prefs.Allergy, prefs.AllergySeverity]{
		Title:       "Food Intolerances / Allergies",
		Placeholder: "Enter allergy/intolerance",
		Categories:  prefs.AllergySeverities,
		Items:       list.Items,
		Accessors: listeditor.Accessors[prefs.Allergy, prefs.AllergySeverity]{
			Name: func(al prefs.Allergy) string { return al.FoodName },
			SetName: func(al prefs.Allergy, name string) prefs.Allergy {
				al.FoodName = name
				return al
			},
			Category: func(al prefs.Allergy) prefs.AllergySeverity { return al.Severity },
			SetCategory: func(al prefs.Allergy, s prefs.AllergySeverity) prefs.Allergy {
				al.Severity = s
				return al
			},
			New: func(name string, s prefs.AllergySeverity) prefs.Allergy {
				return prefs.Allergy{Severity: s, FoodName: name}
			},
		},
		Callbacks:        listCallbacks(list, a.log),
		Identity:         identity(list),
		Selected:         a.Severity,
		OnCategoryChange: a.SetSeverity,
		Extra:            a.presets,
		Lock:             lock,
	})
	if err != nil {
		return nil, err
	}
	a.Editor = e
	return a, nil
}

// Severity returns the severity used for new entries.
func (a *Allergies) Severity() prefs.AllergySeverity { return a.severity }

// SetSeverity changes the severity used for new entries.
func (a *Allergies) SetSeverity(s prefs.AllergySeverity) {
	if prefs.AllergySeverities.Contains(s) {
		a.severity = s
	}
}

// QuickAdd adds name at the selected severity unless it is already listed
// at that severity. It reports whether anything was added.
func (a *Allergies) QuickAdd(name string) bool {
	added := prefs.QuickAddAllergy(a.list, name, a.severity)
	a.log.Debug().
		Str("name", name).
		Str("severity", string(a.severity)).
		Bool("added", added).
		Msg("quick add")
	return added
}

// Update forwards msg to the editor and applies any preset press.
func (a *Allergies) Update(msg tea.Msg) tea.Cmd {
	cmd := a.Editor.Update(msg)
	if name, ok := a.presets.Pressed(); ok {
		a.QuickAdd(name)
	}
	return cmd
}

// Package wizard records meal preferences through a sequence of prompts,
// for terminals where the full-screen page is unavailable.
package wizard

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/colonyops/mealprefs/internal/core/logging"
	"github.com/colonyops/mealprefs/internal/core/prefs"
	"github.com/colonyops/mealprefs/internal/core/validate"
)

// Wizard walks through the four sections in page order.
type Wizard struct {
	prompter Prompter
	profile  *prefs.Profile
}

// New creates a wizard that fills profile.
func New(prompter Prompter, profile *prefs.Profile) *Wizard {
	return &Wizard{prompter: prompter, profile: profile}
}

// Run asks every question. Answers given before an error are kept in the
// profile.
func (w *Wizard) Run(ctx context.Context) error {
	steps := []struct {
		section string
		run     func(context.Context) error
	}{
		{"favorites", w.favorites},
		{"dislikes", w.dislikes},
		{"allergies", w.allergies},
		{"considerations", w.considerations},
	}

	for _, s := range steps {
		ctx := logging.WithSection(ctx, s.section)
		log.Debug().Ctx(ctx).Msg("wizard step")
		if err := s.run(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (w *Wizard) favorites(ctx context.Context) error {
	return collect(ctx, w.prompter, "My Favorite Foods", "Enter food item", prefs.MealCategories,
		func(name string, c prefs.MealCategory) { w.profile.Favorites.Append(prefs.FavoriteFood{Category: c, FoodName: name}) })
}

func (w *Wizard) dislikes(ctx context.Context) error {
	return collect(ctx, w.prompter, "Disliked Foods", "Enter food item", prefs.DislikeSeverities,
		func(name string, s prefs.DislikeSeverity) { w.profile.Dislikes.Append(prefs.DislikedFood{Severity: s, FoodName: name}) })
}

func (w *Wizard) allergies(ctx context.Context) error {
	severity, err := w.prompter.Choose("Severity for common allergies", prefs.AllergySeverities.Strings())
	if err != nil {
		return err
	}
	picked, err := w.prompter.Pick("Quick Add Common Allergies:", prefs.CommonAllergies)
	if err != nil {
		return err
	}

	sev := prefs.AllergySeverity(severity)
	if prefs.AllergySeverities.Contains(sev) {
		for _, name := range picked {
			added := prefs.QuickAddAllergy(w.profile.Allergies, name, sev)
			log.Debug().Ctx(ctx).Str("name", name).Bool("added", added).Msg("quick add")
		}
	}

	return collect(ctx, w.prompter, "Food Intolerances / Allergies", "Enter allergy/intolerance", prefs.AllergySeverities,
		func(name string, s prefs.AllergySeverity) { w.profile.Allergies.Append(prefs.Allergy{Severity: s, FoodName: name}) })
}

func (w *Wizard) considerations(ctx context.Context) error {
	for {
		text, err := w.prompter.Text(
			"Please provide any special instructions for preparing meals:",
			"Leave blank to finish. Example: "+prefs.ConsiderationExamples[0],
			prefs.MaxConsiderationLength,
		)
		if err != nil {
			return err
		}
		if !w.profile.Considerations.Submit(text) {
			return nil
		}
		log.Debug().Ctx(ctx).Int("count", w.profile.Considerations.Len()).Msg("consideration submitted")
	}
}

// collect asks for items until a blank name is entered.
func collect[C ~string](ctx context.Context, p Prompter, section, placeholder string, cats prefs.Categories[C], add func(string, C)) error {
	for {
		name, category, err := p.Item(section, placeholder, cats.Strings())
		if err != nil {
			return err
		}

		trimmed, err := validate.Text(name)
		if err != nil {
			return nil
		}

		c := C(category)
		if !cats.Contains(c) {
			c = cats.Default()
		}
		add(trimmed, c)
		log.Debug().Ctx(ctx).Str("name", trimmed).Str("category", string(c)).Msg("item added")
	}
}

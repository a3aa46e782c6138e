package prefs

import (
	"strings"

	"github.com/colonyops/mealprefs/internal/core/validate"
)

// CommonAllergies are offered as one-key quick adds.
var CommonAllergies = []string{"Nuts", "Dairy", "Gluten", "Shellfish", "Soy"}

// HasAllergy reports whether list already holds name at severity, ignoring
// case.
func HasAllergy(list *ItemList[Allergy], name string, severity AllergySeverity) bool {
	for _, a := range list.Items() {
		if a.Severity == severity && strings.EqualFold(a.FoodName, name) {
			return true
		}
	}
	return false
}

// QuickAddAllergy appends name at severity unless the pair is already
// present. It reports whether the list changed.
func QuickAddAllergy(list *ItemList[Allergy], name string, severity AllergySeverity) bool {
	trimmed, err := validate.Text(name)
	if err != nil {
		return false
	}
	if HasAllergy(list, trimmed, severity) {
		return false
	}
	list.Append(Allergy{Severity: severity, FoodName: trimmed})
	return true
}

package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuickAddAllergy(t *testing.T) {
	t.Run("same severity twice adds once", func(t *testing.T) {
		l := NewItemList[Allergy]()
		assert.True(t, QuickAddAllergy(l, "Nuts", MildIntolerance))
		assert.False(t, QuickAddAllergy(l, "Nuts", MildIntolerance))
		assert.Equal(t, 1, l.Len())
	})

	t.Run("duplicate check ignores case", func(t *testing.T) {
		l := NewItemList[Allergy]()
		l.Append(Allergy{Severity: SevereAllergy, FoodName: "nuts"})
		assert.False(t, QuickAddAllergy(l, "Nuts", SevereAllergy))
		assert.Equal(t, 1, l.Len())
	})

	t.Run("different severities add two entries", func(t *testing.T) {
		l := NewItemList[Allergy]()
		assert.True(t, QuickAddAllergy(l, "Nuts", MildIntolerance))
		assert.True(t, QuickAddAllergy(l, "Nuts", SevereAllergy))
		assert.Equal(t, []Allergy{
			{Severity: MildIntolerance, FoodName: "Nuts"},
			{Severity: SevereAllergy, FoodName: "Nuts"},
		}, l.Items())
	})

	t.Run("blank name is ignored", func(t *testing.T) {
		l := NewItemList[Allergy]()
		assert.False(t, QuickAddAllergy(l, "   ", MildIntolerance))
		assert.Equal(t, 0, l.Len())
	})
}

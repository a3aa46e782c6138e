package prefs

// Profile is everything recorded for one person during a run.
type Profile struct {
	Favorites      *ItemList[FavoriteFood]
	Dislikes       *ItemList[DislikedFood]
	Allergies      *ItemList[Allergy]
	Considerations *ConsiderationLog
}

// NewProfile returns a profile with empty sections.
func NewProfile() *Profile {
	return &Profile{
		Favorites:      NewItemList[FavoriteFood](),
		Dislikes:       NewItemList[DislikedFood](),
		Allergies:      NewItemList[Allergy](),
		Considerations: &ConsiderationLog{},
	}
}

// Empty reports whether nothing has been recorded yet.
func (p *Profile) Empty() bool {
	return p.Favorites.Len() == 0 &&
		p.Dislikes.Len() == 0 &&
		p.Allergies.Len() == 0 &&
		p.Considerations.Len() == 0
}

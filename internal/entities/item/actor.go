package item

// Actor owns a list of items, shown on its sheet
type Actor struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Items []*Item `json:"items"`
}

// Item returns the owned item with the given ID, or nil
func (a *Actor) Item(id string) *Item {
	if a == nil {
		return nil
	}
	for _, it := range a.Items {
		if it != nil && it.ID == id {
			return it
		}
	}
	return nil
}

package view

// NavItem is one registered section link.
type NavItem struct {
	ID    string
	Label string
	Icon  string
}

// NavEntry is a NavItem ready to render.
type NavEntry struct {
	NavItem
	Href   string
	Active bool
}

// Navigation marks the entry matching active. An unknown active id leaves
// every entry unmarked.
func Navigation(items []NavItem, active string) []NavEntry {
	entries := make([]NavEntry, len(items))
	for i, item := range items {
		entries[i] = NavEntry{
			NavItem: item,
			Href:    "#" + item.ID,
			Active:  item.ID == active,
		}
	}
	return entries
}

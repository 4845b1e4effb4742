package view

import "strconv"

// Accordion tracks the single expanded entry of a list, if any.
type Accordion struct {
	expanded *int
}

// ParseAccordion reads the expanded index from a query value. Anything that
// is not a non-negative integer means nothing is expanded.
func ParseAccordion(raw string) Accordion {
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 {
		return Accordion{}
	}
	return Accordion{expanded: &i}
}

// Toggle collapses index when it is already expanded, otherwise expands it
// and collapses whatever was open before.
func (a *Accordion) Toggle(index int) {
	if a.expanded != nil && *a.expanded == index {
		a.expanded = nil
		return
	}
	a.expanded = &index
}

// Expanded returns the expanded index.
func (a Accordion) Expanded() (int, bool) {
	if a.expanded == nil {
		return 0, false
	}
	return *a.expanded, true
}

func (a Accordion) IsExpanded(index int) bool {
	return a.expanded != nil && *a.expanded == index
}

// Query encodes the state for a link; empty when collapsed.
func (a Accordion) Query() string {
	if a.expanded == nil {
		return ""
	}
	return strconv.Itoa(*a.expanded)
}

// ToggleQuery is the query value the state would have after Toggle(index).
func (a Accordion) ToggleQuery(index int) string {
	next := a
	next.Toggle(index)
	return next.Query()
}

package view

import (
	"strconv"
	"strings"
)

// Threshold is how far above a section's top edge (in pixels) the section
// starts counting as active.
const Threshold = 100

const (
	scrolledOffset  = 10
	scrollTopOffset = 400
)

// Section is one measured block of the page.
type Section struct {
	ID     string
	Top    int
	Height int
}

// Contains reports whether offset falls inside the section's active band.
func (s Section) Contains(offset int) bool {
	return offset >= s.Top-Threshold && offset < s.Top+s.Height-Threshold
}

// Position is the layout state derived from one scroll offset.
type Position struct {
	Active        string
	Scrolled      bool
	ShowScrollTop bool
}

// Tracker resolves the active section from a scroll offset. It remembers
// the last resolved section and keeps it when no band matches.
type Tracker struct {
	sections []Section
	active   string
}

// NewTracker registers sections in document order. An empty initial value
// defaults to the first section's id.
func NewTracker(sections []Section, initial string) *Tracker {
	if initial == "" && len(sections) > 0 {
		initial = sections[0].ID
	}
	return &Tracker{sections: sections, active: initial}
}

// Active returns the last resolved section id.
func (t *Tracker) Active() string {
	return t.active
}

// Resolve recomputes the active section for offset. Later sections win
// when bands overlap.
func (t *Tracker) Resolve(offset int) string {
	for _, s := range t.sections {
		if s.Contains(offset) {
			t.active = s.ID
		}
	}
	return t.active
}

// Update resolves offset and derives the navbar/back-to-top flags.
func (t *Tracker) Update(offset int) Position {
	return Position{
		Active:        t.Resolve(offset),
		Scrolled:      offset > scrolledOffset,
		ShowScrollTop: offset > scrollTopOffset,
	}
}

// ParseLayout reads a measured layout of the form "id:top:height,id:top:height".
// Malformed entries are skipped.
func ParseLayout(raw string) []Section {
	var sections []Section
	for _, part := range strings.Split(raw, ",") {
		fields := strings.Split(strings.TrimSpace(part), ":")
		if len(fields) != 3 || fields[0] == "" {
			continue
		}
		top, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		height, err := strconv.Atoi(fields[2])
		if err != nil || height < 0 {
			continue
		}
		sections = append(sections, Section{ID: fields[0], Top: top, Height: height})
	}
	return sections
}

package view

import "strings"

// All selects every item regardless of category.
const All = "all"

// Filter returns the items whose category equals selector, in source order.
// The empty selector behaves like All. The source slice is never modified.
func Filter[T any](selector string, items []T, category func(T) string) []T {
	out := make([]T, 0, len(items))
	if selector == "" || selector == All {
		return append(out, items...)
	}
	for _, item := range items {
		if category(item) == selector {
			out = append(out, item)
		}
	}
	return out
}

// FilterOption is one button of a category filter bar.
type FilterOption struct {
	Value    string
	Label    string
	Selected bool
}

// FilterOptions builds the filter bar for categories, prefixed with All.
func FilterOptions(selected string, categories ...string) []FilterOption {
	if selected == "" {
		selected = All
	}
	opts := make([]FilterOption, 0, len(categories)+1)
	for _, c := range append([]string{All}, categories...) {
		opts = append(opts, FilterOption{Value: c, Label: Title(c), Selected: c == selected})
	}
	return opts
}

// NormalizeCategory maps unknown selectors to All.
func NormalizeCategory(selector string, categories ...string) string {
	for _, c := range categories {
		if c == selector {
			return c
		}
	}
	return All
}

// Title upper-cases the first letter of a category name.
func Title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

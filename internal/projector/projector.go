// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package projector derives the displayed subset of a collection from a
// search query and a category filter. Everything here is a pure function
// of its inputs and is recomputed on every request.
package projector

import (
	"strings"

	"github.com/olegiv/portfolio-go/internal/model"
)

// All is the category filter value meaning no category restriction.
const All = "all"

// Query holds the active search text and category filter.
type Query struct {
	Search   string
	Category string
}

// NormalizedCategory returns the category filter, defaulting to All.
func (q Query) NormalizedCategory() string {
	c := strings.TrimSpace(q.Category)
	if c == "" {
		return All
	}
	return c
}

// IsFiltered reports whether q restricts the collection at all.
func (q Query) IsFiltered() bool {
	return q.Search != "" || q.NormalizedCategory() != All
}

// Filter returns the items of kind that match q, preserving their order.
// The category filter only applies to kinds that carry a category.
func Filter(kind model.Kind, items []model.Item, q Query) []model.Item {
	needle := strings.ToLower(q.Search)
	category := q.NormalizedCategory()
	byCategory := kind.Categorized() && category != All

	out := make([]model.Item, 0, len(items))
	for _, item := range items {
		if needle != "" && !matches(item, needle) {
			continue
		}
		if byCategory && model.CategoryOf(item) != category {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Matches reports whether item contains search (case-insensitive) in any of
// its searchable fields. An empty search matches everything.
func Matches(item model.Item, search string) bool {
	needle := strings.ToLower(search)
	return needle == "" || matches(item, needle)
}

func matches(item model.Item, needle string) bool {
	for _, field := range item.SearchFields() {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Categories returns All followed by the distinct categories present in
// items, in order of first appearance. Kinds without a category get nil.
func Categories(kind model.Kind, items []model.Item) []string {
	if !kind.Categorized() {
		return nil
	}
	out := []string{All}
	seen := map[string]bool{All: true}
	for _, item := range items {
		c := model.CategoryOf(item)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// View is everything the index page needs for one tab.
type View struct {
	Kind       model.Kind
	Query      Query
	Items      []model.Item
	Total      int
	Categories []string
}

// Project computes the view of kind for q over the given state.
func Project(st State, kind model.Kind, q Query) View {
	items := st.Items(kind)
	q.Category = q.NormalizedCategory()
	if !kind.Categorized() {
		q.Category = All
	}
	return View{
		Kind:       kind,
		Query:      q,
		Items:      Filter(kind, items, q),
		Total:      len(items),
		Categories: Categories(kind, items),
	}
}

// State is the read side of a collection store.
type State interface {
	Items(kind model.Kind) []model.Item
}

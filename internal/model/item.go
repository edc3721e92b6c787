// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Item is the common view over records of any kind.
type Item interface {
	ItemID() ID
	ItemKind() Kind
	// SearchFields returns the title, the description and then any tags.
	SearchFields() []string
}

// Categorized is implemented by items that carry a category.
type Categorized interface {
	Item
	ItemCategory() string
}

// CategoryOf returns the item's category, or "" for uncategorized kinds.
func CategoryOf(item Item) string {
	if c, ok := item.(Categorized); ok {
		return c.ItemCategory()
	}
	return ""
}

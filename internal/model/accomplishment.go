// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Accomplishment is a competition result, talk, publication or similar.
type Accomplishment struct {
	ID          ID        `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	Date        YearMonth `json:"date"`
}

// ItemID implements Item.
func (a Accomplishment) ItemID() ID { return a.ID }

// ItemKind implements Item.
func (a Accomplishment) ItemKind() Kind { return KindAccomplishment }

// ItemCategory implements Categorized.
func (a Accomplishment) ItemCategory() string { return a.Category }

// SearchFields implements Item.
func (a Accomplishment) SearchFields() []string {
	return []string{a.Title, a.Description}
}

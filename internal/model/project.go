// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "slices"

// Status is the progress state of a project.
type Status string

// Project statuses
const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Statuses lists the statuses in the order the edit form offers them.
var Statuses = []Status{StatusInProgress, StatusCompleted, StatusPlanned}

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	return slices.Contains(Statuses, s)
}

// Label returns the display label, e.g. "In Progress".
func (s Status) Label() string {
	switch s {
	case StatusPlanned:
		return "Planned"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	}
	return string(s)
}

// Project is a portfolio project. Projects are persisted by the remote API.
type Project struct {
	ID          ID        `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Status      Status    `json:"status"`
	ImageURL    string    `json:"imageUrl"`
	DemoURL     string    `json:"demoUrl,omitempty"`
	GithubURL   string    `json:"githubUrl,omitempty"`
	Date        YearMonth `json:"date"`
}

// ItemID implements Item.
func (p Project) ItemID() ID { return p.ID }

// ItemKind implements Item.
func (p Project) ItemKind() Kind { return KindProject }

// ItemCategory implements Categorized.
func (p Project) ItemCategory() string { return p.Category }

// SearchFields implements Item.
func (p Project) SearchFields() []string {
	fields := make([]string, 0, 2+len(p.Tags))
	fields = append(fields, p.Title, p.Description)
	return append(fields, p.Tags...)
}

// Clone returns a copy that shares no slices with p.
func (p Project) Clone() Project {
	p.Tags = slices.Clone(p.Tags)
	return p
}

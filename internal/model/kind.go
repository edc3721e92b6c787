// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the portfolio records and their enumerations.
package model

import "fmt"

// Kind identifies one of the three portfolio collections.
type Kind string

// Collection kinds
const (
	KindProject        Kind = "project"
	KindCertificate    Kind = "certificate"
	KindAccomplishment Kind = "accomplishment"
)

// Kinds lists every collection kind in tab order.
var Kinds = []Kind{KindProject, KindCertificate, KindAccomplishment}

// Project categories offered by the edit form.
var ProjectCategories = []string{
	"Web Development",
	"Mobile App",
	"AI/ML",
	"Design",
	"Other",
}

// Accomplishment categories offered by the edit form.
var AccomplishmentCategories = []string{
	"Competition",
	"Open Source",
	"Speaking",
	"Publication",
	"Other",
}

// ParseKind converts a singular kind name ("project") to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown kind %q", s)
}

// ParseTab converts a tab name ("projects") to a Kind.
func ParseTab(tab string) (Kind, bool) {
	for _, k := range Kinds {
		if k.Tab() == tab {
			return k, true
		}
	}
	return "", false
}

// Tab returns the plural tab name used in URLs.
func (k Kind) Tab() string {
	return string(k) + "s"
}

// Label returns the human-readable tab label.
func (k Kind) Label() string {
	switch k {
	case KindProject:
		return "Projects"
	case KindCertificate:
		return "Certificates"
	case KindAccomplishment:
		return "Accomplishments"
	}
	return string(k)
}

// Categorized reports whether records of this kind carry a category.
func (k Kind) Categorized() bool {
	return k == KindProject || k == KindAccomplishment
}

// Categories returns the fixed category set for the kind, or nil.
func (k Kind) Categories() []string {
	switch k {
	case KindProject:
		return ProjectCategories
	case KindAccomplishment:
		return AccomplishmentCategories
	}
	return nil
}

// DefaultCategory returns the category preselected for a new record.
func (k Kind) DefaultCategory() string {
	switch k {
	case KindProject:
		return "Web Development"
	case KindAccomplishment:
		return "Competition"
	}
	return ""
}

// IsValidCategory reports whether category belongs to the kind's fixed set.
func (k Kind) IsValidCategory(category string) bool {
	for _, c := range k.Categories() {
		if c == category {
			return true
		}
	}
	return false
}

// Persisted reports whether the remote API accepts writes for this kind.
// Certificates and accomplishments are kept for the session only.
func (k Kind) Persisted() bool {
	return k == KindProject
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package draft holds the uncommitted copy of a record while it is being
// edited in the add/edit form.
package draft

import (
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/olegiv/portfolio-go/internal/model"
)

// Form field names.
const (
	FieldToken         = "token"
	FieldTitle         = "title"
	FieldDescription   = "description"
	FieldCategory      = "category"
	FieldTags          = "tags"
	FieldStatus        = "status"
	FieldImageURL      = "imageUrl"
	FieldDemoURL       = "demoUrl"
	FieldGithubURL     = "githubUrl"
	FieldIssuer        = "issuer"
	FieldCredentialURL = "credentialUrl"
	FieldDate          = "date"
)

// Draft is the form state of a new or existing record. All fields are
// kept as the raw strings the user typed.
type Draft struct {
	Kind  model.Kind
	ID    model.ID // empty for a new record
	Token string   // identifies an add form submission

	// StoredCategory is the category of the record being edited. It is
	// accepted even when the kind's list does not contain it.
	StoredCategory string

	Title         string
	Description   string
	Category      string
	Tags          string // comma-separated
	Status        string
	ImageURL      string
	DemoURL       string
	GithubURL     string
	Issuer        string
	CredentialURL string
	Date          string // YYYY-MM
}

// New returns a draft for a new record of kind with the kind's defaults.
func New(kind model.Kind, now time.Time) Draft {
	return Draft{
		Kind:     kind,
		Token:    uuid.NewString(),
		Category: kind.DefaultCategory(),
		Status:   string(model.StatusInProgress),
		Date:     model.YearMonthOf(now).String(),
	}
}

// FromItem returns a draft initialized from an existing record. A record
// without a date gets the month of now.
func FromItem(item model.Item, now time.Time) Draft {
	d := Draft{
		Kind:           item.ItemKind(),
		ID:             item.ItemID(),
		Status:         string(model.StatusInProgress),
		StoredCategory: strings.TrimSpace(model.CategoryOf(item)),
	}
	switch v := item.(type) {
	case model.Project:
		d.Title = v.Title
		d.Description = v.Description
		d.Category = v.Category
		d.Tags = strings.Join(v.Tags, ", ")
		if v.Status != "" {
			d.Status = string(v.Status)
		}
		d.ImageURL = v.ImageURL
		d.DemoURL = v.DemoURL
		d.GithubURL = v.GithubURL
		d.Date = v.Date.String()
	case model.Certificate:
		d.Title = v.Title
		d.Description = v.Description
		d.Issuer = v.Issuer
		d.ImageURL = v.ImageURL
		d.CredentialURL = v.CredentialURL
		d.Date = v.Date.String()
	case model.Accomplishment:
		d.Title = v.Title
		d.Description = v.Description
		d.Category = v.Category
		d.ImageURL = v.ImageURL
		d.Date = v.Date.String()
	}
	if d.Category == "" {
		d.Category = d.Kind.DefaultCategory()
	}
	if d.Date == "" {
		d.Date = model.YearMonthOf(now).String()
	}
	return d
}

// Categories returns the options of the category field: the kind's list
// plus the stored category of an edited record when the list lacks it.
func (d Draft) Categories() []string {
	categories := d.Kind.Categories()
	if !d.Kind.Categorized() || d.StoredCategory == "" || slices.Contains(categories, d.StoredCategory) {
		return categories
	}
	return append(slices.Clone(categories), d.StoredCategory)
}

// FromForm reads a submitted form into a draft of kind. id is empty for
// the add form.
func FromForm(kind model.Kind, id model.ID, form url.Values) Draft {
	get := func(name string) string { return form.Get(name) }
	return Draft{
		Kind:          kind,
		ID:            id,
		Token:         strings.TrimSpace(get(FieldToken)),
		Title:         get(FieldTitle),
		Description:   get(FieldDescription),
		Category:      get(FieldCategory),
		Tags:          get(FieldTags),
		Status:        get(FieldStatus),
		ImageURL:      strings.TrimSpace(get(FieldImageURL)),
		DemoURL:       strings.TrimSpace(get(FieldDemoURL)),
		GithubURL:     strings.TrimSpace(get(FieldGithubURL)),
		Issuer:        get(FieldIssuer),
		CredentialURL: strings.TrimSpace(get(FieldCredentialURL)),
		Date:          strings.TrimSpace(get(FieldDate)),
	}
}

// IsEdit reports whether the draft edits an existing record.
func (d Draft) IsEdit() bool {
	return !d.ID.IsZero()
}

// Normalize validates the draft and converts it to a record. Strings are
// trimmed and project tags are split. The id is left for the store to set.
func (d Draft) Normalize() (model.Item, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(d.Title)
	description := strings.TrimSpace(d.Description)
	date, _ := model.ParseYearMonth(d.Date)
	category := strings.TrimSpace(d.Category)
	if category == "" {
		category = d.Kind.DefaultCategory()
	}

	switch d.Kind {
	case model.KindProject:
		status := model.Status(strings.TrimSpace(d.Status))
		if status == "" {
			status = model.StatusInProgress
		}
		return model.Project{
			ID:          d.ID,
			Title:       title,
			Description: description,
			Category:    category,
			Tags:        SplitTags(d.Tags),
			Status:      status,
			ImageURL:    d.ImageURL,
			DemoURL:     d.DemoURL,
			GithubURL:   d.GithubURL,
			Date:        date,
		}, nil
	case model.KindCertificate:
		return model.Certificate{
			ID:            d.ID,
			Title:         title,
			Description:   description,
			Issuer:        strings.TrimSpace(d.Issuer),
			ImageURL:      d.ImageURL,
			CredentialURL: d.CredentialURL,
			Date:          date,
		}, nil
	default:
		return model.Accomplishment{
			ID:          d.ID,
			Title:       title,
			Description: description,
			Category:    category,
			ImageURL:    d.ImageURL,
			Date:        date,
		}, nil
	}
}

// SplitTags splits a comma-separated tag string into trimmed, non-empty tags.
// The result is never nil.
func SplitTags(s string) []string {
	tags := []string{}
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

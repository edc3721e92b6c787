// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package draft

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/olegiv/portfolio-go/internal/model"
)

// Summary messages shown above the form.
const (
	MsgRequired = "Please fill in required fields"
	MsgInvalid  = "Please correct the highlighted fields"
)

// ValidationError lists the problems with a draft by field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid draft: %s", strings.Join(names, ", "))
}

// Summary returns the user-facing notice for the error.
func (e *ValidationError) Summary() string {
	if e.Missing() {
		return MsgRequired
	}
	return MsgInvalid
}

// Missing reports whether a required field was left empty.
func (e *ValidationError) Missing() bool {
	_, title := e.Fields[FieldTitle]
	_, desc := e.Fields[FieldDescription]
	return title || desc
}

// Validate checks the draft. It returns nil or a *ValidationError.
func (d Draft) Validate() error {
	errs := make(map[string]string)

	if strings.TrimSpace(d.Title) == "" {
		errs[FieldTitle] = "Title is required"
	}
	if strings.TrimSpace(d.Description) == "" {
		errs[FieldDescription] = "Description is required"
	}

	if d.Date == "" {
		errs[FieldDate] = "Date is required"
	} else if _, err := model.ParseYearMonth(d.Date); err != nil {
		errs[FieldDate] = "Date must be a month (YYYY-MM)"
	}

	if d.Kind.Categorized() {
		if c := strings.TrimSpace(d.Category); c != "" && c != d.StoredCategory && !d.Kind.IsValidCategory(c) {
			errs[FieldCategory] = "Invalid category"
		}
	}
	if d.Kind == model.KindProject {
		if s := strings.TrimSpace(d.Status); s != "" && !model.Status(s).IsValid() {
			errs[FieldStatus] = "Invalid status"
		}
	}

	checkURL(errs, FieldImageURL, d.ImageURL)
	switch d.Kind {
	case model.KindProject:
		checkURL(errs, FieldDemoURL, d.DemoURL)
		checkURL(errs, FieldGithubURL, d.GithubURL)
	case model.KindCertificate:
		checkURL(errs, FieldCredentialURL, d.CredentialURL)
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// checkURL records an error when raw is set but is not an absolute
// http(s) URL.
func checkURL(errs map[string]string, field, raw string) {
	if raw == "" {
		return
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs[field] = "Must be an http(s) URL"
	}
}

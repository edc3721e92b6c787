// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/olegiv/portfolio-go/internal/model"
	"github.com/olegiv/portfolio-go/internal/projector"
)

// MonthLayout is the display format of record dates.
const MonthLayout = "Jan 2006"

// CardTagLimit is how many tags a card shows before collapsing the rest.
const CardTagLimit = 3

// htmlSanitizer cleans rendered descriptions. UGCPolicy allows the usual
// formatting tags and strips scripts and event handlers.
var htmlSanitizer = bluemonday.UGCPolicy()

var upperCaser = cases.Upper(language.English)

// TemplateFuncs returns the template functions available to every page.
func (r *Renderer) TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		// Strings
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"truncate": func(s string, length int) string {
			if len(s) <= length {
				return s
			}
			return s[:length] + "..."
		},
		"contains": func(collection []string, element string) bool {
			for _, s := range collection {
				if s == element {
					return true
				}
			}
			return false
		},

		// Math
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},

		// Data structures
		"dict": func(values ...any) map[string]any {
			if len(values)%2 != 0 {
				return nil
			}
			dict := make(map[string]any, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					continue
				}
				dict[key] = values[i+1]
			}
			return dict
		},

		// Portfolio
		"formatMonth":   FormatMonth,
		"statusLabel":   StatusLabel,
		"categoryLabel": CategoryLabel,
		"markdown":      Markdown,
		"firstTags":     FirstTags,
		"extraTags":     ExtraTags,
		"tabURL":        TabURL,
		"newURL":        NewURL,
		"editURL":       EditURL,
		"deleteURL":     DeleteURL,
		"filterURL":     FilterURL,
		"recordURL":     RecordURL,
		"kinds":         func() []model.Kind { return model.Kinds },
		"statuses":      func() []model.Status { return model.Statuses },
	}
}

// FormatMonth formats a record date like "Jan 2025", or "" when unset.
func FormatMonth(ym model.YearMonth) string {
	return ym.Format(MonthLayout)
}

// StatusLabel returns the badge text of a status, e.g. "IN PROGRESS".
func StatusLabel(s model.Status) string {
	return upperCaser.String(s.Label())
}

// CategoryLabel returns the category with its first letter upper-cased.
func CategoryLabel(category string) string {
	r, size := utf8.DecodeRuneInString(category)
	if r == utf8.RuneError {
		return category
	}
	return string(unicode.ToUpper(r)) + category[size:]
}

// Markdown renders a description as sanitized HTML.
func Markdown(s string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(s), &buf); err != nil {
		slog.Warn("failed to render markdown", "error", err)
		return template.HTML(template.HTMLEscapeString(s))
	}
	return template.HTML(htmlSanitizer.SanitizeBytes(buf.Bytes()))
}

// FirstTags returns at most CardTagLimit tags.
func FirstTags(tags []string) []string {
	if len(tags) <= CardTagLimit {
		return tags
	}
	return tags[:CardTagLimit]
}

// ExtraTags returns how many tags FirstTags leaves out.
func ExtraTags(tags []string) int {
	if len(tags) <= CardTagLimit {
		return 0
	}
	return len(tags) - CardTagLimit
}

// TabURL returns the unfiltered page of a tab.
func TabURL(kind model.Kind) string {
	return "/" + kind.Tab()
}

// NewURL returns the add form of a tab.
func NewURL(kind model.Kind) string {
	return TabURL(kind) + "/new"
}

// EditURL returns the edit form of a record.
func EditURL(item model.Item) string {
	return RecordURL(item.ItemKind(), item.ItemID()) + "/edit"
}

// DeleteURL returns the delete confirmation page of a record.
func DeleteURL(item model.Item) string {
	return RecordURL(item.ItemKind(), item.ItemID()) + "/delete"
}

// FilterURL returns the tab page with the given search and category.
// The All category is omitted.
func FilterURL(kind model.Kind, search, category string) string {
	q := url.Values{}
	if search != "" {
		q.Set("q", search)
	}
	if category != "" && category != projector.All {
		q.Set("category", category)
	}
	if len(q) == 0 {
		return TabURL(kind)
	}
	return TabURL(kind) + "?" + q.Encode()
}

// RecordURL returns the update target of a record.
func RecordURL(kind model.Kind, id model.ID) string {
	return TabURL(kind) + "/" + url.PathEscape(id.String())
}

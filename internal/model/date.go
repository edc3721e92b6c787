// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// YearMonthLayout is the wire and form layout of a YearMonth.
const YearMonthLayout = "2006-01"

// YearMonth is a calendar month without a day component.
type YearMonth struct {
	Year  int
	Month time.Month
}

// YearMonthOf returns the YearMonth containing t.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// ParseYearMonth parses "YYYY-MM". Full dates and RFC 3339 timestamps are
// accepted too and truncated to their month, since older records were
// stored that way.
func ParseYearMonth(s string) (YearMonth, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{YearMonthLayout, "2006-01-02", time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return YearMonthOf(t), nil
		}
	}
	return YearMonth{}, fmt.Errorf("invalid year-month %q", s)
}

// IsZero reports whether the value is unset.
func (ym YearMonth) IsZero() bool {
	return ym.Year == 0 && ym.Month == 0
}

// String formats the value as "YYYY-MM", or "" when unset.
func (ym YearMonth) String() string {
	if ym.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Time returns the first instant of the month in UTC.
func (ym YearMonth) Time() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Format formats the month with a time layout, e.g. "Jan 2006".
func (ym YearMonth) Format(layout string) string {
	if ym.IsZero() {
		return ""
	}
	return ym.Time().Format(layout)
}

// MarshalJSON encodes the value as a "YYYY-MM" string.
func (ym YearMonth) MarshalJSON() ([]byte, error) {
	return json.Marshal(ym.String())
}

// UnmarshalJSON decodes a string date; null and "" leave the value unset.
func (ym *YearMonth) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid date: %w", err)
	}
	if s == nil || *s == "" {
		*ym = YearMonth{}
		return nil
	}
	parsed, err := ParseYearMonth(*s)
	if err != nil {
		return err
	}
	*ym = parsed
	return nil
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "testing"

func TestParseTab(t *testing.T) {
	tests := []struct {
		tab    string
		want   Kind
		wantOK bool
	}{
		{tab: "projects", want: KindProject, wantOK: true},
		{tab: "certificates", want: KindCertificate, wantOK: true},
		{tab: "accomplishments", want: KindAccomplishment, wantOK: true},
		{tab: "project", wantOK: false},
		{tab: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			got, ok := ParseTab(tt.tab)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseTab(%q) = %q, %v; want %q, %v", tt.tab, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(string(k))
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %q, %v", k, got, err)
		}
	}
	if _, err := ParseKind("projects"); err == nil {
		t.Error("ParseKind(\"projects\") should fail")
	}
}

func TestKindCategorized(t *testing.T) {
	if !KindProject.Categorized() || !KindAccomplishment.Categorized() {
		t.Error("projects and accomplishments should be categorized")
	}
	if KindCertificate.Categorized() {
		t.Error("certificates should not be categorized")
	}
	if KindCertificate.Categories() != nil {
		t.Error("certificates should have no category set")
	}
}

func TestKindIsValidCategory(t *testing.T) {
	if !KindProject.IsValidCategory("AI/ML") {
		t.Error("AI/ML should be a project category")
	}
	if KindProject.IsValidCategory("Competition") {
		t.Error("Competition should not be a project category")
	}
	if !KindAccomplishment.IsValidCategory("Competition") {
		t.Error("Competition should be an accomplishment category")
	}
	if !KindProject.IsValidCategory(KindProject.DefaultCategory()) {
		t.Error("default project category must be valid")
	}
	if !KindAccomplishment.IsValidCategory(KindAccomplishment.DefaultCategory()) {
		t.Error("default accomplishment category must be valid")
	}
}

func TestKindPersisted(t *testing.T) {
	if !KindProject.Persisted() {
		t.Error("projects are persisted remotely")
	}
	if KindCertificate.Persisted() || KindAccomplishment.Persisted() {
		t.Error("certificates and accomplishments are session-only")
	}
}

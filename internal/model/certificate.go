// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Certificate is a credential earned from an issuing organization.
type Certificate struct {
	ID            ID        `json:"id,omitempty"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Issuer        string    `json:"issuer"`
	ImageURL      string    `json:"imageUrl"`
	CredentialURL string    `json:"credentialUrl,omitempty"`
	Date          YearMonth `json:"date"`
}

// ItemID implements Item.
func (c Certificate) ItemID() ID { return c.ID }

// ItemKind implements Item.
func (c Certificate) ItemKind() Kind { return KindCertificate }

// SearchFields implements Item.
func (c Certificate) SearchFields() []string {
	return []string{c.Title, c.Description}
}

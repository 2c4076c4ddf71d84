// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

/*
Package contact manages the cards rendered on the public contact page.

A card is a tagged union: a contact_item (phone numbers, e-mail addresses,
working hours) or a location (an office or plant with its address and map
embed). Both shapes share one table with a type discriminator and a jsonb
payload column, so adding a shape is a code change, not a migration.
*/
package contact

import (
	"encoding/json"
	"time"
)

// CardType discriminates the card shapes.
type CardType string

const (
	TypeContactItem CardType = "contact_item"
	TypeLocation    CardType = "location"
)

// Valid reports whether the card type is one of the known shapes.
func (cardType CardType) Valid() bool {
	return cardType == TypeContactItem || cardType == TypeLocation
}

// Icons accepted on contact items.
const (
	IconPhone    = "phone"
	IconEmail    = "email"
	IconAddress  = "address"
	IconClock    = "clock"
	IconFax      = "fax"
	IconWhatsapp = "whatsapp"
)

// Icons lists the accepted contact-item icons.
func Icons() []string {
	return []string{IconPhone, IconEmail, IconAddress, IconClock, IconFax, IconWhatsapp}
}

// ContactCard is one card on the contact page. Payload carries the
// shape-specific fields and decodes into [ContactItemPayload] or
// [LocationPayload] depending on CardType.
type ContactCard struct {
	ID        string          `json:"id"`
	CardType  CardType        `json:"type"`
	Title     string          `json:"title"`
	Payload   json.RawMessage `json:"payload"`
	SortOrder int             `json:"sort_order"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ContactItemPayload is the shape-specific part of a contact_item card.
type ContactItemPayload struct {
	Icon    string   `json:"icon"`
	Color   string   `json:"color"`
	Details []string `json:"details"`
}

// LocationPayload is the shape-specific part of a location card.
type LocationPayload struct {
	Subtitle string `json:"subtitle"`
	Address  string `json:"address"`
	MapEmbed string `json:"map_embed,omitempty"`
}

// GroupedCards is the public contact page response, cards grouped by shape.
type GroupedCards struct {
	ContactItems []*ContactCard `json:"contact_items"`
	Locations    []*ContactCard `json:"locations"`
}

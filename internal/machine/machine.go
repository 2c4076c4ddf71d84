// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

/*
Package machine manages the factory machine-park inventory shown on the
factory page and edited in the admin panel.

The only rule of the domain: a machine is either domestic (yerli) or
imported (ithal), never both. The service normalizes every write so the
most recently asserted flag wins.
*/
package machine

import "time"

// Machine is one machine-park inventory entry.
//
// The JSON field names yerli/ithal are kept from the original admin forms
// for compatibility with the existing panel.
type Machine struct {
	ID          string `json:"id"`
	Quantity    int    `json:"adet"`
	Description string `json:"description"`
	Model       string `json:"model"`
	Brand       string `json:"marka"`
	IsDomestic  bool   `json:"yerli"`
	IsImported  bool   `json:"ithal"`
	Capacity    string `json:"kapasite"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

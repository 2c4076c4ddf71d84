// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

/*
Package certificate manages the company's quality and safety documents.

One table backs two admin surfaces: ISO-style quality certificates and
work-safety certificates share the same shape and differ only in kind.

# Status

A certificate's status is never stored. It is derived from the expiry date
every time a certificate leaves the service, so a document that expired
overnight reports as expired on the next read without any batch job.
*/
package certificate

import "time"

// Kind discriminates the two certificate families.
type Kind string

const (
	KindQuality Kind = "quality"
	KindSafety  Kind = "safety"
)

// Valid reports whether the kind is one of the known families.
func (kind Kind) Valid() bool {
	return kind == KindQuality || kind == KindSafety
}

// Status values shown on both the admin screens and the public site.
const (
	StatusExpired   = "Süresi Dolmuş"
	StatusRenewSoon = "Yenilenmeli"
	StatusValid     = "Geçerli"
	StatusPerpetual = "Süresiz"
)

// RenewalWindow is how long before expiry a certificate is flagged for renewal.
const RenewalWindow = 90 * 24 * time.Hour

// Certificate is a quality or safety document issued to the company.
type Certificate struct {
	ID          string     `json:"id"`
	Kind        Kind       `json:"kind"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Number      string     `json:"number"`
	IssueDate   time.Time  `json:"issue_date"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
	Authority   string     `json:"authority"`
	ImageURL    string     `json:"image_url,omitempty"`
	IsActive    bool       `json:"is_active"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// StatusAt derives the certificate status relative to now.
func (certificate *Certificate) StatusAt(now time.Time) string {
	if certificate.ExpiryDate == nil {
		return StatusPerpetual
	}
	expiry := *certificate.ExpiryDate
	switch {
	case expiry.Before(now):
		return StatusExpired
	case expiry.Sub(now) <= RenewalWindow:
		return StatusRenewSoon
	default:
		return StatusValid
	}
}

// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, upload size budgets, and cross-cutting
keys that are shared between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: JWT issuer and token lifetime.
  - Uploads: Per-kind file size limits and accepted MIME types.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "corporate-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	// Generous because multipart uploads arrive through the same server.
	DefaultReadTimeout = 30 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 50.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 100

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "demirhancelik.com"

	// AccessTokenTTL is the lifetime of an admin access token. Admin sessions
	// are expected to span a working day.
	AccessTokenTTL = 8 * time.Hour
)

// # Uploads

const (
	// MaxImageUploadBytes is the upload budget for image files (5 MiB).
	MaxImageUploadBytes = 5 << 20

	// MaxDocumentUploadBytes is the upload budget for PDF documents such as
	// scanned certificates (10 MiB).
	MaxDocumentUploadBytes = 10 << 20
)

// # Localization

const (
	// LanguageTurkish is the primary site language.
	LanguageTurkish = "tr"

	// LanguageEnglish is the secondary site language.
	LanguageEnglish = "en"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldStatus  = "status"
)

// # Database Schemas

const (
	SchemaContent = "content"
	SchemaSite    = "site"
	SchemaUsers   = "users"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixPublicContent = "public:content:"
	RedisPrefixPublicList    = "public:list:"
)

// # Cache Timing

const (
	// PublicCacheTTL bounds staleness of cached public reads. Writes also
	// invalidate eagerly; the TTL is a backstop for missed invalidations.
	PublicCacheTTL = 5 * time.Minute
)

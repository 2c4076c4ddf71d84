// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package certificate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/demirhancelik/corporate-api/internal/certificate"
	"github.com/demirhancelik/corporate-api/pkg/pointer"
)

/*
TestStatusAt verifies the derived certificate status for every band of the
expiry timeline relative to a fixed reference date.
*/
func TestStatusAt(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	days := func(n int) *time.Time {
		return pointer.To(now.AddDate(0, 0, n))
	}

	testCases := []struct {
		name       string
		expiryDate *time.Time
		expected   string
	}{
		{"no expiry date", nil, certificate.StatusPerpetual},
		{"expired yesterday", days(-1), certificate.StatusExpired},
		{"expired long ago", days(-400), certificate.StatusExpired},
		{"expires in 30 days", days(30), certificate.StatusRenewSoon},
		{"expires in exactly 90 days", days(90), certificate.StatusRenewSoon},
		{"expires in 91 days", days(91), certificate.StatusValid},
		{"expires in two years", days(730), certificate.StatusValid},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			document := &certificate.Certificate{ExpiryDate: testCase.expiryDate}
			assert.Equal(t, testCase.expected, document.StatusAt(now))
		})
	}
}

/*
TestKindValid verifies the kind whitelist.
*/
func TestKindValid(t *testing.T) {
	assert.True(t, certificate.KindQuality.Valid())
	assert.True(t, certificate.KindSafety.Valid())
	assert.False(t, certificate.Kind("iso").Valid())
	assert.False(t, certificate.Kind("").Valid())
}

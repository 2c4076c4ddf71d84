// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/demirhancelik/corporate-api/pkg/slug"
)

/*
TestFrom verifies Turkish transliteration: every letter of the alphabet
survives into the ASCII slug, dotless ı included, and whitespace and
punctuation collapse into single hyphens.
*/
func TestFrom(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"Çelik Konstrüksiyon", "celik-konstruksiyon"},
		{"Tarımsal Yapılar", "tarimsal-yapilar"},
		{"Makine Parkı", "makine-parki"},
		{"Depo ve Hangar", "depo-ve-hangar"},
		{"İstanbul Şantiyesi", "istanbul-santiyesi"},
		{"Enerji  --  Tesisleri", "enerji-tesisleri"},
		{"  Güneş 2026  ", "gunes-2026"},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, slug.From(testCase.input), "input %q", testCase.input)
	}
}

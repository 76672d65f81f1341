package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	s := NewSanitizer()

	tests := []struct {
		name          string
		raw           string
		wantNormal    string
		wantCanonical string
	}{
		{"upi prefix and ref number", "UPI-SWIGGY BANGALORE 4532", "Swiggy", "Swiggy"},
		{"pos prefix", "POS AMAZON PAY INDIA", "Amazon", "Amazon"},
		{"ocr misread resolves fuzzily", "UPI-SWIGY BLR 99881", "Swiggy", "Swiggy"},
		{"unknown merchant title-cased", "NEFT-RAHUL KUMAR 999123", "Rahul Kumar", ""},
		{"trailing date stripped", "IMPS-GROCERY MART 12/01", "Grocery Mart", ""},
		{"no prefix", "Netflix subscription", "Netflix", "Netflix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Sanitize(tt.raw)
			assert.Equal(t, tt.raw, got.Original)
			assert.Equal(t, tt.wantNormal, got.Normalized)
			assert.Equal(t, tt.wantCanonical, got.Canonical)
		})
	}
}

func TestAddCanonical(t *testing.T) {
	s := NewSanitizer()
	s.AddCanonical("Chai Point")

	got := s.Sanitize("UPI-CHAI POINT HSR 2211")
	assert.Equal(t, "Chai Point", got.Canonical)
}

func TestCleanNarration(t *testing.T) {
	assert.Equal(t, "SWIGGY BANGALORE", cleanNarration("UPI-SWIGGY   BANGALORE 445566"))
	assert.Equal(t, "", cleanNarration("   "))
}

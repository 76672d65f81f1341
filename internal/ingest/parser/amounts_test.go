package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectAmounts(t *testing.T) {
	t.Run("currency prefix", func(t *testing.T) {
		cands := collectAmounts("UPI payment ₹1,500.50 to merchant")
		require.Len(t, cands, 1)
		assert.Equal(t, 1500.50, cands[0].Value)
		// Text spans the whole match so cleanup removes the symbol too.
		assert.Equal(t, "₹1,500.50", cands[0].Text)
	})

	t.Run("cr dr suffix", func(t *testing.T) {
		line := "NEFT SALARY 45,000.00 Cr 31/01/2024"
		got, ok := selectAmount(line, collectAmounts(line))
		require.True(t, ok)
		assert.Equal(t, 45000.0, got.Value)
	})

	t.Run("explicit label", func(t *testing.T) {
		cands := collectAmounts("Withdrawal: 2500 at ATM")
		require.NotEmpty(t, cands)
		assert.Equal(t, 2500.0, cands[0].Value)
		assert.Equal(t, "Withdrawal: 2500", cands[0].Text)
	})

	t.Run("general fallback only when no family matched", func(t *testing.T) {
		cands := collectAmounts("transfer of 350 completed")
		require.Len(t, cands, 1)
		assert.Equal(t, 350.0, cands[0].Value)
	})

	t.Run("general fallback drops out-of-range values", func(t *testing.T) {
		cands := collectAmounts("account 99999999999 got 350")
		require.Len(t, cands, 1)
		assert.Equal(t, 350.0, cands[0].Value)
	})
}

func TestSelectAmount(t *testing.T) {
	t.Run("largest value wins by default", func(t *testing.T) {
		line := "15/01/2024 POS AMAZON ₹450 bal ₹12,890"
		got, ok := selectAmount(line, collectAmounts(line))
		require.True(t, ok)
		assert.Equal(t, 12890.0, got.Value)
	})

	t.Run("directional marker takes first by offset", func(t *testing.T) {
		// The running balance trails the transaction amount and is larger;
		// the DEPOSIT marker flips selection to line order.
		line := "15/01/2024 DEPOSIT ₹450 ₹12,890"
		got, ok := selectAmount(line, collectAmounts(line))
		require.True(t, ok)
		assert.Equal(t, 450.0, got.Value)
	})

	t.Run("implausible values are passed over", func(t *testing.T) {
		line := "15/01/2024 WITHDRAWAL ₹0.50 ₹2,000"
		got, ok := selectAmount(line, collectAmounts(line))
		require.True(t, ok)
		assert.Equal(t, 2000.0, got.Value)
	})

	t.Run("no candidates", func(t *testing.T) {
		_, ok := selectAmount("nothing here", nil)
		assert.False(t, ok)
	})
}

func TestParseNumber(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1,500.50", 1500.50, true},
		{"45,000", 45000, true},
		{"150", 150, true},
		{"150.", 150, true},
		{",,", 0, false},
		{"", 0, false},
	} {
		got, ok := parseNumber(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
}

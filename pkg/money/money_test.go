package money

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		minor    int64
		currency string
		want     int64
	}{
		{"positive paise", 45000, INR, 45000},
		{"zero", 0, INR, 0},
		{"negative", -5000, INR, -5000},
		{"large amount", 4500000000, INR, 4500000000},
		{"dollars", 1234, USD, 1234},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.minor, tt.currency)
			assert.Equal(t, tt.want, m.Amount())
			assert.Equal(t, tt.currency, m.Currency())
		})
	}
}

func TestNewFromFloat(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int64
	}{
		{"parsed statement amount", 450.00, 45000},
		{"fractional", 12.34, 1234},
		{"zero", 0.0, 0},
		{"rounds to nearest paise", 12.345, 1235},
		{"salary", 45000.00, 4500000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewFromFloat(tt.amount, INR)
			assert.Equal(t, tt.want, m.Amount())
		})
	}
}

func TestNewFromString(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		want    int64
		wantErr bool
	}{
		{"plain", "450.00", 45000, false},
		{"rupee symbol", "₹450.00", 45000, false},
		{"rs prefix", "Rs. 1,250.50", 125050, false},
		{"inr prefix", "INR 45000", 4500000, false},
		{"lakh grouping", "1,23,456.78", 12345678, false},
		{"spaces", "  100.00  ", 10000, false},
		{"garbage", "n/a", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewFromString(tt.amount, INR)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Amount())
		})
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name    string
		a       *Money
		b       *Money
		want    int64
		wantErr bool
	}{
		{"positive + positive", New(45000, INR), New(23000, INR), 68000, false},
		{"positive + negative", New(45000, INR), New(-15000, INR), 30000, false},
		{"with zero", New(45000, INR), Zero(INR), 45000, false},
		{"nil + value", nil, New(500, INR), 500, false},
		{"different currencies", New(100, INR), New(100, USD), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.a.Add(tt.b)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Amount())
		})
	}
}

func TestSubtract(t *testing.T) {
	a := New(45000, INR)
	b := New(15000, INR)

	result, err := a.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, int64(30000), result.Amount())

	_, err = a.Subtract(New(100, USD))
	assert.Error(t, err)
}

func TestSum(t *testing.T) {
	total, err := Sum(INR,
		NewFromFloat(450, INR),
		NewFromFloat(230, INR),
		nil,
		NewFromFloat(1250.50, INR),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(193050), total.Amount())

	empty, err := Sum(INR)
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
	assert.Equal(t, INR, empty.Currency())

	_, err = Sum(INR, New(100, INR), New(100, USD))
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a    *Money
		b    *Money
		want int
	}{
		{"greater", New(45000, INR), New(15000, INR), 1},
		{"less", New(15000, INR), New(45000, INR), -1},
		{"equal", New(45000, INR), New(45000, INR), 0},
		{"nil vs positive", nil, New(100, INR), -1},
		{"nil vs nil", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
		})
	}
}

func TestDisplay(t *testing.T) {
	m := NewFromFloat(1234.56, INR)
	assert.Contains(t, m.Display(), "₹")

	neg := NewFromFloat(-50, INR)
	assert.Contains(t, neg.Display(), "-")
}

func TestString(t *testing.T) {
	m := New(45000, INR)
	assert.Equal(t, "450", m.String())

	m = New(45050, INR)
	assert.Equal(t, "450.5", m.String())
}

func TestToDecimal(t *testing.T) {
	m := New(12345, INR)
	expected, _ := decimal.NewFromString("123.45")
	assert.True(t, m.ToDecimal().Equal(expected))
}

func TestToFloat64(t *testing.T) {
	m := New(12345, INR)
	assert.InDelta(t, 123.45, m.ToFloat64(), 0.001)
}

func TestJSONRoundTrip(t *testing.T) {
	m := New(45000, INR)
	data, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, float64(45000), decoded["amount"])
	assert.Equal(t, "INR", decoded["currency"])

	var back Money
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, int64(45000), back.Amount())
	assert.Equal(t, INR, back.Currency())
}

func TestNilSafety(t *testing.T) {
	var m *Money

	assert.Equal(t, int64(0), m.Amount())
	assert.Equal(t, "", m.Currency())
	assert.True(t, m.IsZero())
	assert.False(t, m.IsPositive())
	assert.False(t, m.IsNegative())
	assert.Equal(t, "0.00", m.String())
	assert.True(t, m.ToDecimal().IsZero())
	assert.Equal(t, int64(0), m.Abs().Amount())
	assert.Equal(t, int64(0), m.Negate().Amount())
}

func TestTestDataGenerator(t *testing.T) {
	gen := NewTestDataGeneratorWithSeed(42)

	t.Run("generates expense", func(t *testing.T) {
		tx := gen.ExpenseTransaction(INR)
		assert.True(t, tx.IsExpense)
		assert.True(t, tx.Amount.IsNegative())
		assert.NotEmpty(t, tx.Description)
		assert.Contains(t, tx.Description, tx.Merchant)
	})

	t.Run("generates income", func(t *testing.T) {
		tx := gen.IncomeTransaction(INR)
		assert.False(t, tx.IsExpense)
		assert.True(t, tx.Amount.IsPositive())
		assert.Contains(t, tx.Description, "SALARY")
	})

	t.Run("generates statement lines", func(t *testing.T) {
		lines := gen.StatementLines(5)
		require.Len(t, lines, 5)
		for _, line := range lines {
			assert.Contains(t, line, "₹")
			assert.Regexp(t, `^\d{2}/\d{2}/\d{4} `, line)
		}
	})

	t.Run("generates monthly set", func(t *testing.T) {
		txs := gen.MonthlyStatementSet(INR)
		assert.Greater(t, len(txs), 20)
	})
}

func BenchmarkNewFromFloat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = NewFromFloat(450.00, INR)
	}
}

func BenchmarkSum(b *testing.B) {
	values := []*Money{New(45000, INR), New(23000, INR), New(125050, INR)}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Sum(INR, values...)
	}
}

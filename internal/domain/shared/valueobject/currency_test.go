package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCurrencyValue(t *testing.T) {
	t.Run("foreign currency derives base amount from rate", func(t *testing.T) {
		v := NewCurrencyValue(decimal.NewFromInt(500000), JPY, decimal.NewFromFloat(1.2))
		assert.Equal(t, JPY, v.Currency())
		assert.True(t, v.BaseAmount().Equal(decimal.NewFromInt(600000)))
	})

	t.Run("KES forces rate to one and base equals amount", func(t *testing.T) {
		v := NewCurrencyValue(decimal.NewFromInt(45000), KES, decimal.NewFromFloat(7.5))
		assert.True(t, v.Rate().Equal(decimal.NewFromInt(1)))
		assert.True(t, v.BaseAmount().Equal(decimal.NewFromInt(45000)))
	})

	t.Run("unknown currency falls back to KES", func(t *testing.T) {
		v := NewCurrencyValue(decimal.NewFromInt(100), Currency("XXX"), decimal.NewFromInt(3))
		assert.Equal(t, KES, v.Currency())
		assert.True(t, v.BaseAmount().Equal(decimal.NewFromInt(100)))
	})
}

func TestCurrencyValue_WithAmount(t *testing.T) {
	t.Run("strips grouping separators and symbols", func(t *testing.T) {
		v := NewCurrencyValue(decimal.Zero, JPY, decimal.NewFromFloat(1.2)).WithAmount("¥1,250,000")
		assert.True(t, v.Amount().Equal(decimal.NewFromInt(1250000)))
		assert.True(t, v.BaseAmount().Equal(decimal.NewFromInt(1500000)))
	})

	t.Run("invalid input degrades to zero", func(t *testing.T) {
		v := NewKESFromInt(500).WithAmount("not a number")
		assert.True(t, v.Amount().IsZero())
		assert.True(t, v.BaseAmount().IsZero())
	})

	t.Run("empty input degrades to zero", func(t *testing.T) {
		v := NewKESFromInt(500).WithAmount("")
		assert.True(t, v.IsZero())
	})
}

func TestCurrencyValue_WithCurrency(t *testing.T) {
	t.Run("switching to KES forces rate one", func(t *testing.T) {
		v := NewCurrencyValue(decimal.NewFromInt(1000), USD, decimal.NewFromInt(130)).WithCurrency(KES)
		assert.True(t, v.Rate().Equal(decimal.NewFromInt(1)))
		assert.True(t, v.BaseAmount().Equal(decimal.NewFromInt(1000)))
	})

	t.Run("switching between foreign currencies retains the rate", func(t *testing.T) {
		v := NewCurrencyValue(decimal.NewFromInt(1000), USD, decimal.NewFromInt(130)).WithCurrency(EUR)
		assert.Equal(t, EUR, v.Currency())
		assert.True(t, v.Rate().Equal(decimal.NewFromInt(130)))
		assert.True(t, v.BaseAmount().Equal(decimal.NewFromInt(130000)))
	})
}

func TestCurrencyValue_WithRate(t *testing.T) {
	t.Run("recomputes base amount", func(t *testing.T) {
		v := NewCurrencyValue(decimal.NewFromInt(500000), JPY, decimal.NewFromFloat(1.2)).
			WithRate(decimal.NewFromFloat(1.3))
		assert.True(t, v.BaseAmount().Equal(decimal.NewFromInt(650000)))
	})

	t.Run("no-op on KES values", func(t *testing.T) {
		v := NewKESFromInt(2000).WithRate(decimal.NewFromFloat(7.7))
		assert.True(t, v.Rate().Equal(decimal.NewFromInt(1)))
		assert.True(t, v.BaseAmount().Equal(decimal.NewFromInt(2000)))
	})
}

// The normalization invariant must hold after any sequence of updates.
func TestCurrencyValue_InvariantAfterAnyMutation(t *testing.T) {
	v := ZeroKES()
	steps := []CurrencyValue{
		v.WithAmount("375,000"),
		v.WithAmount("375,000").WithCurrency(JPY).WithRate(decimal.NewFromFloat(0.85)),
		v.WithCurrency(USD).WithRate(decimal.NewFromInt(129)).WithAmount("4500"),
		v.WithAmount("9.75").WithCurrency(EUR).WithRate(decimal.NewFromFloat(140.25)).WithCurrency(KES),
	}
	for _, s := range steps {
		expected := s.Amount()
		if s.Currency() != KES {
			expected = s.Amount().Mul(s.Rate())
		}
		assert.True(t, s.BaseAmount().Equal(expected), "invariant broken for %s", s)
	}
}

func TestCurrencyValue_JSONRoundTrip(t *testing.T) {
	v := NewCurrencyValue(decimal.NewFromInt(500000), JPY, decimal.NewFromFloat(1.2))

	data, err := json.Marshal(v)
	require.NoError(t, err)

	var decoded CurrencyValue
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, JPY, decoded.Currency())
	assert.True(t, decoded.Amount().Equal(v.Amount()))
	assert.True(t, decoded.BaseAmount().Equal(v.BaseAmount()))
}

func TestCurrencyValue_SQLRoundTrip(t *testing.T) {
	v := NewCurrencyValue(decimal.NewFromInt(45000), KES, decimal.Zero)

	stored, err := v.Value()
	require.NoError(t, err)

	var scanned CurrencyValue
	require.NoError(t, scanned.Scan(stored))
	assert.True(t, scanned.BaseAmount().Equal(decimal.NewFromInt(45000)))

	t.Run("nil scans to zero KES", func(t *testing.T) {
		var empty CurrencyValue
		require.NoError(t, empty.Scan(nil))
		assert.Equal(t, KES, empty.Currency())
		assert.True(t, empty.IsZero())
	})
}

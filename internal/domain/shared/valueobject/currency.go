package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code handled by the dealership
type Currency string

const (
	KES Currency = "KES" // Kenyan Shilling (reporting currency)
	JPY Currency = "JPY" // Japanese Yen
	USD Currency = "USD" // US Dollar
	EUR Currency = "EUR" // Euro
	PKR Currency = "PKR" // Pakistani Rupee
)

// BaseCurrency is the single reporting currency all values normalize into
const BaseCurrency = KES

// SupportedCurrencies lists every currency accepted on data entry
var SupportedCurrencies = []Currency{KES, JPY, USD, EUR, PKR}

// IsValid reports whether c is a known currency code
func (c Currency) IsValid() bool {
	switch c {
	case KES, JPY, USD, EUR, PKR:
		return true
	}
	return false
}

// CurrencyValue is a self-normalizing monetary amount: it always
// carries its KES equivalent alongside the entered amount, currency
// and manually captured exchange rate. It is immutable; every With*
// operation returns a fully re-derived value, so the invariant
// baseAmount == amount (KES) or amount * rate (other) holds at all
// times and no partially updated value is ever observable.
type CurrencyValue struct {
	amount     decimal.Decimal
	currency   Currency
	rate       decimal.Decimal
	baseAmount decimal.Decimal
}

// NewCurrencyValue creates a value in the given currency and re-derives
// the base amount. Unknown currency codes fall back to KES rather than
// failing: monetary entry must never block on bad input.
func NewCurrencyValue(amount decimal.Decimal, currency Currency, rate decimal.Decimal) CurrencyValue {
	if !currency.IsValid() {
		currency = BaseCurrency
	}
	return CurrencyValue{amount: amount, currency: currency, rate: rate}.derive()
}

// ZeroKES returns a zero value in the reporting currency
func ZeroKES() CurrencyValue {
	return CurrencyValue{currency: KES, rate: decimal.NewFromInt(1)}
}

// NewKES creates a value already denominated in the reporting currency
func NewKES(amount decimal.Decimal) CurrencyValue {
	return CurrencyValue{amount: amount, currency: KES}.derive()
}

// NewKESFromInt creates a KES value from whole shillings
func NewKESFromInt(amount int64) CurrencyValue {
	return NewKES(decimal.NewFromInt(amount))
}

// derive recomputes rate and base amount from the entered fields.
// The rate is meaningless for KES and forced to 1.
func (v CurrencyValue) derive() CurrencyValue {
	if v.currency == BaseCurrency {
		v.rate = decimal.NewFromInt(1)
		v.baseAmount = v.amount
		return v
	}
	v.baseAmount = v.amount.Mul(v.rate)
	return v
}

// WithAmount parses a raw user-entered amount and returns a re-derived
// value using the current currency and rate. Grouping separators,
// currency symbols and any other non-numeric characters are stripped;
// input that still fails to parse degrades to zero instead of erroring.
func (v CurrencyValue) WithAmount(raw string) CurrencyValue {
	v.amount = parseLenient(raw)
	return v.derive()
}

// WithDecimalAmount returns a re-derived value with the given amount
func (v CurrencyValue) WithDecimalAmount(amount decimal.Decimal) CurrencyValue {
	v.amount = amount
	return v.derive()
}

// WithCurrency switches the currency. Switching to KES forces the rate
// to 1; switching between foreign currencies retains the prior rate.
func (v CurrencyValue) WithCurrency(currency Currency) CurrencyValue {
	if !currency.IsValid() {
		return v
	}
	v.currency = currency
	return v.derive()
}

// WithRate sets the manual exchange rate. It is meaningful only for
// foreign currencies; on a KES value it is a no-op.
func (v CurrencyValue) WithRate(rate decimal.Decimal) CurrencyValue {
	if v.currency == BaseCurrency {
		return v
	}
	v.rate = rate
	return v.derive()
}

// Amount returns the entered amount in the entry currency
func (v CurrencyValue) Amount() decimal.Decimal {
	return v.amount
}

// Currency returns the entry currency
func (v CurrencyValue) Currency() Currency {
	return v.currency
}

// Rate returns the manual exchange rate (always 1 for KES)
func (v CurrencyValue) Rate() decimal.Decimal {
	return v.rate
}

// BaseAmount returns the derived KES equivalent
func (v CurrencyValue) BaseAmount() decimal.Decimal {
	return v.baseAmount
}

// IsZero reports whether the entered amount is zero
func (v CurrencyValue) IsZero() bool {
	return v.amount.IsZero()
}

// String returns a human-readable representation
func (v CurrencyValue) String() string {
	if v.currency == BaseCurrency {
		return fmt.Sprintf("%s %s", v.amount.StringFixed(2), v.currency)
	}
	return fmt.Sprintf("%s %s @ %s = %s KES",
		v.amount.StringFixed(2), v.currency, v.rate.String(), v.baseAmount.StringFixed(2))
}

// parseLenient strips everything except digits, decimal point and sign,
// then parses; failures yield zero.
func parseLenient(raw string) decimal.Decimal {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

type currencyValueJSON struct {
	Amount     string   `json:"amount"`
	Currency   Currency `json:"currency"`
	Rate       string   `json:"rate"`
	BaseAmount string   `json:"base_amount"`
}

// MarshalJSON implements json.Marshaler
func (v CurrencyValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(currencyValueJSON{
		Amount:     v.amount.String(),
		Currency:   v.currency,
		Rate:       v.rate.String(),
		BaseAmount: v.baseAmount.String(),
	})
}

// UnmarshalJSON implements json.Unmarshaler. The base amount is
// re-derived from the decoded fields rather than trusted, so a value
// read from an external source can never violate the invariant.
func (v *CurrencyValue) UnmarshalJSON(data []byte) error {
	var raw currencyValueJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	amount, err := decimal.NewFromString(raw.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	rate := decimal.Zero
	if raw.Rate != "" {
		if rate, err = decimal.NewFromString(raw.Rate); err != nil {
			return fmt.Errorf("invalid rate: %w", err)
		}
	}
	*v = NewCurrencyValue(amount, raw.Currency, rate)
	return nil
}

// Value implements driver.Valuer; the whole value is stored as one
// JSON column so currency and rate survive round-trips.
func (v CurrencyValue) Value() (driver.Value, error) {
	b, err := v.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (v *CurrencyValue) Scan(value any) error {
	if value == nil {
		*v = ZeroKES()
		return nil
	}
	var data []byte
	switch raw := value.(type) {
	case string:
		data = []byte(raw)
	case []byte:
		data = raw
	default:
		return fmt.Errorf("cannot scan %T into CurrencyValue", value)
	}
	return v.UnmarshalJSON(data)
}

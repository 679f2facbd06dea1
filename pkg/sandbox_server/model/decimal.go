package model

import "github.com/shopspring/decimal"

// Decimal is written to JSON as a bare number.
type Decimal struct {
	value decimal.Decimal
}

func NewDecimalFromString(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{
		value: d,
	}, nil
}

func NewDecimalFromFloat(f float64) Decimal {
	return Decimal{value: decimal.NewFromFloat(f)}
}

func NewDecimalFromInt(i int64) Decimal {
	return Decimal{value: decimal.NewFromInt(i)}
}

// Round rounds half away from zero to the given number of decimal places.
func (d Decimal) Round(places int32) Decimal {
	return Decimal{value: d.value.Round(places)}
}

func (d Decimal) Equal(other Decimal) bool {
	return d.value.Equal(other.value)
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.value.String()), nil
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	return d.value.UnmarshalJSON(b)
}

func (d Decimal) String() string {
	return d.value.String()
}

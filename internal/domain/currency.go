package domain

import "fmt"

// Currency is one of the closed set of currencies the wallet supports.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyUAH Currency = "UAH"
)

func Currencies() []Currency {
	return []Currency{CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyUAH}
}

func ParseCurrency(s string) (Currency, error) {
	switch Currency(s) {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyUAH:
		return Currency(s), nil
	}
	return "", fmt.Errorf("unsupported currency: %q", s)
}

func (c Currency) String() string {
	return string(c)
}

package rates

import (
	"fmt"

	"ewallet/internal/domain"
)

// ErrRateUnavailable is returned for a currency pair outside the catalog.
// The table never falls back to a default rate.
var ErrRateUnavailable = fmt.Errorf("exchange rate unavailable")

type pair struct {
	from domain.Currency
	to   domain.Currency
}

// Table is an immutable exchange-rate matrix, built once at startup and
// injected into the services that need it. The matrix is curated per
// direction and is not symmetric: rate(A,B)*rate(B,A) != 1 in general.
type Table struct {
	rates map[pair]float64
}

func New() *Table {
	return &Table{rates: map[pair]float64{
		{domain.CurrencyUSD, domain.CurrencyUSD}: 1,
		{domain.CurrencyUSD, domain.CurrencyEUR}: 0.95,
		{domain.CurrencyUSD, domain.CurrencyGBP}: 0.84,
		{domain.CurrencyUSD, domain.CurrencyUAH}: 36.76,

		{domain.CurrencyEUR, domain.CurrencyUSD}: 1.05,
		{domain.CurrencyEUR, domain.CurrencyEUR}: 1,
		{domain.CurrencyEUR, domain.CurrencyGBP}: 0.88,
		{domain.CurrencyEUR, domain.CurrencyUAH}: 38.77,

		{domain.CurrencyGBP, domain.CurrencyUSD}: 1.20,
		{domain.CurrencyGBP, domain.CurrencyEUR}: 1.13,
		{domain.CurrencyGBP, domain.CurrencyGBP}: 1,
		{domain.CurrencyGBP, domain.CurrencyUAH}: 43.94,

		{domain.CurrencyUAH, domain.CurrencyUSD}: 0.027,
		{domain.CurrencyUAH, domain.CurrencyEUR}: 0.026,
		{domain.CurrencyUAH, domain.CurrencyGBP}: 0.023,
		{domain.CurrencyUAH, domain.CurrencyUAH}: 1,
	}}
}

// Get returns the multiplicative conversion factor from one currency to
// another. Unknown pairs fail loudly with ErrRateUnavailable.
func (t *Table) Get(from, to domain.Currency) (float64, error) {
	rate, ok := t.rates[pair{from, to}]
	if !ok {
		return 0, fmt.Errorf("%w: %s->%s", ErrRateUnavailable, from, to)
	}
	return rate, nil
}

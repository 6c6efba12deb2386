package services

import "strings"

// Lifetime-deal price table, in minor units.
const (
	PriceINRPaise int64 = 399900 // ₹3,999.00
	PriceUSDCents int64 = 4763   // $47.63
)

// eurozoneCountries is a basic EUR zone mapping (not exhaustive).
var eurozoneCountries = map[string]bool{
	"DE": true, "FR": true, "ES": true, "IT": true, "NL": true,
	"IE": true, "PT": true, "BE": true, "AT": true, "FI": true,
	"GR": true, "LV": true, "LT": true, "EE": true, "CY": true,
	"LU": true, "MT": true, "SI": true, "SK": true,
}

// InferDisplayCurrencyFromCountry maps an ISO country code to the currency
// shown to the visitor. Unknown or empty countries fall back to INR.
func InferDisplayCurrencyFromCountry(country string) string {
	if country == "" {
		return "INR"
	}
	switch c := strings.ToUpper(country); {
	case c == "IN":
		return "INR"
	case c == "US":
		return "USD"
	case c == "GB" || c == "UK":
		return "GBP"
	case eurozoneCountries[c]:
		return "EUR"
	default:
		return "INR"
	}
}

// ResolveOrderCurrency decides the charge currency for an order. An explicit
// INR/USD request is honored; otherwise any known non-Indian country gets
// USD and everything else INR.
func ResolveOrderCurrency(explicit, country string) string {
	if explicit == "INR" || explicit == "USD" {
		return explicit
	}
	c := strings.ToUpper(country)
	if c != "" && c != "IN" {
		return "USD"
	}
	return "INR"
}

// ResolveOrderAmount returns the charge amount in minor units. A positive
// caller-supplied amount overrides the price table.
func ResolveOrderAmount(currency string, explicit int64) int64 {
	if explicit > 0 {
		return explicit
	}
	if currency == "INR" {
		return PriceINRPaise
	}
	return PriceUSDCents
}

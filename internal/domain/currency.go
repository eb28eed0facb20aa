package domain

// Currency is an ISO-style currency code. Amounts in different currencies are
// never summed together — each currency is an independent aggregation bucket.
type Currency string

const (
	TWD Currency = "TWD"
	JPY Currency = "JPY"
	USD Currency = "USD"
	EUR Currency = "EUR"
	CNY Currency = "CNY"
	KRW Currency = "KRW"
	GBP Currency = "GBP"
	THB Currency = "THB"
	VND Currency = "VND"
	HKD Currency = "HKD"
)

// DefaultCurrency is assumed when an activity carries no currency.
const DefaultCurrency = TWD

// Currencies lists the supported codes in display order.
var Currencies = []Currency{TWD, JPY, USD, EUR, CNY, KRW, GBP, THB, VND, HKD}

// Known reports whether c is one of the supported currency codes.
func (c Currency) Known() bool {
	for _, k := range Currencies {
		if c == k {
			return true
		}
	}
	return false
}

// OrDefault returns c, or DefaultCurrency when c is empty.
func (c Currency) OrDefault() Currency {
	if c == "" {
		return DefaultCurrency
	}
	return c
}

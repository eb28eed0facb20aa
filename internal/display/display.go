// Package display holds the presentation lookup tables: currency symbols and
// per-language category labels.
//
// The language is always an explicit parameter. There is deliberately no
// package-level "current language" — keeping these lookups pure keeps every
// caller (and every test) independent of hidden state.
package display

import "github.com/tripmaster/trip-planner/backend/internal/domain"

// Language selects a label table. Unknown values fall back to zh-TW, the
// product's original base language.
type Language string

const (
	ZhTW Language = "zh-TW"
	Ja   Language = "ja"
	En   Language = "en"
)

// DefaultLanguage matches the original product default.
const DefaultLanguage = Ja

// Languages lists the supported language codes.
var Languages = []Language{ZhTW, Ja, En}

// Known reports whether l has a label table.
func (l Language) Known() bool {
	switch l {
	case ZhTW, Ja, En:
		return true
	}
	return false
}

var currencySymbols = map[domain.Currency]string{
	domain.TWD: "NT$",
	domain.JPY: "¥",
	domain.USD: "$",
	domain.EUR: "€",
	domain.CNY: "¥",
	domain.KRW: "₩",
	domain.GBP: "£",
	domain.THB: "฿",
	domain.VND: "₫",
	domain.HKD: "HK$",
}

// CurrencySymbol returns the display symbol for c. Unrecognized currencies
// fall back to the raw code so the amount is still attributable.
func CurrencySymbol(c domain.Currency) string {
	if sym, ok := currencySymbols[c]; ok {
		return sym
	}
	return string(c)
}

var categoryLabels = map[Language]map[domain.ActivityType]string{
	ZhTW: {
		domain.TypeSightseeing: "觀光",
		domain.TypeFood:        "美食",
		domain.TypeTransport:   "交通",
		domain.TypeShopping:    "購物",
		domain.TypeOther:       "其他",
	},
	Ja: {
		domain.TypeSightseeing: "観光",
		domain.TypeFood:        "グルメ",
		domain.TypeTransport:   "移動",
		domain.TypeShopping:    "買い物",
		domain.TypeOther:       "その他",
	},
	En: {
		domain.TypeSightseeing: "Sightseeing",
		domain.TypeFood:        "Food",
		domain.TypeTransport:   "Transport",
		domain.TypeShopping:    "Shopping",
		domain.TypeOther:       "Other",
	},
}

// CategoryLabel returns the label for t in the requested language.
// Lookup order: requested language, then zh-TW, then the raw type string.
// The chain mirrors the original product's translation fallback.
func CategoryLabel(lang Language, t domain.ActivityType) string {
	if table, ok := categoryLabels[lang]; ok {
		if label, ok := table[t]; ok {
			return label
		}
	}
	if label, ok := categoryLabels[ZhTW][t]; ok {
		return label
	}
	return string(t)
}

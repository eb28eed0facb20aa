package handler

import (
	"errors"
	"net/http"

	"github.com/tripmaster/trip-planner/backend/internal/display"
	"github.com/tripmaster/trip-planner/backend/internal/domain"
)

// BudgetResponse is the JSON body of GET /trips/{tripID}/budget.
// All maps are keyed by currency code; amounts in different currencies are
// never combined.
type BudgetResponse struct {
	Participants []string `json:"participants"`
	// Totals holds the grand total per currency, zero-cost entries excluded.
	Totals map[string]CurrencyTotal `json:"totals"`
	// Categories holds the five-category breakdown per currency, in display
	// order. An unrecognized activity type counts toward Totals but appears
	// in no category here.
	Categories map[string][]CategoryAmount `json:"categories"`
	// PerParticipant maps participant name → currency → owed amount under
	// the equal-split policy. Unattributed costs (empty splitBy) appear in
	// Totals only.
	PerParticipant map[string]map[string]float64 `json:"perParticipant"`
}

// CurrencyTotal is a grand total with its display symbol.
type CurrencyTotal struct {
	Symbol string  `json:"symbol"`
	Amount float64 `json:"amount"`
}

// CategoryAmount is one category's subtotal with its localized label and its
// percentage share of the currency's five-category sum.
type CategoryAmount struct {
	Type    string  `json:"type"`
	Label   string  `json:"label"`
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
}

// handleBudget handles GET /trips/{tripID}/budget.
// The ?lang= parameter picks the label language (zh-TW, ja, en); it defaults
// to the product's base language and unknown values fall back per the display
// package's lookup chain.
func (s *Server) handleBudget(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeBadRequest(w, "invalid trip id")
		return
	}

	lang := display.DefaultLanguage
	if raw := r.URL.Query().Get("lang"); raw != "" {
		lang = display.Language(raw)
	}

	summary, err := s.budgets.Summary(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		writeInternal(w)
		return
	}

	resp := BudgetResponse{
		Participants:   summary.Participants,
		Totals:         make(map[string]CurrencyTotal, len(summary.Totals)),
		Categories:     make(map[string][]CategoryAmount, len(summary.Categories)),
		PerParticipant: make(map[string]map[string]float64, len(summary.PerParticipant)),
	}

	for cur, amount := range summary.Totals {
		resp.Totals[string(cur)] = CurrencyTotal{
			Symbol: display.CurrencySymbol(cur),
			Amount: amount,
		}
	}

	for cur, totals := range summary.Categories {
		breakdown := make([]CategoryAmount, 0, len(domain.ActivityTypes))
		for _, t := range domain.ActivityTypes {
			breakdown = append(breakdown, CategoryAmount{
				Type:    string(t),
				Label:   display.CategoryLabel(lang, t),
				Amount:  totals.Amount(t),
				Percent: totals.Share(t),
			})
		}
		resp.Categories[string(cur)] = breakdown
	}

	for name, owed := range summary.PerParticipant {
		byCurrency := make(map[string]float64, len(owed))
		for cur, amount := range owed {
			byCurrency[string(cur)] = amount
		}
		resp.PerParticipant[name] = byCurrency
	}

	writeJSON(w, http.StatusOK, resp)
}

package budget_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripmaster/trip-planner/backend/internal/budget"
	"github.com/tripmaster/trip-planner/backend/internal/domain"
)

// act is a shorthand constructor for the fields the engine cares about.
func act(cost float64, cur domain.Currency, typ domain.ActivityType, splitBy ...string) domain.Activity {
	return domain.Activity{
		Title:    "activity",
		Cost:     cost,
		Currency: cur,
		Type:     typ,
		SplitBy:  splitBy,
	}
}

// ---- Totals ----------------------------------------------------------------

func TestTotals_SharedMeal(t *testing.T) {
	// One 1000 JPY dinner split between two people.
	acts := []domain.Activity{act(1000, domain.JPY, domain.TypeFood, "Alice", "Bob")}

	totals := budget.Totals(acts)

	assert.Equal(t, map[domain.Currency]float64{domain.JPY: 1000}, totals)
}

func TestTotals_ZeroCostExcluded(t *testing.T) {
	// A zero-cost activity must not even register its currency as a bucket.
	acts := []domain.Activity{act(0, domain.TWD, domain.TypeFood)}

	totals := budget.Totals(acts)

	assert.Empty(t, totals)
}

func TestTotals_DefaultCurrency(t *testing.T) {
	acts := []domain.Activity{act(250, "", domain.TypeOther)}

	totals := budget.Totals(acts)

	assert.Equal(t, map[domain.Currency]float64{domain.TWD: 250}, totals)
}

func TestTotals_CurrenciesNeverCombined(t *testing.T) {
	acts := []domain.Activity{
		act(1000, domain.JPY, domain.TypeFood),
		act(1000, domain.TWD, domain.TypeFood),
		act(500, domain.JPY, domain.TypeTransport),
	}

	totals := budget.Totals(acts)

	assert.Equal(t, map[domain.Currency]float64{
		domain.JPY: 1500,
		domain.TWD: 1000,
	}, totals)
}

func TestTotals_ExpenseOnlyCountsLikeAnyOther(t *testing.T) {
	expense := act(300, domain.USD, domain.TypeShopping)
	expense.IsExpenseOnly = true

	totals := budget.Totals([]domain.Activity{expense})

	assert.Equal(t, map[domain.Currency]float64{domain.USD: 300}, totals)
}

// ---- ByCategory ------------------------------------------------------------

func TestByCategory_SingleCategory(t *testing.T) {
	acts := []domain.Activity{act(1000, domain.JPY, domain.TypeFood)}

	buckets := budget.ByCategory(acts)

	require.Contains(t, buckets, domain.JPY)
	jpy := buckets[domain.JPY]
	assert.Equal(t, 1000.0, jpy.Food)
	assert.Zero(t, jpy.Sightseeing)
	assert.Zero(t, jpy.Transport)
	assert.Zero(t, jpy.Shopping)
	assert.Zero(t, jpy.Other)
}

func TestByCategory_ZeroCostExcluded(t *testing.T) {
	acts := []domain.Activity{act(0, domain.JPY, domain.TypeFood)}

	assert.Empty(t, budget.ByCategory(acts))
}

// An unrecognized type creates the currency bucket but contributes to no
// category, so the bucket sum falls short of the grand total. The original
// product behaves this way and the discrepancy is kept on purpose.
func TestByCategory_UnrecognizedTypeDroppedFromCategories(t *testing.T) {
	acts := []domain.Activity{
		act(1000, domain.JPY, domain.TypeFood),
		act(400, domain.JPY, domain.ActivityType("lodging")),
	}

	totals := budget.Totals(acts)
	buckets := budget.ByCategory(acts)

	assert.Equal(t, 1400.0, totals[domain.JPY], "grand total includes the unknown type")
	require.Contains(t, buckets, domain.JPY)
	assert.Equal(t, 1000.0, buckets[domain.JPY].Sum(), "category sum excludes the unknown type")
}

func TestByCategory_UnrecognizedTypeAloneStillCreatesBucket(t *testing.T) {
	acts := []domain.Activity{act(400, domain.JPY, domain.ActivityType("lodging"))}

	buckets := budget.ByCategory(acts)

	require.Contains(t, buckets, domain.JPY)
	assert.Zero(t, buckets[domain.JPY].Sum())
}

func TestByCategory_SumMatchesTotalsForKnownTypes(t *testing.T) {
	acts := []domain.Activity{
		act(100, domain.EUR, domain.TypeSightseeing),
		act(200, domain.EUR, domain.TypeFood),
		act(300, domain.EUR, domain.TypeTransport),
		act(400, domain.EUR, domain.TypeShopping),
		act(500, domain.EUR, domain.TypeOther),
	}

	totals := budget.Totals(acts)
	buckets := budget.ByCategory(acts)

	assert.Equal(t, totals[domain.EUR], buckets[domain.EUR].Sum())
}

// ---- Shares ----------------------------------------------------------------

func TestCategoryTotals_Share(t *testing.T) {
	c := budget.CategoryTotals{Food: 750, Transport: 250}

	assert.InDelta(t, 75, c.Share(domain.TypeFood), 1e-9)
	assert.InDelta(t, 25, c.Share(domain.TypeTransport), 1e-9)
	assert.Zero(t, c.Share(domain.TypeShopping))
}

func TestCategoryTotals_Share_ZeroSum(t *testing.T) {
	var c budget.CategoryTotals

	// Never NaN, always 0 when nothing has been spent.
	for _, typ := range domain.ActivityTypes {
		assert.Zero(t, c.Share(typ))
	}
}

// ---- Split -----------------------------------------------------------------

func TestSplit_EqualShares(t *testing.T) {
	acts := []domain.Activity{act(1000, domain.JPY, domain.TypeFood, "Alice", "Bob")}

	owed := budget.Split(acts, []string{"Alice", "Bob"})

	assert.Equal(t, 500.0, owed["Alice"][domain.JPY])
	assert.Equal(t, 500.0, owed["Bob"][domain.JPY])
}

func TestSplit_EmptySplitByUnattributed(t *testing.T) {
	// A cost with no split members is a personal/unassigned expense: it shows
	// up in Totals but in nobody's share.
	acts := []domain.Activity{act(500, domain.USD, domain.TypeFood)}

	owed := budget.Split(acts, []string{"Alice", "Bob"})

	assert.Empty(t, owed["Alice"])
	assert.Empty(t, owed["Bob"])
}

func TestSplit_StaleNameDropped(t *testing.T) {
	// Carol was removed from the trip after the split was recorded.
	// Her share vanishes; it is not reassigned to Alice.
	acts := []domain.Activity{act(300, domain.TWD, domain.TypeFood, "Alice", "Carol")}

	owed := budget.Split(acts, []string{"Alice"})

	assert.Equal(t, 150.0, owed["Alice"][domain.TWD])
	assert.NotContains(t, owed, "Carol")
}

func TestSplit_FractionalShares(t *testing.T) {
	acts := []domain.Activity{act(100, domain.EUR, domain.TypeFood, "A", "B", "C")}

	owed := budget.Split(acts, []string{"A", "B", "C"})

	for _, name := range []string{"A", "B", "C"} {
		assert.InDelta(t, 100.0/3, owed[name][domain.EUR], 1e-9)
	}
}

func TestSplit_ZeroCostExcluded(t *testing.T) {
	acts := []domain.Activity{act(0, domain.TWD, domain.TypeFood, "Alice")}

	owed := budget.Split(acts, []string{"Alice"})

	assert.Empty(t, owed["Alice"])
}

func TestSplit_ParticipantWithNothingOwedStillListed(t *testing.T) {
	owed := budget.Split(nil, []string{"Alice"})

	require.Contains(t, owed, "Alice")
	assert.Empty(t, owed["Alice"])
}

// Sum of everyone's shares never exceeds the grand total; the two are equal
// only when every cost has a non-empty splitBy of still-active participants.
func TestSplit_SharesNeverExceedTotal(t *testing.T) {
	acts := []domain.Activity{
		act(1000, domain.JPY, domain.TypeFood, "Alice", "Bob"),
		act(400, domain.JPY, domain.TypeTransport), // unattributed residual
		act(300, domain.JPY, domain.TypeOther, "Alice", "Ghost"),
	}
	participants := []string{"Alice", "Bob"}

	totals := budget.Totals(acts)
	owed := budget.Split(acts, participants)

	var attributed float64
	for _, byCurrency := range owed {
		attributed += byCurrency[domain.JPY]
	}
	assert.LessOrEqual(t, attributed, totals[domain.JPY])
	// 500 + 500 from the meal, 150 from the half Ghost never gets.
	assert.InDelta(t, 1150, attributed, 1e-9)
}

// ---- Idempotence -----------------------------------------------------------

func TestAggregation_Idempotent(t *testing.T) {
	acts := []domain.Activity{
		act(1000, domain.JPY, domain.TypeFood, "Alice", "Bob"),
		act(500, domain.USD, domain.TypeShopping),
		act(0, domain.TWD, domain.TypeOther),
	}
	participants := []string{"Alice", "Bob"}

	assert.Equal(t, budget.Totals(acts), budget.Totals(acts))
	assert.Equal(t, budget.ByCategory(acts), budget.ByCategory(acts))
	assert.Equal(t, budget.Split(acts, participants), budget.Split(acts, participants))
}

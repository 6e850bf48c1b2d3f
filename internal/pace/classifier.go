// Package pace implements the budget status and period engine: status
// classification of envelope spending, purchase simulation and the
// paycheck driven period calendar.
//
// Everything in this package is calculation over values that are
// passed in; persistence stays with the caller. All money arithmetic
// uses decimals, never floats.
package pace

import (
	"github.com/pacekeeper/backend/internal/models"
	"github.com/pacekeeper/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Threshold factors for the pace bands. These are exact decimal values
// so the band boundaries are reproducible to the cent.
var (
	safeFloor   = decimal.New(8, -1)  // 0.8
	dangerLimit = decimal.New(12, -1) // 1.2
)

// Result is the outcome of classifying an envelope, with the derived
// metrics the UI renders alongside the status.
type Result struct {
	Status                 Status          `json:"status"`
	Detail                 StatusDetail    `json:"detail"`
	CurrentDay             int             `json:"currentDay"`                               // 1-based day within the period
	DailyAmount            decimal.Decimal `json:"dailyAmount" example:"30"`                 // allocation spread over the period
	ExpectedSpend          decimal.Decimal `json:"expectedSpend" example:"420"`              // on-pace spending up to and including today
	RemainingAmount        decimal.Decimal `json:"remainingAmount" example:"220"`            // allocation minus spent, negative when overspent
	DaysWorthOfSpending    decimal.Decimal `json:"daysWorthOfSpending" example:"6.67"`       // how many days of pace the spending equals
	DaysWorthAfterPurchase decimal.Decimal `json:"daysWorthAfterPurchase" example:"8.33"` // same, including the prospective purchase
}

// Classify determines the spending trajectory status for an envelope,
// optionally simulating a prospective purchase on top of the recorded
// spending. It is a pure function: nothing is mutated, repeated calls
// with equal inputs return equal results.
func Classify(envelope models.Envelope, purchase *models.Purchase, today types.Date) (Result, error) {
	if !envelope.Allocation.IsPositive() || envelope.PeriodLength < 1 || envelope.PeriodLength > 31 {
		return Result{}, ErrInvalidEnvelope
	}

	if purchase != nil && (!purchase.Amount.IsPositive() || purchase.EnvelopeID != envelope.ID) {
		return Result{}, ErrInvalidPurchase
	}

	currentDay := envelope.StartDate.DaysUntil(today) + 1
	if currentDay < 1 {
		currentDay = 1
	}
	if currentDay > envelope.PeriodLength {
		currentDay = envelope.PeriodLength
	}

	periodLength := decimal.NewFromInt(int64(envelope.PeriodLength))
	dailyAmount := envelope.Allocation.Div(periodLength)

	// Multiply before dividing so a full period expects exactly the
	// allocation, not the rounded daily amount times the length
	expectedSpend := envelope.Allocation.Mul(decimal.NewFromInt(int64(currentDay))).Div(periodLength)

	spent := envelope.Spent
	result := Result{
		Status:              classifyBaseline(spent, envelope.Allocation, expectedSpend),
		CurrentDay:          currentDay,
		DailyAmount:         dailyAmount,
		ExpectedSpend:       expectedSpend,
		RemainingAmount:     envelope.Allocation.Sub(spent),
		DaysWorthOfSpending: spent.Div(dailyAmount),
	}
	result.DaysWorthAfterPurchase = result.DaysWorthOfSpending

	if purchase != nil {
		spentAfter := spent.Add(purchase.Amount)
		result.Status = classifyWithPurchase(spent, spentAfter, envelope.Allocation, expectedSpend)
		result.DaysWorthAfterPurchase = spentAfter.Div(dailyAmount)
	}

	detail, err := StatusDetails(result.Status)
	if err != nil {
		return Result{}, err
	}
	result.Detail = detail

	return result, nil
}

// classifyBaseline buckets the recorded spending without a purchase.
func classifyBaseline(spent, allocation, expectedSpend decimal.Decimal) Status {
	switch {
	case spent.GreaterThanOrEqual(allocation):
		return StatusEnvelopeEmpty
	case spent.GreaterThan(expectedSpend.Mul(dangerLimit)):
		return StatusDanger
	case spent.GreaterThan(expectedSpend):
		return StatusOffTrack
	case spent.GreaterThanOrEqual(expectedSpend.Mul(safeFloor)):
		return StatusSafe
	default:
		return StatusSuperSafe
	}
}

// classifyWithPurchase buckets the spending including the prospective
// purchase. The rules are priority ordered, the first match wins.
func classifyWithPurchase(spent, spentAfter, allocation, expectedSpend decimal.Decimal) Status {
	switch {
	// A purchase cannot make an already empty envelope "more empty":
	// the verdict stays envelope-empty to signal that shuffling funds
	// is the only way forward
	case spent.GreaterThanOrEqual(allocation):
		return StatusEnvelopeEmpty
	case spentAfter.GreaterThan(allocation):
		return StatusBudgetBreaker
	case spentAfter.Equal(allocation):
		return StatusDanger
	case spentAfter.GreaterThan(expectedSpend.Mul(dangerLimit)):
		return StatusDanger
	case spentAfter.GreaterThan(expectedSpend):
		return StatusOffTrack
	case spentAfter.GreaterThanOrEqual(expectedSpend.Mul(safeFloor)):
		return StatusSafe
	default:
		return StatusSuperSafe
	}
}

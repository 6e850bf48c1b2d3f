package models

import "errors"

// General errors. These are returned when the database itself fails or
// when a referenced resource does not exist, independent of the model.
var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Budget errors
var (
	ErrBudgetNameNotUnique = errors.New("the budget name must be unique")
	ErrCurrencyInvalid     = errors.New("the currency must be a valid ISO 4217 code")
)

// Envelope errors
var (
	ErrEnvelopeNameEmpty      = errors.New("envelope names must not be empty")
	ErrEnvelopeNameNotUnique  = errors.New("the envelope name must be unique for the budget")
	ErrAllocationNotPositive  = errors.New("envelope allocations must be larger than zero")
	ErrSpentNegative          = errors.New("the spent amount of an envelope cannot be negative")
	ErrPeriodLengthOutOfRange = errors.New("the period length must be between 1 and 31 days")
)

// Purchase errors
var (
	ErrPurchaseAmountNotPositive = errors.New("purchase amounts must be larger than zero")
)

// Shuffle errors
var (
	ErrShuffleAmountNotPositive   = errors.New("shuffle amounts must be larger than zero")
	ErrShuffleNoAllocations       = errors.New("a shuffle must move money from at least one envelope")
	ErrShuffleSourceIsTarget      = errors.New("an envelope cannot shuffle money into itself")
	ErrShuffleSourceInsufficient  = errors.New("the source envelope does not have enough unspent allocation")
	ErrShuffleLimitExceeded       = errors.New("this shuffle would exceed the shuffle limit of the target envelope")
	ErrShuffleLimitNegative       = errors.New("shuffle limits cannot be negative")
)

// Period plan errors
var (
	ErrPlanEntryInvalid          = errors.New("every planned envelope needs a name and an allocation larger than zero")
	ErrPlanPeriodIDEmpty         = errors.New("the period ID must be set")
	ErrCannotModifyCurrentPeriod = errors.New("the plan for the current period cannot be modified, edit the envelopes directly")
)

// Paycheck preference errors
var (
	ErrPaycheckFrequencyInvalid = errors.New("the paycheck frequency must be one of: weekly, biweekly, semimonthly, monthly")
	ErrSemiMonthlyDaysInvalid   = errors.New("semimonthly schedules need two distinct pay days between 1 and 31")
)

package pace

import "errors"

var (
	// ErrInvalidEnvelope is returned when an envelope cannot be
	// classified because its allocation or period length is off.
	ErrInvalidEnvelope = errors.New("the envelope needs an allocation larger than zero and a period length between 1 and 31 days")

	// ErrInvalidPurchase is returned for prospective purchases with a
	// non-positive amount or the wrong envelope reference. An amount of
	// zero is invalid input, it is never treated as "no purchase".
	ErrInvalidPurchase = errors.New("a prospective purchase needs an amount larger than zero and must reference the envelope being checked")

	// ErrInvalidSchedule is returned when paycheck preferences cannot
	// produce period boundaries.
	ErrInvalidSchedule = errors.New("the paycheck schedule is invalid")

	// ErrUnknownStatus is returned by StatusDetails for a status that
	// has no display descriptor. A silent fallback here would mask
	// classification bugs, so the lookup fails loudly instead.
	ErrUnknownStatus = errors.New("there is no display descriptor for this status")

	// ErrSimulationPending is returned when a simulation is started
	// while another one is still awaiting confirm or cancel.
	ErrSimulationPending = errors.New("another purchase simulation is pending, confirm or cancel it first")

	// ErrNothingPending is returned when confirm is called on an idle
	// simulation session.
	ErrNothingPending = errors.New("there is no pending purchase simulation")
)

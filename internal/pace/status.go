package pace

// Status is the discrete classification of an envelope's spending
// trajectory within its period.
type Status string

const (
	// StatusSuperSafe: spending is well below the pace for the period.
	StatusSuperSafe Status = "super-safe"
	// StatusSafe: spending is at or slightly below pace.
	StatusSafe Status = "safe"
	// StatusOffTrack: spending is above pace, but within 20%.
	StatusOffTrack Status = "off-track"
	// StatusDanger: spending is more than 20% above pace, or a
	// prospective purchase would land exactly on the allocation.
	StatusDanger Status = "danger"
	// StatusBudgetBreaker: the prospective purchase would push the
	// envelope over its allocation.
	StatusBudgetBreaker Status = "budget-breaker"
	// StatusEnvelopeEmpty: the allocation is used up. Also the verdict
	// for any purchase against an already empty envelope, which can
	// only be fixed by shuffling money in.
	StatusEnvelopeEmpty Status = "envelope-empty"
)

// StatusDetail is the fixed display descriptor for a status.
type StatusDetail struct {
	Color  string `json:"color"`
	Border string `json:"border"`
	Text   string `json:"text"`
}

var statusDetails = map[Status]StatusDetail{
	StatusSuperSafe: {
		Color:  "#2E7D32",
		Border: "solid",
		Text:   "Way ahead of pace. Spend away.",
	},
	StatusSafe: {
		Color:  "#66BB6A",
		Border: "solid",
		Text:   "On pace for this period.",
	},
	StatusOffTrack: {
		Color:  "#F9A825",
		Border: "dashed",
		Text:   "Slightly ahead of pace. Ease off for a few days.",
	},
	StatusDanger: {
		Color:  "#E65100",
		Border: "dashed",
		Text:   "Well ahead of pace. Only buy what you must.",
	},
	StatusBudgetBreaker: {
		Color:  "#C62828",
		Border: "double",
		Text:   "This purchase breaks the envelope's budget.",
	},
	StatusEnvelopeEmpty: {
		Color:  "#B71C1C",
		Border: "double",
		Text:   "This envelope is empty. Shuffle money in before spending.",
	},
}

// StatusDetails returns the display descriptor for a status.
//
// Unknown statuses return ErrUnknownStatus. There is deliberately no
// permissive default: an unrecognized status is a logic bug that must
// surface, not render as "super-safe".
func StatusDetails(status Status) (StatusDetail, error) {
	detail, ok := statusDetails[status]
	if !ok {
		return StatusDetail{}, ErrUnknownStatus
	}

	return detail, nil
}

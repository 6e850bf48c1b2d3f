package v1

import (
	"github.com/pacekeeper/backend/internal/models"
	"github.com/shopspring/decimal"
)

// PlannedEnvelopeEditable is a single entry of a period plan
type PlannedEnvelopeEditable struct {
	Name         string          `json:"name" example:"Groceries"` // Name of the envelope
	Allocation   decimal.Decimal `json:"allocation" example:"420"` // Money allocated for the planned period
	PeriodLength int             `json:"periodLength" example:"14"` // Length of the period in days, 1 to 31
}

// PlanEditable represents all user configurable parameters
type PlanEditable struct {
	Envelopes []PlannedEnvelopeEditable `json:"envelopes"` // The planned envelopes, at least one
}

// model transforms the API representation into the model representation
func (p PlanEditable) model() []models.PlannedEnvelope {
	entries := make([]models.PlannedEnvelope, 0, len(p.Envelopes))
	for _, envelope := range p.Envelopes {
		entries = append(entries, models.PlannedEnvelope{
			Name:         envelope.Name,
			Allocation:   envelope.Allocation,
			PeriodLength: envelope.PeriodLength,
		})
	}

	return entries
}

type Plan struct {
	PeriodID  string                    `json:"periodId" example:"2026-09-04-14d"` // The period the plan is for
	Stored    bool                      `json:"stored" example:"true"`             // false when the entries are a template from the current envelopes
	Envelopes []PlannedEnvelopeEditable `json:"envelopes"`                         // The planned envelopes
}

func newPlan(periodID string, stored bool, entries []models.PlannedEnvelope) Plan {
	envelopes := make([]PlannedEnvelopeEditable, 0, len(entries))
	for _, entry := range entries {
		envelopes = append(envelopes, PlannedEnvelopeEditable{
			Name:         entry.Name,
			Allocation:   entry.Allocation,
			PeriodLength: entry.PeriodLength,
		})
	}

	return Plan{
		PeriodID:  periodID,
		Stored:    stored,
		Envelopes: envelopes,
	}
}

type PlanResponse struct {
	Data  *Plan   `json:"data"`                                                          // The plan
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

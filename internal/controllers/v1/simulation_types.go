package v1

import (
	"github.com/google/uuid"
	"github.com/pacekeeper/backend/internal/models"
	"github.com/pacekeeper/backend/internal/pace"
	"github.com/pacekeeper/backend/internal/types"
	"github.com/shopspring/decimal"
)

// SimulationEditable represents all user configurable parameters
type SimulationEditable struct {
	EnvelopeID uuid.UUID       `json:"envelopeId" example:"45b6b5b9-f746-4ae9-b77b-7688b91f8166"` // ID of the envelope the purchase would be made against
	Amount     decimal.Decimal `json:"amount" example:"50"`                                       // Amount of the prospective purchase
	Item       string          `json:"item" example:"Concert tickets"`                            // Optional label for what would be bought
	Date       types.Date      `json:"date" example:"2026-08-30"`                                 // Day of the prospective purchase. Defaults to today.
}

// model transforms the API representation into the model representation
func (s SimulationEditable) model() models.Purchase {
	return models.Purchase{
		EnvelopeID: s.EnvelopeID,
		Amount:     s.Amount,
		Item:       s.Item,
		Date:       s.Date,
	}
}

type Simulation struct {
	SimulationEditable
	Result pace.Result `json:"result"` // Classification of the envelope with the prospective purchase included
}

func newSimulation(purchase models.Purchase, result pace.Result) Simulation {
	return Simulation{
		SimulationEditable: SimulationEditable{
			EnvelopeID: purchase.EnvelopeID,
			Amount:     purchase.Amount,
			Item:       purchase.Item,
			Date:       purchase.Date,
		},
		Result: result,
	}
}

type SimulationResponse struct {
	Data  *Simulation `json:"data"`                                                          // The pending simulation, null when the session is idle
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

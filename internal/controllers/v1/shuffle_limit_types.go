package v1

import (
	"github.com/pacekeeper/backend/internal/models"
	"github.com/shopspring/decimal"
)

// ShuffleLimitEditable represents all user configurable parameters
type ShuffleLimitEditable struct {
	MaxAmount decimal.Decimal `json:"maxAmount" example:"100"` // Ceiling for money shuffled into the envelope per period
}

type ShuffleLimit struct {
	ShuffleLimitEditable
	CurrentShuffled decimal.Decimal `json:"currentShuffled" example:"60"` // Money already shuffled into the envelope this period
	Limited         bool            `json:"limited" example:"true"`       // false when no ceiling is configured
}

func newShuffleLimit(model models.ShuffleLimit) ShuffleLimit {
	return ShuffleLimit{
		ShuffleLimitEditable: ShuffleLimitEditable{
			MaxAmount: model.MaxAmount,
		},
		CurrentShuffled: model.CurrentShuffled,
		Limited:         model.Limited,
	}
}

type ShuffleLimitResponse struct {
	Data  *ShuffleLimit `json:"data"`                                                          // The shuffle limit
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

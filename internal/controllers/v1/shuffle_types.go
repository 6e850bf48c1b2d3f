package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pacekeeper/backend/internal/httputil"
	"github.com/pacekeeper/backend/internal/models"
	"github.com/pacekeeper/backend/internal/types"
	"github.com/shopspring/decimal"
)

// ShuffleAllocationEditable is a single source contribution of a shuffle
type ShuffleAllocationEditable struct {
	SourceEnvelopeID uuid.UUID       `json:"sourceEnvelopeId" example:"45b6b5b9-f746-4ae9-b77b-7688b91f8166"` // ID of the envelope money is taken from
	Amount           decimal.Decimal `json:"amount" example:"60"`                                             // Amount taken from the source envelope
}

// ShuffleEditable represents all user configurable parameters
type ShuffleEditable struct {
	TargetEnvelopeID uuid.UUID                   `json:"targetEnvelopeId" example:"d89a6f10-1936-4d93-bef3-4a9f8a65e658"` // ID of the envelope money is moved into
	Date             types.Date                  `json:"date" example:"2026-08-30"`                                       // Day of the shuffle. Defaults to today.
	Allocations      []ShuffleAllocationEditable `json:"allocations"`                                                     // The source contributions, at least one
}

// model transforms the API representation into the model representation
func (s ShuffleEditable) model() models.ShuffleTransaction {
	allocations := make([]models.ShuffleAllocation, 0, len(s.Allocations))
	for _, allocation := range s.Allocations {
		allocations = append(allocations, models.ShuffleAllocation{
			SourceEnvelopeID: allocation.SourceEnvelopeID,
			Amount:           allocation.Amount,
		})
	}

	return models.ShuffleTransaction{
		TargetEnvelopeID: s.TargetEnvelopeID,
		Date:             s.Date,
		Allocations:      allocations,
	}
}

type ShuffleLinks struct {
	Self           string `json:"self" example:"https://example.com/api/v1/shuffles/b5b420c2-4c09-4bd7-9f28-3597fbc68a40"`           // The shuffle itself
	TargetEnvelope string `json:"targetEnvelope" example:"https://example.com/api/v1/envelopes/d89a6f10-1936-4d93-bef3-4a9f8a65e658"` // The envelope money was moved into
}

type ShuffleAllocation struct {
	SourceEnvelopeID uuid.UUID       `json:"sourceEnvelopeId" example:"45b6b5b9-f746-4ae9-b77b-7688b91f8166"` // ID of the envelope money was taken from
	Amount           decimal.Decimal `json:"amount" example:"60"`                                             // Amount taken from the source envelope
	Position         int             `json:"position" example:"0"`                                            // Order within the shuffle
}

type Shuffle struct {
	models.DefaultModel
	TargetEnvelopeID uuid.UUID           `json:"targetEnvelopeId" example:"d89a6f10-1936-4d93-bef3-4a9f8a65e658"` // ID of the envelope money was moved into
	Date             types.Date          `json:"date" example:"2026-08-30"`                                       // Day of the shuffle
	Total            decimal.Decimal     `json:"total" example:"60"`                                              // Sum of all source contributions
	Allocations      []ShuffleAllocation `json:"allocations"`                                                     // The source contributions
	Links            ShuffleLinks        `json:"links"`                                                           // Links to related resources
}

func newShuffle(c *gin.Context, model models.ShuffleTransaction) Shuffle {
	url := c.GetString(string(models.DBContextURL))

	allocations := make([]ShuffleAllocation, 0, len(model.Allocations))
	for _, allocation := range model.Allocations {
		allocations = append(allocations, ShuffleAllocation{
			SourceEnvelopeID: allocation.SourceEnvelopeID,
			Amount:           allocation.Amount,
			Position:         allocation.Position,
		})
	}

	return Shuffle{
		DefaultModel:     model.DefaultModel,
		TargetEnvelopeID: model.TargetEnvelopeID,
		Date:             model.Date,
		Total:            model.Total(),
		Allocations:      allocations,
		Links: ShuffleLinks{
			Self:           fmt.Sprintf("%s/v1/shuffles/%s", url, model.ID),
			TargetEnvelope: fmt.Sprintf("%s/v1/envelopes/%s", url, model.TargetEnvelopeID),
		},
	}
}

type ShuffleListResponse struct {
	Data       []Shuffle   `json:"data"`                                                          // List of shuffles
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ShuffleResponse struct {
	Data  *Shuffle `json:"data"`                                                          // Data for the shuffle
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ShuffleQueryFilter struct {
	TargetEnvelopeID string `form:"targetEnvelope"`             // By target envelope ID
	Offset           uint   `form:"offset" filterField:"false"` // The offset of the first Shuffle returned. Defaults to 0.
	Limit            int    `form:"limit" filterField:"false"`  // Maximum number of Shuffles to return. Defaults to 50.
}

func (f ShuffleQueryFilter) model() (models.ShuffleTransaction, error) {
	targetEnvelopeID, err := httputil.UUIDFromString(f.TargetEnvelopeID)
	if err != nil {
		return models.ShuffleTransaction{}, err
	}

	return models.ShuffleTransaction{
		TargetEnvelopeID: targetEnvelopeID,
	}, nil
}

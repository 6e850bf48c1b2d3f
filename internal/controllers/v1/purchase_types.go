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

type PurchaseLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/purchases/d89a6f10-1936-4d93-bef3-4a9f8a65e658"`     // The purchase itself
	Envelope string `json:"envelope" example:"https://example.com/api/v1/envelopes/45b6b5b9-f746-4ae9-b77b-7688b91f8166"` // The envelope the purchase was made against
}

// Purchase is the API representation of a committed purchase.
//
// Purchases have no editable representation, the log is append-only and
// new entries are committed through the simulation endpoints.
type Purchase struct {
	models.DefaultModel
	EnvelopeID uuid.UUID       `json:"envelopeId" example:"45b6b5b9-f746-4ae9-b77b-7688b91f8166"` // ID of the envelope
	Amount     decimal.Decimal `json:"amount" example:"50"`                                       // Amount of the purchase
	Item       string          `json:"item" example:"Groceries at the corner store"`              // Optional label for what was bought
	Date       types.Date      `json:"date" example:"2026-08-30"`                                 // Day the purchase was made
	Links      PurchaseLinks   `json:"links"`                                                     // Links to related resources
}

func newPurchase(c *gin.Context, model models.Purchase) Purchase {
	url := c.GetString(string(models.DBContextURL))

	return Purchase{
		DefaultModel: model.DefaultModel,
		EnvelopeID:   model.EnvelopeID,
		Amount:       model.Amount,
		Item:         model.Item,
		Date:         model.Date,
		Links: PurchaseLinks{
			Self:     fmt.Sprintf("%s/v1/purchases/%s", url, model.ID),
			Envelope: fmt.Sprintf("%s/v1/envelopes/%s", url, model.EnvelopeID),
		},
	}
}

type PurchaseListResponse struct {
	Data       []Purchase  `json:"data"`                                                          // List of purchases
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PurchaseResponse struct {
	Data  *Purchase `json:"data"`                                                          // Data for the purchase
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PurchaseQueryFilter struct {
	EnvelopeID string `form:"envelope"`                   // By envelope ID
	Item       string `form:"item" filterField:"false"`   // By item label
	Date       string `form:"date" filterField:"false"`   // By purchase date
	Offset     uint   `form:"offset" filterField:"false"` // The offset of the first Purchase returned. Defaults to 0.
	Limit      int    `form:"limit" filterField:"false"`  // Maximum number of Purchases to return. Defaults to 50.
}

func (f PurchaseQueryFilter) model() (models.Purchase, error) {
	envelopeID, err := httputil.UUIDFromString(f.EnvelopeID)
	if err != nil {
		return models.Purchase{}, err
	}

	return models.Purchase{
		EnvelopeID: envelopeID,
	}, nil
}

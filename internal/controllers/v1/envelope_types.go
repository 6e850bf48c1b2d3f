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

// EnvelopeEditable represents all user configurable parameters
type EnvelopeEditable struct {
	BudgetID     uuid.UUID       `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                   // ID of the budget the envelope belongs to
	Name         string          `json:"name" example:"Groceries" default:""`                                       // Name of the envelope
	Note         string          `json:"note" example:"For stuff bought at supermarkets and drugstores" default:""` // Notes about the envelope
	Allocation   decimal.Decimal `json:"allocation" example:"420"`                                                  // Money allocated for the current period
	StartDate    types.Date      `json:"startDate" example:"2026-08-21"`                                            // First day of the current period
	PeriodLength int             `json:"periodLength" example:"14"`                                                 // Length of the period in days, 1 to 31
	Archived     bool            `json:"archived" example:"true" default:"false"`                                   // Is the envelope archived?
}

// model transforms the API representation into the model representation
func (e EnvelopeEditable) model() models.Envelope {
	return models.Envelope{
		BudgetID:     e.BudgetID,
		Name:         e.Name,
		Note:         e.Note,
		Allocation:   e.Allocation,
		StartDate:    e.StartDate,
		PeriodLength: e.PeriodLength,
		Archived:     e.Archived,
	}
}

type EnvelopeLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/envelopes/45b6b5b9-f746-4ae9-b77b-7688b91f8166"`               // The envelope itself
	Purchases    string `json:"purchases" example:"https://example.com/api/v1/purchases?envelope=45b6b5b9-f746-4ae9-b77b-7688b91f8166"` // The envelope's purchases
	Status       string `json:"status" example:"https://example.com/api/v1/envelopes/45b6b5b9-f746-4ae9-b77b-7688b91f8166/status"`      // The envelope's pace status
	ShuffleLimit string `json:"shuffleLimit" example:"https://example.com/api/v1/envelopes/45b6b5b9-f746-4ae9-b77b-7688b91f8166/shuffle-limit"` // The envelope's shuffle limit
}

type Envelope struct {
	models.DefaultModel
	EnvelopeEditable
	Spent     decimal.Decimal `json:"spent" example:"200"`   // Money spent in the current period
	Remaining decimal.Decimal `json:"remaining" example:"220"` // Unspent allocation, negative when overspent
	Links     EnvelopeLinks   `json:"links"`                 // Links to related resources
}

func newEnvelope(c *gin.Context, model models.Envelope) Envelope {
	url := c.GetString(string(models.DBContextURL))

	return Envelope{
		DefaultModel: model.DefaultModel,
		EnvelopeEditable: EnvelopeEditable{
			BudgetID:     model.BudgetID,
			Name:         model.Name,
			Note:         model.Note,
			Allocation:   model.Allocation,
			StartDate:    model.StartDate,
			PeriodLength: model.PeriodLength,
			Archived:     model.Archived,
		},
		Spent:     model.Spent,
		Remaining: model.Remaining(),
		Links: EnvelopeLinks{
			Self:         fmt.Sprintf("%s/v1/envelopes/%s", url, model.ID),
			Purchases:    fmt.Sprintf("%s/v1/purchases?envelope=%s", url, model.ID),
			Status:       fmt.Sprintf("%s/v1/envelopes/%s/status", url, model.ID),
			ShuffleLimit: fmt.Sprintf("%s/v1/envelopes/%s/shuffle-limit", url, model.ID),
		},
	}
}

type EnvelopeListResponse struct {
	Data       []Envelope  `json:"data"`                                                          // List of envelopes
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type EnvelopeResponse struct {
	Data  *Envelope `json:"data"`                                                          // Data for the envelope
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type EnvelopeCreateResponse struct {
	Data  []EnvelopeResponse `json:"data"`                                                          // Data for the envelopes
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// appendError appends an EnvelopeResponse with the error and returns the updated HTTP status
func (e *EnvelopeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, EnvelopeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type EnvelopeQueryFilter struct {
	BudgetID string `form:"budget"`                       // By budget ID
	Name     string `form:"name" filterField:"false"`     // By name, supports globbing with "*"
	Note     string `form:"note" filterField:"false"`     // By note
	Search   string `form:"search" filterField:"false"`   // By string in name or note
	Archived bool   `form:"archived"`                     // Is the envelope archived?
	Offset   uint   `form:"offset" filterField:"false"`   // The offset of the first Envelope returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`    // Maximum number of Envelopes to return. Defaults to 50.
}

func (f EnvelopeQueryFilter) model() (models.Envelope, error) {
	budgetID, err := httputil.UUIDFromString(f.BudgetID)
	if err != nil {
		return models.Envelope{}, err
	}

	return models.Envelope{
		BudgetID: budgetID,
		Archived: f.Archived,
	}, nil
}

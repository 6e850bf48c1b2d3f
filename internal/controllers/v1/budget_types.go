package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pacekeeper/backend/internal/models"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Name     string `json:"name" example:"Morre's Budget" default:""`       // Name of the budget
	Note     string `json:"note" example:"My personal budget" default:""`   // A longer description of the budget
	Currency string `json:"currency" example:"EUR" default:""`              // ISO 4217 code of the currency, for display only
}

// model transforms the API representation into the model representation
func (b BudgetEditable) model() models.Budget {
	return models.Budget{
		Name:     b.Name,
		Note:     b.Note,
		Currency: b.Currency,
	}
}

type BudgetLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`             // The budget itself
	Envelopes   string `json:"envelopes" example:"https://example.com/api/v1/envelopes?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The envelopes for this budget
	Periods     string `json:"periods" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf/periods"`  // The period calendar for this budget
	Preferences string `json:"preferences" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf/preferences"` // The paycheck preferences for this budget
	Simulation  string `json:"simulation" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf/simulation"`   // The purchase simulation for this budget
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"` // Links to related resources
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Name:     model.Name,
			Note:     model.Note,
			Currency: model.Currency,
		},
		Links: BudgetLinks{
			Self:        fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Envelopes:   fmt.Sprintf("%s/v1/envelopes?budget=%s", url, model.ID),
			Periods:     fmt.Sprintf("%s/v1/budgets/%s/periods", url, model.ID),
			Preferences: fmt.Sprintf("%s/v1/budgets/%s/preferences", url, model.ID),
			Simulation:  fmt.Sprintf("%s/v1/budgets/%s/simulation", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created budgets
}

// appendError appends a BudgetResponse with the error and returns the updated HTTP status
func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Note     string `form:"note" filterField:"false"`   // By note
	Currency string `form:"currency"`                   // By currency
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first Budget returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		Currency: f.Currency,
	}
}

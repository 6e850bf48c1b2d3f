package v1

import (
	"github.com/pacekeeper/backend/internal/pace"
)

type PeriodListResponse struct {
	Data  []pace.Period `json:"data"`                                                          // The current period and the upcoming ones
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PeriodResponse struct {
	Data  *pace.Period `json:"data"`                                                          // The period
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PeriodQueryFilter struct {
	N int `form:"n"` // Number of periods to return, including the current one. Defaults to 3.
}

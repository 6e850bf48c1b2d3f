package v1

import (
	"github.com/pacekeeper/backend/internal/pace"
)

type StatusResponse struct {
	Data  *pace.Result `json:"data"`                                                          // The classification result
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

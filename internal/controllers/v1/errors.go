package v1

import (
	"errors"
	"net/http"

	"github.com/pacekeeper/backend/internal/models"
	"github.com/pacekeeper/backend/internal/pace"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database or engine error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	// Conflicts with the current state of the resource
	if errors.Is(err, pace.ErrSimulationPending) ||
		errors.Is(err, models.ErrShuffleLimitExceeded) ||
		errors.Is(err, models.ErrShuffleSourceInsufficient) ||
		errors.Is(err, models.ErrCannotModifyCurrentPeriod) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

var (
	errNoPreferences       = errors.New("no paycheck preferences are configured for this budget, configure them to use the period calendar")
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

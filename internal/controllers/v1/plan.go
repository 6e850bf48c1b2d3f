package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pacekeeper/backend/internal/httputil"
	"github.com/pacekeeper/backend/internal/models"
)

// planStore builds the plan store with the current-period guard for the
// budget set.
func planStore(c *gin.Context) (models.PeriodPlanStore, URIPeriod, bool) {
	var uri URIPeriod
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PlanResponse{
			Error: &s,
		})
		return models.PeriodPlanStore{}, URIPeriod{}, false
	}

	err = models.DB.First(&models.Budget{}, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PlanResponse{
			Error: &s,
		})
		return models.PeriodPlanStore{}, URIPeriod{}, false
	}

	return models.PeriodPlanStore{
		DB:              models.DB,
		CurrentPeriodID: currentPeriodID(uri.ID.UUID),
	}, uri, true
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plans
// @Success		204
// @Router			/v1/budgets/{id}/plans/{periodId} [options]
func OptionsPlanDetail(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// @Summary		Get period plan
// @Description	Returns the stored plan for a period. Without a stored plan, a template built from the budget's active envelopes is returned and nothing is persisted.
// @Tags			Plans
// @Produce		json
// @Success		200			{object}	PlanResponse
// @Failure		400			{object}	PlanResponse
// @Failure		404			{object}	PlanResponse
// @Failure		500			{object}	PlanResponse
// @Param			id			path		string	true	"ID of the budget"
// @Param			periodId	path		string	true	"ID of the period"
// @Router			/v1/budgets/{id}/plans/{periodId} [get]
func GetPlan(c *gin.Context) {
	store, uri, ok := planStore(c)
	if !ok {
		return
	}

	plan, err := store.Get(uri.PeriodID)
	if err != nil {
		if !models.IsNotFound(err) {
			s := err.Error()
			c.JSON(status(err), PlanResponse{
				Error: &s,
			})
			return
		}

		entries, err := store.Template(uri.ID.UUID)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), PlanResponse{
				Error: &s,
			})
			return
		}

		data := newPlan(uri.PeriodID, false, entries)
		c.JSON(http.StatusOK, PlanResponse{Data: &data})
		return
	}

	data := newPlan(plan.PeriodID, true, plan.Envelopes)
	c.JSON(http.StatusOK, PlanResponse{Data: &data})
}

// @Summary		Save period plan
// @Description	Stores the plan for a period, overwriting any existing plan. The active period cannot be planned.
// @Tags			Plans
// @Accept			json
// @Produce		json
// @Success		200			{object}	PlanResponse
// @Failure		400			{object}	PlanResponse
// @Failure		404			{object}	PlanResponse
// @Failure		409			{object}	PlanResponse
// @Failure		500			{object}	PlanResponse
// @Param			id			path		string			true	"ID of the budget"
// @Param			periodId	path		string			true	"ID of the period"
// @Param			plan		body		PlanEditable	true	"Plan"
// @Router			/v1/budgets/{id}/plans/{periodId} [put]
func UpdatePlan(c *gin.Context) {
	store, uri, ok := planStore(c)
	if !ok {
		return
	}

	var editable PlanEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PlanResponse{
			Error: &s,
		})
		return
	}

	plan, err := store.Save(uri.PeriodID, editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PlanResponse{
			Error: &s,
		})
		return
	}

	data := newPlan(plan.PeriodID, true, plan.Envelopes)
	c.JSON(http.StatusOK, PlanResponse{Data: &data})
}

// @Summary		Delete period plan
// @Description	Deletes the stored plan for a period. The active period cannot be modified.
// @Tags			Plans
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		409			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		string	true	"ID of the budget"
// @Param			periodId	path		string	true	"ID of the period"
// @Router			/v1/budgets/{id}/plans/{periodId} [delete]
func DeletePlan(c *gin.Context) {
	store, uri, ok := planStore(c)
	if !ok {
		return
	}

	err := store.Delete(uri.PeriodID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

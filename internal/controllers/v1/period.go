package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pacekeeper/backend/internal/httputil"
	"github.com/pacekeeper/backend/internal/models"
	"github.com/pacekeeper/backend/internal/pace"
	"github.com/pacekeeper/backend/internal/types"
)

// budgetPreferences loads the paycheck preferences driving a budget's
// period calendar.
func budgetPreferences(budgetID uuid.UUID) (models.PaycheckPreferences, error) {
	if err := models.DB.First(&models.Budget{}, budgetID).Error; err != nil {
		return models.PaycheckPreferences{}, err
	}

	var prefs models.PaycheckPreferences
	err := models.DB.First(&prefs, &models.PaycheckPreferences{BudgetID: budgetID}).Error
	if err != nil {
		if models.IsNotFound(err) {
			return models.PaycheckPreferences{}, errNoPreferences
		}
		return models.PaycheckPreferences{}, err
	}

	return prefs, nil
}

// currentPeriodID derives the active period from the paycheck schedule.
// Budgets without a schedule have no derivable current period and the
// empty string disables the current-period guard of the plan store.
func currentPeriodID(budgetID uuid.UUID) string {
	var prefs models.PaycheckPreferences
	err := models.DB.First(&prefs, &models.PaycheckPreferences{BudgetID: budgetID}).Error
	if err != nil {
		return ""
	}

	periods, err := pace.NextPeriods(prefs, types.Today(), 1, nil)
	if err != nil || len(periods) == 0 {
		return ""
	}

	return periods[0].ID
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Periods
// @Success		204
// @Router			/v1/budgets/{id}/periods [options]
func OptionsPeriods(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get period calendar
// @Description	Returns the current period and the upcoming ones, computed from the budget's paycheck schedule
// @Tags			Periods
// @Produce		json
// @Success		200	{object}	PeriodListResponse
// @Failure		400	{object}	PeriodListResponse
// @Failure		404	{object}	PeriodListResponse
// @Failure		500	{object}	PeriodListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			n	query		int		false	"Number of periods to return, including the current one. Defaults to 3."
// @Router			/v1/budgets/{id}/periods [get]
func GetPeriods(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PeriodListResponse{
			Error: &s,
		})
		return
	}

	var filter PeriodQueryFilter
	_ = c.Bind(&filter)

	prefs, err := budgetPreferences(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PeriodListResponse{
			Error: &s,
		})
		return
	}

	store := models.PeriodPlanStore{DB: models.DB}
	periods, err := pace.NextPeriods(prefs, types.Today(), filter.N, store)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PeriodListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, PeriodListResponse{Data: periods})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Periods
// @Success		204
// @Router			/v1/budgets/{id}/rollover [options]
func OptionsRollover(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Roll over into the current period
// @Description	Starts the period the calendar marks as current: spent amounts reset, a stored plan for the period is consumed and shuffle limit usage is zeroed, all in one transaction
// @Tags			Periods
// @Produce		json
// @Success		200	{object}	PeriodResponse
// @Failure		400	{object}	PeriodResponse
// @Failure		404	{object}	PeriodResponse
// @Failure		500	{object}	PeriodResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/rollover [post]
func Rollover(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PeriodResponse{
			Error: &s,
		})
		return
	}

	prefs, err := budgetPreferences(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PeriodResponse{
			Error: &s,
		})
		return
	}

	store := models.PeriodPlanStore{DB: models.DB}
	periods, err := pace.NextPeriods(prefs, types.Today(), 1, store)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PeriodResponse{
			Error: &s,
		})
		return
	}

	period := periods[0]
	err = models.StartNewPeriod(models.DB, uri.ID.UUID, period.StartDate, period.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PeriodResponse{
			Error: &s,
		})
		return
	}

	// The plan is consumed now
	period.Planned = false

	c.JSON(http.StatusOK, PeriodResponse{Data: &period})
}

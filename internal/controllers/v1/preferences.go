package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pacekeeper/backend/internal/httputil"
	"github.com/pacekeeper/backend/internal/models"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Preferences
// @Success		204
// @Router			/v1/budgets/{id}/preferences [options]
func OptionsPreferences(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get paycheck preferences
// @Description	Returns the paycheck preferences for a budget
// @Tags			Preferences
// @Produce		json
// @Success		200	{object}	PreferencesResponse
// @Failure		400	{object}	PreferencesResponse
// @Failure		404	{object}	PreferencesResponse
// @Failure		500	{object}	PreferencesResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/preferences [get]
func GetPreferences(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PreferencesResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.First(&models.Budget{}, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PreferencesResponse{
			Error: &s,
		})
		return
	}

	var prefs models.PaycheckPreferences
	err = models.DB.First(&prefs, &models.PaycheckPreferences{BudgetID: uri.ID.UUID}).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PreferencesResponse{
			Error: &s,
		})
		return
	}

	apiResource := newPreferences(prefs)
	c.JSON(http.StatusOK, PreferencesResponse{Data: &apiResource})
}

// @Summary		Set paycheck preferences
// @Description	Creates or replaces the paycheck preferences for a budget
// @Tags			Preferences
// @Accept			json
// @Produce		json
// @Success		200			{object}	PreferencesResponse
// @Failure		400			{object}	PreferencesResponse
// @Failure		404			{object}	PreferencesResponse
// @Failure		500			{object}	PreferencesResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			preferences	body		PreferencesEditable	true	"Preferences"
// @Router			/v1/budgets/{id}/preferences [put]
func UpdatePreferences(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PreferencesResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.First(&models.Budget{}, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PreferencesResponse{
			Error: &s,
		})
		return
	}

	var data PreferencesEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PreferencesResponse{
			Error: &s,
		})
		return
	}

	prefs := data.model()
	prefs.BudgetID = uri.ID.UUID

	// PUT replaces: an existing row keeps its ID, everything else is
	// overwritten
	var existing models.PaycheckPreferences
	err = models.DB.First(&existing, &models.PaycheckPreferences{BudgetID: uri.ID.UUID}).Error
	if err == nil {
		prefs.DefaultModel = existing.DefaultModel
		err = models.DB.Save(&prefs).Error
	} else if models.IsNotFound(err) {
		err = models.DB.Create(&prefs).Error
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), PreferencesResponse{
			Error: &s,
		})
		return
	}

	apiResource := newPreferences(prefs)
	c.JSON(http.StatusOK, PreferencesResponse{Data: &apiResource})
}

package v1

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pacekeeper/backend/internal/httputil"
	"github.com/pacekeeper/backend/internal/models"
	"github.com/pacekeeper/backend/internal/pace"
	"github.com/pacekeeper/backend/internal/types"
	"gorm.io/gorm"
)

// sessions holds one simulation session per budget so two clients
// cannot hold competing pending purchases for the same budget.
//
// Sessions keep a database handle, so reconnecting the database drops
// all of them.
var sessions = struct {
	sync.Mutex
	db       *gorm.DB
	byBudget map[uuid.UUID]*pace.SimulationSession
}{
	byBudget: make(map[uuid.UUID]*pace.SimulationSession),
}

func sessionFor(budgetID uuid.UUID) *pace.SimulationSession {
	sessions.Lock()
	defer sessions.Unlock()

	if sessions.db != models.DB {
		sessions.db = models.DB
		sessions.byBudget = make(map[uuid.UUID]*pace.SimulationSession)
	}

	session, ok := sessions.byBudget[budgetID]
	if !ok {
		session = pace.NewSimulationSession(models.DB)
		sessions.byBudget[budgetID] = session
	}

	return session
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Simulations
// @Success		204
// @Router			/v1/budgets/{id}/simulation [options]
func OptionsSimulation(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Simulations
// @Success		204
// @Router			/v1/budgets/{id}/simulation/confirm [options]
func OptionsSimulationConfirm(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Simulate purchase
// @Description	Classifies a prospective purchase without committing it. Only one simulation can be pending per budget.
// @Tags			Simulations
// @Accept			json
// @Produce		json
// @Success		201			{object}	SimulationResponse
// @Failure		400			{object}	SimulationResponse
// @Failure		404			{object}	SimulationResponse
// @Failure		409			{object}	SimulationResponse
// @Failure		500			{object}	SimulationResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			simulation	body		SimulationEditable	true	"Simulation"
// @Router			/v1/budgets/{id}/simulation [post]
func CreateSimulation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.First(&models.Budget{}, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &s,
		})
		return
	}

	var editable SimulationEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &s,
		})
		return
	}

	purchase := editable.model()

	result, err := sessionFor(uri.ID.UUID).Simulate(purchase, types.Today())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &s,
		})
		return
	}

	if purchase.Date.IsZero() {
		purchase.Date = types.Today()
	}

	data := newSimulation(purchase, result)
	c.JSON(http.StatusCreated, SimulationResponse{Data: &data})
}

// @Summary		Get pending simulation
// @Description	Returns the pending simulation, or null data when nothing is pending
// @Tags			Simulations
// @Produce		json
// @Success		200	{object}	SimulationResponse
// @Failure		400	{object}	SimulationResponse
// @Failure		404	{object}	SimulationResponse
// @Failure		500	{object}	SimulationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/simulation [get]
func GetSimulation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.First(&models.Budget{}, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SimulationResponse{
			Error: &s,
		})
		return
	}

	purchase, result := sessionFor(uri.ID.UUID).Pending()
	if purchase == nil {
		c.JSON(http.StatusOK, SimulationResponse{})
		return
	}

	data := newSimulation(*purchase, result)
	c.JSON(http.StatusOK, SimulationResponse{Data: &data})
}

// @Summary		Cancel simulation
// @Description	Discards the pending simulation. Cancelling when nothing is pending is not an error.
// @Tags			Simulations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/simulation [delete]
func CancelSimulation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Budget{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	sessionFor(uri.ID.UUID).Cancel()
	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Confirm simulation
// @Description	Commits the pending purchase: it is appended to the purchase log and the envelope's spent amount grows, both in one transaction
// @Tags			Simulations
// @Produce		json
// @Success		201	{object}	PurchaseResponse
// @Failure		400	{object}	PurchaseResponse
// @Failure		404	{object}	PurchaseResponse
// @Failure		500	{object}	PurchaseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/simulation/confirm [post]
func ConfirmSimulation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.First(&models.Budget{}, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	purchase, err := sessionFor(uri.ID.UUID).Confirm()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	apiResource := newPurchase(c, purchase)
	c.JSON(http.StatusCreated, PurchaseResponse{Data: &apiResource})
}

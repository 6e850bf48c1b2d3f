package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pacekeeper/backend/internal/httputil"
	"github.com/pacekeeper/backend/internal/models"
	"github.com/pacekeeper/backend/internal/types"
	"golang.org/x/exp/slices"
)

// RegisterPurchaseRoutes registers the routes for Purchases with
// the RouterGroup that is passed.
//
// The purchase log is append-only, new purchases are committed through
// the simulation endpoints of the budget.
func RegisterPurchaseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPurchaseList)
		r.GET("", GetPurchases)
	}

	// Purchase with ID
	{
		r.OPTIONS("/:id", OptionsPurchaseDetail)
		r.GET("/:id", GetPurchase)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Purchases
// @Success		204
// @Router			/v1/purchases [options]
func OptionsPurchaseList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Purchases
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/purchases/{id} [options]
func OptionsPurchaseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var purchase models.Purchase
	err = models.DB.First(&purchase, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		List purchases
// @Description	Returns a list of purchases
// @Tags			Purchases
// @Produce		json
// @Success		200	{object}	PurchaseListResponse
// @Failure		400	{object}	PurchaseListResponse
// @Failure		500	{object}	PurchaseListResponse
// @Router			/v1/purchases [get]
// @Param			envelope	query	string	false	"Filter by envelope ID"
// @Param			item		query	string	false	"Filter by item label"
// @Param			date		query	string	false	"Filter by purchase date in YYYY-MM-DD format"
// @Param			offset		query	uint	false	"The offset of the first Purchase returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Purchases to return. Defaults to 50."
func GetPurchases(c *gin.Context) {
	var filter PurchaseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we're filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseListResponse{
			Error: &s,
		})
		return
	}

	var purchases []models.Purchase

	// Sort by purchase date, newest purchases last
	q := models.DB.
		Order("date ASC, created_at ASC").
		Where(model, queryFields...)

	if filter.Item != "" {
		q = q.Where("item LIKE ?", fmt.Sprintf("%%%s%%", filter.Item))
	} else if slices.Contains(setFields, "Item") {
		q = q.Where("item = ''")
	}

	if filter.Date != "" {
		date, err := types.ParseDate(filter.Date)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, PurchaseListResponse{
				Error: &s,
			})
			return
		}

		q = q.Where("date = ?", date)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to all Purchases and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	err = q.Find(&purchases).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PurchaseListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]Purchase, 0)
	for _, purchase := range purchases {
		apiResources = append(apiResources, newPurchase(c, purchase))
	}

	c.JSON(http.StatusOK, PurchaseListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get purchase
// @Description	Returns a specific purchase
// @Tags			Purchases
// @Produce		json
// @Success		200	{object}	PurchaseResponse
// @Failure		400	{object}	PurchaseResponse
// @Failure		404	{object}	PurchaseResponse
// @Failure		500	{object}	PurchaseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/purchases/{id} [get]
func GetPurchase(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	var purchase models.Purchase
	err = models.DB.First(&purchase, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	apiResource := newPurchase(c, purchase)
	c.JSON(http.StatusOK, PurchaseResponse{Data: &apiResource})
}

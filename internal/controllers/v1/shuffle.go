package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pacekeeper/backend/internal/httputil"
	"github.com/pacekeeper/backend/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterShuffleRoutes registers the routes for Shuffles with
// the RouterGroup that is passed.
//
// Shuffles are applied atomically and logged append-only, so there are
// no update or delete routes.
func RegisterShuffleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsShuffleList)
		r.GET("", GetShuffles)
		r.POST("", CreateShuffle)
	}

	// Shuffle with ID
	{
		r.OPTIONS("/:id", OptionsShuffleDetail)
		r.GET("/:id", GetShuffle)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Shuffles
// @Success		204
// @Router			/v1/shuffles [options]
func OptionsShuffleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Shuffles
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/shuffles/{id} [options]
func OptionsShuffleDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var shuffle models.ShuffleTransaction
	err = models.DB.First(&shuffle, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Apply shuffle
// @Description	Moves unspent allocation between envelopes. The limit check, the transfer and the log entry are one atomic operation.
// @Tags			Shuffles
// @Accept			json
// @Produce		json
// @Success		201		{object}	ShuffleResponse
// @Failure		400		{object}	ShuffleResponse
// @Failure		404		{object}	ShuffleResponse
// @Failure		409		{object}	ShuffleResponse
// @Failure		500		{object}	ShuffleResponse
// @Param			shuffle	body		ShuffleEditable	true	"Shuffle"
// @Router			/v1/shuffles [post]
func CreateShuffle(c *gin.Context) {
	var editable ShuffleEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShuffleResponse{
			Error: &s,
		})
		return
	}

	shuffle, err := models.ApplyShuffle(models.DB, editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShuffleResponse{
			Error: &s,
		})
		return
	}

	apiResource := newShuffle(c, shuffle)
	c.JSON(http.StatusCreated, ShuffleResponse{Data: &apiResource})
}

// @Summary		List shuffles
// @Description	Returns a list of shuffles
// @Tags			Shuffles
// @Produce		json
// @Success		200	{object}	ShuffleListResponse
// @Failure		400	{object}	ShuffleListResponse
// @Failure		500	{object}	ShuffleListResponse
// @Router			/v1/shuffles [get]
// @Param			targetEnvelope	query	string	false	"Filter by target envelope ID"
// @Param			offset			query	uint	false	"The offset of the first Shuffle returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of Shuffles to return. Defaults to 50."
func GetShuffles(c *gin.Context) {
	var filter ShuffleQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we're filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShuffleListResponse{
			Error: &s,
		})
		return
	}

	var shuffles []models.ShuffleTransaction

	// Sort by shuffle date, newest shuffles last
	q := models.DB.
		Preload("Allocations", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("date ASC, created_at ASC").
		Where(model, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to all Shuffles and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	err = q.Find(&shuffles).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShuffleListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ShuffleListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]Shuffle, 0)
	for _, shuffle := range shuffles {
		apiResources = append(apiResources, newShuffle(c, shuffle))
	}

	c.JSON(http.StatusOK, ShuffleListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get shuffle
// @Description	Returns a specific shuffle
// @Tags			Shuffles
// @Produce		json
// @Success		200	{object}	ShuffleResponse
// @Failure		400	{object}	ShuffleResponse
// @Failure		404	{object}	ShuffleResponse
// @Failure		500	{object}	ShuffleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/shuffles/{id} [get]
func GetShuffle(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShuffleResponse{
			Error: &s,
		})
		return
	}

	var shuffle models.ShuffleTransaction
	err = models.DB.
		Preload("Allocations", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&shuffle, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShuffleResponse{
			Error: &s,
		})
		return
	}

	apiResource := newShuffle(c, shuffle)
	c.JSON(http.StatusOK, ShuffleResponse{Data: &apiResource})
}

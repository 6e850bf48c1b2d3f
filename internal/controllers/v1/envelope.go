package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pacekeeper/backend/internal/httputil"
	"github.com/pacekeeper/backend/internal/models"
	"github.com/pacekeeper/backend/internal/pace"
	"github.com/pacekeeper/backend/internal/types"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// RegisterEnvelopeRoutes registers the routes for Envelopes with
// the RouterGroup that is passed.
func RegisterEnvelopeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsEnvelopeList)
		r.GET("", GetEnvelopes)
		r.POST("", CreateEnvelopes)
	}

	// Envelope with ID
	{
		r.OPTIONS("/:id", OptionsEnvelopeDetail)
		r.GET("/:id", GetEnvelope)
		r.PATCH("/:id", UpdateEnvelope)
		r.DELETE("/:id", DeleteEnvelope)
	}

	// Pace status
	{
		r.OPTIONS("/:id/status", OptionsEnvelopeStatus)
		r.GET("/:id/status", GetEnvelopeStatus)
	}

	// Shuffle limit
	{
		r.OPTIONS("/:id/shuffle-limit", OptionsShuffleLimit)
		r.GET("/:id/shuffle-limit", GetShuffleLimit)
		r.PUT("/:id/shuffle-limit", UpdateShuffleLimit)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Router			/v1/envelopes [options]
func OptionsEnvelopeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/envelopes/{id} [options]
func OptionsEnvelopeDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Envelope{})
}

// @Summary		Create envelopes
// @Description	Creates new envelopes
// @Tags			Envelopes
// @Accept			json
// @Produce		json
// @Success		201			{object}	EnvelopeCreateResponse
// @Failure		400			{object}	EnvelopeCreateResponse
// @Failure		404			{object}	EnvelopeCreateResponse
// @Failure		500			{object}	EnvelopeCreateResponse
// @Param			envelopes	body		[]EnvelopeEditable	true	"Envelopes"
// @Router			/v1/envelopes [post]
func CreateEnvelopes(c *gin.Context) {
	var envelopes []EnvelopeEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &envelopes)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := EnvelopeCreateResponse{}

	for _, editable := range envelopes {
		envelope := editable.model()

		// New envelopes start their first period today unless specified
		if envelope.StartDate.IsZero() {
			envelope.StartDate = types.Today()
		}

		err := models.DB.Create(&envelope).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newEnvelope(c, envelope)
		r.Data = append(r.Data, EnvelopeResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List envelopes
// @Description	Returns a list of envelopes
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	EnvelopeListResponse
// @Failure		400	{object}	EnvelopeListResponse
// @Failure		500	{object}	EnvelopeListResponse
// @Router			/v1/envelopes [get]
// @Param			budget		query	string	false	"Filter by budget ID"
// @Param			name		query	string	false	"Filter by name, supports globbing with *"
// @Param			note		query	string	false	"Filter by note"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			archived	query	bool	false	"Is the envelope archived?"
// @Param			offset		query	uint	false	"The offset of the first Envelope returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Envelopes to return. Defaults to 50."
func GetEnvelopes(c *gin.Context) {
	var filter EnvelopeQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we're filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EnvelopeListResponse{
			Error: &s,
		})
		return
	}

	var envelopes []models.Envelope

	// Always sort by name
	q := models.DB.
		Order("name ASC").
		Where(model, queryFields...)

	// Globbing in the name filter is resolved in code below, only plain
	// names filter in the database
	if filter.Name != "" && !strings.Contains(filter.Name, "*") {
		q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)
	} else {
		q = stringFilters(models.DB, q, setFields, "", filter.Note, filter.Search)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to all Envelopes and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	err = q.Find(&envelopes).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EnvelopeListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]Envelope, 0)
	for _, envelope := range envelopes {
		if strings.Contains(filter.Name, "*") &&
			!glob.Glob(strings.ToLower(filter.Name), strings.ToLower(envelope.Name)) {
			continue
		}

		apiResources = append(apiResources, newEnvelope(c, envelope))
	}

	c.JSON(http.StatusOK, EnvelopeListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get envelope
// @Description	Returns a specific envelope
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	EnvelopeResponse
// @Failure		400	{object}	EnvelopeResponse
// @Failure		404	{object}	EnvelopeResponse
// @Failure		500	{object}	EnvelopeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/envelopes/{id} [get]
func GetEnvelope(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &s,
		})
		return
	}

	var envelope models.Envelope
	err = models.DB.First(&envelope, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &s,
		})
		return
	}

	apiResource := newEnvelope(c, envelope)
	c.JSON(http.StatusOK, EnvelopeResponse{Data: &apiResource})
}

// @Summary		Update envelope
// @Description	Update an existing envelope. Only values to be updated need to be specified.
// @Tags			Envelopes
// @Accept			json
// @Produce		json
// @Success		200			{object}	EnvelopeResponse
// @Failure		400			{object}	EnvelopeResponse
// @Failure		404			{object}	EnvelopeResponse
// @Failure		500			{object}	EnvelopeResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			envelope	body		EnvelopeEditable	true	"Envelope"
// @Router			/v1/envelopes/{id} [patch]
func UpdateEnvelope(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &s,
		})
		return
	}

	var envelope models.Envelope
	err = models.DB.First(&envelope, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, EnvelopeEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &s,
		})
		return
	}

	var data EnvelopeEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&envelope).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &s,
		})
		return
	}

	apiResource := newEnvelope(c, envelope)
	c.JSON(http.StatusOK, EnvelopeResponse{Data: &apiResource})
}

// @Summary		Delete envelope
// @Description	Deletes an envelope
// @Tags			Envelopes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/envelopes/{id} [delete]
func DeleteEnvelope(c *gin.Context) {
	deleteResource[models.Envelope](c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Router			/v1/envelopes/{id}/status [options]
func OptionsEnvelopeStatus(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get envelope status
// @Description	Classifies the envelope's spending pace, optionally with a prospective purchase amount
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	StatusResponse
// @Failure		400	{object}	StatusResponse
// @Failure		404	{object}	StatusResponse
// @Failure		500	{object}	StatusResponse
// @Param			id		path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			amount	query	string	false	"Amount of a prospective purchase to include in the classification"
// @Param			date	query	string	false	"The day to classify for, in YYYY-MM-DD format. Defaults to today."
// @Router			/v1/envelopes/{id}/status [get]
func GetEnvelopeStatus(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatusResponse{
			Error: &s,
		})
		return
	}

	var envelope models.Envelope
	err = models.DB.First(&envelope, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatusResponse{
			Error: &s,
		})
		return
	}

	today := types.Today()
	if raw, ok := c.GetQuery("date"); ok {
		today, err = types.ParseDate(raw)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, StatusResponse{
				Error: &s,
			})
			return
		}
	}

	var purchase *models.Purchase
	if raw, ok := c.GetQuery("amount"); ok {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, StatusResponse{
				Error: &s,
			})
			return
		}

		purchase = &models.Purchase{EnvelopeID: envelope.ID, Amount: amount}
	}

	result, err := pace.Classify(envelope, purchase, today)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatusResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, StatusResponse{Data: &result})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Router			/v1/envelopes/{id}/shuffle-limit [options]
func OptionsShuffleLimit(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get shuffle limit
// @Description	Returns the shuffle limit for an envelope. Envelopes without a configured limit are unlimited.
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	ShuffleLimitResponse
// @Failure		400	{object}	ShuffleLimitResponse
// @Failure		404	{object}	ShuffleLimitResponse
// @Failure		500	{object}	ShuffleLimitResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/envelopes/{id}/shuffle-limit [get]
func GetShuffleLimit(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShuffleLimitResponse{
			Error: &s,
		})
		return
	}

	var envelope models.Envelope
	err = models.DB.First(&envelope, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShuffleLimitResponse{
			Error: &s,
		})
		return
	}

	limit, err := models.GetShuffleLimit(models.DB, envelope.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShuffleLimitResponse{
			Error: &s,
		})
		return
	}

	data := newShuffleLimit(limit)
	c.JSON(http.StatusOK, ShuffleLimitResponse{Data: &data})
}

// @Summary		Set shuffle limit
// @Description	Sets the shuffle limit ceiling for an envelope. The running usage is not changed.
// @Tags			Envelopes
// @Accept			json
// @Produce		json
// @Success		200		{object}	ShuffleLimitResponse
// @Failure		400		{object}	ShuffleLimitResponse
// @Failure		404		{object}	ShuffleLimitResponse
// @Failure		500		{object}	ShuffleLimitResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			limit	body		ShuffleLimitEditable	true	"Shuffle limit"
// @Router			/v1/envelopes/{id}/shuffle-limit [put]
func UpdateShuffleLimit(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShuffleLimitResponse{
			Error: &s,
		})
		return
	}

	var data ShuffleLimitEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShuffleLimitResponse{
			Error: &s,
		})
		return
	}

	limit, err := models.SetShuffleLimit(models.DB, uri.ID.UUID, data.MaxAmount)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShuffleLimitResponse{
			Error: &s,
		})
		return
	}

	apiResource := newShuffleLimit(limit)
	c.JSON(http.StatusOK, ShuffleLimitResponse{Data: &apiResource})
}

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pacekeeper/backend/internal/httputil"
	"github.com/pacekeeper/backend/internal/models"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Budgets   string `json:"budgets" example:"https://example.com/api/v1/budgets"`     // URL of Budget collection endpoint
	Envelopes string `json:"envelopes" example:"https://example.com/api/v1/envelopes"` // URL of Envelope collection endpoint
	Export    string `json:"export" example:"https://example.com/api/v1/export"`       // URL of the export endpoint
	Purchases string `json:"purchases" example:"https://example.com/api/v1/purchases"` // URL of Purchase collection endpoint
	Shuffles  string `json:"shuffles" example:"https://example.com/api/v1/shuffles"`   // URL of Shuffle collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Budgets:   url + "/v1/budgets",
			Envelopes: url + "/v1/envelopes",
			Export:    url + "/v1/export",
			Purchases: url + "/v1/purchases",
			Shuffles:  url + "/v1/shuffles",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

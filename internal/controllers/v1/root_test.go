package v1_test

import (
	"net/http"

	v1 "github.com/pacekeeper/backend/internal/controllers/v1"
	"github.com/pacekeeper/backend/test"
	"github.com/stretchr/testify/assert"
)

// TestV1Get verifies the link list of the v1 API.
func (suite *TestSuiteStandard) TestV1Get() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "http://example.com/v1/budgets", response.Links.Budgets)
	assert.Equal(suite.T(), "http://example.com/v1/envelopes", response.Links.Envelopes)
	assert.Equal(suite.T(), "http://example.com/v1/export", response.Links.Export)
	assert.Equal(suite.T(), "http://example.com/v1/purchases", response.Links.Purchases)
	assert.Equal(suite.T(), "http://example.com/v1/shuffles", response.Links.Shuffles)
}

// TestV1Options verifies the allowed verbs of the v1 root.
func (suite *TestSuiteStandard) TestV1Options() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, DELETE", r.Header().Get("allow"))
}

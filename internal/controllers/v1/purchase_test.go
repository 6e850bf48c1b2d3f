package v1_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/pacekeeper/backend/internal/controllers/v1"
	"github.com/pacekeeper/backend/internal/models"
	"github.com/pacekeeper/backend/internal/types"
	"github.com/pacekeeper/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestPurchase appends a purchase directly to the log. The API only
// commits purchases through the simulation endpoints, which is too much
// ceremony for list and filter tests.
func createTestPurchase(t *testing.T, envelopeID uuid.UUID, amount int64, item string, date types.Date) models.Purchase {
	purchase := models.Purchase{
		EnvelopeID: envelopeID,
		Amount:     decimal.NewFromInt(amount),
		Item:       item,
		Date:       date,
	}

	if err := models.DB.Create(&purchase).Error; err != nil {
		t.Fatalf("Creating purchase failed with: %#v", err)
	}

	return purchase
}

// TestPurchasesAppendOnly verifies that the purchase log has no write
// verbs of its own.
func (suite *TestSuiteStandard) TestPurchasesAppendOnly() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/purchases", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/purchases", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound, http.StatusMethodNotAllowed)
}

// TestPurchasesGetFiltered verifies the purchase list filters.
func (suite *TestSuiteStandard) TestPurchasesGetFiltered() {
	first := createTestEnvelope(suite.T(), v1.EnvelopeEditable{}).Data.ID
	second := createTestEnvelope(suite.T(), v1.EnvelopeEditable{}).Data.ID

	_ = createTestPurchase(suite.T(), first, 50, "Cheese", types.Today())
	_ = createTestPurchase(suite.T(), first, 20, "Bread", types.Today().AddDays(-1))
	_ = createTestPurchase(suite.T(), second, 100, "Cinema", types.Today())

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"By envelope", "envelope=" + first.String(), 2},
		{"By item", "item=Cheese", 1},
		{"By date", "date=" + types.Today().AddDays(-1).String(), 1},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/purchases?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.PurchaseListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

// TestPurchasesOrdering verifies that the log is ordered by date.
func (suite *TestSuiteStandard) TestPurchasesOrdering() {
	envelopeID := createTestEnvelope(suite.T(), v1.EnvelopeEditable{}).Data.ID

	_ = createTestPurchase(suite.T(), envelopeID, 50, "Later", types.Today())
	_ = createTestPurchase(suite.T(), envelopeID, 20, "Earlier", types.Today().AddDays(-3))

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/purchases", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PurchaseListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Earlier", response.Data[0].Item)
	assert.Equal(suite.T(), "Later", response.Data[1].Item)
}

// TestPurchasesGetSingle verifies fetching one purchase.
func (suite *TestSuiteStandard) TestPurchasesGetSingle() {
	envelopeID := createTestEnvelope(suite.T(), v1.EnvelopeEditable{}).Data.ID
	purchase := createTestPurchase(suite.T(), envelopeID, 50, "Cheese", types.Today())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/purchases/"+purchase.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PurchaseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Cheese", response.Data.Item)
	assert.Contains(suite.T(), response.Data.Links.Envelope, envelopeID.String())

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/purchases/"+uuid.New().String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

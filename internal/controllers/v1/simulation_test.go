package v1_test

import (
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/pacekeeper/backend/internal/controllers/v1"
	"github.com/pacekeeper/backend/internal/pace"
	"github.com/pacekeeper/backend/internal/types"
	"github.com/pacekeeper/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simulationURL(budgetID uuid.UUID) string {
	return "http://example.com/v1/budgets/" + budgetID.String() + "/simulation"
}

// TestSimulationLifecycle verifies the simulate, inspect, confirm flow.
func (suite *TestSuiteStandard) TestSimulationLifecycle() {
	budgetID := createTestBudget(suite.T(), v1.BudgetEditable{}).Data.ID
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		BudgetID:     budgetID,
		Allocation:   decimal.NewFromInt(420),
		StartDate:    types.Today().AddDays(-13),
		PeriodLength: 14,
	})
	patchTestEnvelope(suite.T(), envelope.Data.ID, map[string]any{"spent": decimal.NewFromInt(200)})

	// Nothing is pending yet
	r := test.Request(suite.T(), http.MethodGet, simulationURL(budgetID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SimulationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Nil(suite.T(), response.Data)

	// Simulating classifies without committing
	r = test.Request(suite.T(), http.MethodPost, simulationURL(budgetID), v1.SimulationEditable{
		EnvelopeID: envelope.Data.ID,
		Amount:     decimal.NewFromInt(50),
		Item:       "Fancy cheese",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), pace.StatusSuperSafe, response.Data.Result.Status)

	var check v1.EnvelopeResponse
	rs := test.Request(suite.T(), http.MethodGet, envelope.Data.Links.Self, "")
	test.DecodeResponse(suite.T(), &rs, &check)
	assert.True(suite.T(), check.Data.Spent.Equal(decimal.NewFromInt(200)))

	// The pending simulation can be read back
	r = test.Request(suite.T(), http.MethodGet, simulationURL(budgetID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Fancy cheese", response.Data.Item)

	// Confirming appends to the purchase log and grows spent
	r = test.Request(suite.T(), http.MethodPost, simulationURL(budgetID)+"/confirm", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var purchase v1.PurchaseResponse
	test.DecodeResponse(suite.T(), &r, &purchase)
	require.NotNil(suite.T(), purchase.Data)
	assert.Equal(suite.T(), "Fancy cheese", purchase.Data.Item)

	rs = test.Request(suite.T(), http.MethodGet, envelope.Data.Links.Self, "")
	test.DecodeResponse(suite.T(), &rs, &check)
	assert.True(suite.T(), check.Data.Spent.Equal(decimal.NewFromInt(250)))

	// The session is idle again
	r = test.Request(suite.T(), http.MethodGet, simulationURL(budgetID), "")
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Nil(suite.T(), response.Data)
}

// TestSimulationOnlyOnePending verifies that a second simulation is
// rejected while one is pending.
func (suite *TestSuiteStandard) TestSimulationOnlyOnePending() {
	budgetID := createTestBudget(suite.T(), v1.BudgetEditable{}).Data.ID
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{BudgetID: budgetID})

	r := test.Request(suite.T(), http.MethodPost, simulationURL(budgetID), v1.SimulationEditable{
		EnvelopeID: envelope.Data.ID,
		Amount:     decimal.NewFromInt(10),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodPost, simulationURL(budgetID), v1.SimulationEditable{
		EnvelopeID: envelope.Data.ID,
		Amount:     decimal.NewFromInt(20),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	var response v1.SimulationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), *response.Error, pace.ErrSimulationPending.Error())
}

// TestSimulationCancel verifies that cancelling discards the pending
// purchase and is idempotent.
func (suite *TestSuiteStandard) TestSimulationCancel() {
	budgetID := createTestBudget(suite.T(), v1.BudgetEditable{}).Data.ID
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{BudgetID: budgetID})

	r := test.Request(suite.T(), http.MethodPost, simulationURL(budgetID), v1.SimulationEditable{
		EnvelopeID: envelope.Data.ID,
		Amount:     decimal.NewFromInt(10),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodDelete, simulationURL(budgetID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Cancelling an idle session is not an error
	r = test.Request(suite.T(), http.MethodDelete, simulationURL(budgetID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Nothing was committed
	var list v1.PurchaseListResponse
	rs := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/purchases", "")
	test.DecodeResponse(suite.T(), &rs, &list)
	assert.Len(suite.T(), list.Data, 0)
}

// TestSimulationConfirmNothingPending verifies the error for confirming
// an idle session.
func (suite *TestSuiteStandard) TestSimulationConfirmNothingPending() {
	budgetID := createTestBudget(suite.T(), v1.BudgetEditable{}).Data.ID

	r := test.Request(suite.T(), http.MethodPost, simulationURL(budgetID)+"/confirm", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.PurchaseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), *response.Error, pace.ErrNothingPending.Error())
}

// TestSimulationInvalidPurchase verifies rejection of purchases with
// amounts that are not positive.
func (suite *TestSuiteStandard) TestSimulationInvalidPurchase() {
	budgetID := createTestBudget(suite.T(), v1.BudgetEditable{}).Data.ID
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{BudgetID: budgetID})

	r := test.Request(suite.T(), http.MethodPost, simulationURL(budgetID), v1.SimulationEditable{
		EnvelopeID: envelope.Data.ID,
		Amount:     decimal.Zero,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.SimulationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), *response.Error, pace.ErrInvalidPurchase.Error())
}

// TestSimulationEmptyEnvelope verifies the envelope-empty classification
// for a purchase against a fully spent envelope.
func (suite *TestSuiteStandard) TestSimulationEmptyEnvelope() {
	budgetID := createTestBudget(suite.T(), v1.BudgetEditable{}).Data.ID
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		BudgetID:   budgetID,
		Allocation: decimal.NewFromInt(100),
	})
	patchTestEnvelope(suite.T(), envelope.Data.ID, map[string]any{"spent": decimal.NewFromInt(100)})

	r := test.Request(suite.T(), http.MethodPost, simulationURL(budgetID), v1.SimulationEditable{
		EnvelopeID: envelope.Data.ID,
		Amount:     decimal.NewFromInt(1),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.SimulationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), pace.StatusEnvelopeEmpty, response.Data.Result.Status)
}

package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/pacekeeper/backend/internal/controllers/v1"
	"github.com/pacekeeper/backend/internal/pace"
	"github.com/pacekeeper/backend/internal/types"
	"github.com/pacekeeper/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// planURL returns the plan endpoint for a period of the budget.
func planURL(budgetID, periodID string) string {
	return "http://example.com/v1/budgets/" + budgetID + "/plans/" + periodID
}

// TestPlansTemplate verifies that reading an unplanned period returns a
// template built from the budget's envelopes without persisting it.
func (suite *TestSuiteStandard) TestPlansTemplate() {
	budgetID := createTestBudget(suite.T(), v1.BudgetEditable{}).Data.ID
	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		BudgetID:   budgetID,
		Name:       "Groceries",
		Allocation: decimal.NewFromInt(420),
	})

	periodID := pace.PeriodID(types.Today().AddDays(14), 14)

	r := test.Request(suite.T(), http.MethodGet, planURL(budgetID.String(), periodID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PlanResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.False(suite.T(), response.Data.Stored)
	require.Len(suite.T(), response.Data.Envelopes, 1)
	assert.Equal(suite.T(), "Groceries", response.Data.Envelopes[0].Name)

	// Reading the template does not store anything
	r = test.Request(suite.T(), http.MethodGet, planURL(budgetID.String(), periodID), "")
	test.DecodeResponse(suite.T(), &r, &response)
	assert.False(suite.T(), response.Data.Stored)
}

// TestPlansSaveAndDelete verifies the plan lifecycle.
func (suite *TestSuiteStandard) TestPlansSaveAndDelete() {
	budgetID := createTestBudget(suite.T(), v1.BudgetEditable{}).Data.ID
	periodID := pace.PeriodID(types.Today().AddDays(14), 14)

	plan := v1.PlanEditable{
		Envelopes: []v1.PlannedEnvelopeEditable{
			{Name: "Groceries", Allocation: decimal.NewFromInt(450), PeriodLength: 14},
			{Name: "Fun", Allocation: decimal.NewFromInt(80), PeriodLength: 14},
		},
	}

	r := test.Request(suite.T(), http.MethodPut, planURL(budgetID.String(), periodID), plan)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PlanResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Stored)
	require.Len(suite.T(), response.Data.Envelopes, 2)

	// Saving again replaces the whole plan
	plan.Envelopes = plan.Envelopes[:1]
	r = test.Request(suite.T(), http.MethodPut, planURL(budgetID.String(), periodID), plan)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data.Envelopes, 1)

	r = test.Request(suite.T(), http.MethodDelete, planURL(budgetID.String(), periodID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Deleting a plan that does not exist is an error
	r = test.Request(suite.T(), http.MethodDelete, planURL(budgetID.String(), periodID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestPlansCurrentPeriodGuard verifies that the active period cannot be
// planned or deleted.
func (suite *TestSuiteStandard) TestPlansCurrentPeriodGuard() {
	budgetID := createTestBudget(suite.T(), v1.BudgetEditable{}).Data.ID
	_ = createTestPreferences(suite.T(), budgetID, v1.PreferencesEditable{})

	currentID := pace.PeriodID(types.Today(), 14)

	plan := v1.PlanEditable{
		Envelopes: []v1.PlannedEnvelopeEditable{
			{Name: "Groceries", Allocation: decimal.NewFromInt(450), PeriodLength: 14},
		},
	}

	r := test.Request(suite.T(), http.MethodPut, planURL(budgetID.String(), currentID), plan)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
}

// TestPlansValidation verifies rejection of invalid plan entries.
func (suite *TestSuiteStandard) TestPlansValidation() {
	budgetID := createTestBudget(suite.T(), v1.BudgetEditable{}).Data.ID
	periodID := pace.PeriodID(types.Today().AddDays(14), 14)

	tests := []struct {
		name string
		plan v1.PlanEditable
	}{
		{"Empty name", v1.PlanEditable{Envelopes: []v1.PlannedEnvelopeEditable{
			{Name: "  ", Allocation: decimal.NewFromInt(450), PeriodLength: 14},
		}}},
		{"Zero allocation", v1.PlanEditable{Envelopes: []v1.PlannedEnvelopeEditable{
			{Name: "Groceries", PeriodLength: 14},
		}}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPut, planURL(budgetID.String(), periodID), tt.plan)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestPlansFlagPeriods verifies that stored plans show up in the period
// calendar.
func (suite *TestSuiteStandard) TestPlansFlagPeriods() {
	budgetID := createTestBudget(suite.T(), v1.BudgetEditable{}).Data.ID
	_ = createTestPreferences(suite.T(), budgetID, v1.PreferencesEditable{})

	nextID := pace.PeriodID(types.Today().AddDays(14), 14)
	plan := v1.PlanEditable{
		Envelopes: []v1.PlannedEnvelopeEditable{
			{Name: "Groceries", Allocation: decimal.NewFromInt(450), PeriodLength: 14},
		},
	}
	r := test.Request(suite.T(), http.MethodPut, planURL(budgetID.String(), nextID), plan)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/"+budgetID.String()+"/periods", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PeriodListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 3)
	assert.False(suite.T(), response.Data[0].Planned)
	assert.True(suite.T(), response.Data[1].Planned)
	assert.False(suite.T(), response.Data[2].Planned)
}

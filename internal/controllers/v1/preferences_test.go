package v1_test

import (
	"net/http"

	v1 "github.com/pacekeeper/backend/internal/controllers/v1"
	"github.com/pacekeeper/backend/internal/models"
	"github.com/pacekeeper/backend/internal/types"
	"github.com/pacekeeper/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPreferencesLifecycle verifies creating, reading and replacing the
// paycheck preferences of a budget.
func (suite *TestSuiteStandard) TestPreferencesLifecycle() {
	budgetID := createTestBudget(suite.T(), v1.BudgetEditable{}).Data.ID

	// Nothing is configured yet
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/"+budgetID.String()+"/preferences", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	created := createTestPreferences(suite.T(), budgetID, v1.PreferencesEditable{
		Frequency:      models.FrequencyBiweekly,
		NextPayday:     types.Today().AddDays(3),
		PaycheckAmount: decimal.NewFromInt(2000),
	})
	require.NotNil(suite.T(), created.Data)
	assert.Equal(suite.T(), models.FrequencyBiweekly, created.Data.Frequency)

	// Replacing keeps the resource ID
	replaced := createTestPreferences(suite.T(), budgetID, v1.PreferencesEditable{
		Frequency:  models.FrequencyMonthly,
		NextPayday: types.Today().AddDays(3),
	})
	require.NotNil(suite.T(), replaced.Data)
	assert.Equal(suite.T(), created.Data.ID, replaced.Data.ID)
	assert.Equal(suite.T(), models.FrequencyMonthly, replaced.Data.Frequency)

	var response v1.PreferencesResponse
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/"+budgetID.String()+"/preferences", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.FrequencyMonthly, response.Data.Frequency)
}

// TestPreferencesInvalidFrequency verifies rejection of unknown paycheck
// frequencies.
func (suite *TestSuiteStandard) TestPreferencesInvalidFrequency() {
	budgetID := createTestBudget(suite.T(), v1.BudgetEditable{}).Data.ID

	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/budgets/"+budgetID.String()+"/preferences", v1.PreferencesEditable{
		Frequency:  "yearly",
		NextPayday: types.Today(),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.PreferencesResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), *response.Error, models.ErrPaycheckFrequencyInvalid.Error())
}

// TestPreferencesSemiMonthly verifies the semimonthly day validation and
// day ordering.
func (suite *TestSuiteStandard) TestPreferencesSemiMonthly() {
	budgetID := createTestBudget(suite.T(), v1.BudgetEditable{}).Data.ID

	// The days are sorted on save
	response := createTestPreferences(suite.T(), budgetID, v1.PreferencesEditable{
		Frequency:            models.FrequencySemiMonthly,
		NextPayday:           types.Today(),
		SemiMonthlyFirstDay:  15,
		SemiMonthlySecondDay: 1,
	})
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), 1, response.Data.SemiMonthlyFirstDay)
	assert.Equal(suite.T(), 15, response.Data.SemiMonthlySecondDay)

	// Identical days are rejected
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/budgets/"+budgetID.String()+"/preferences", v1.PreferencesEditable{
		Frequency:            models.FrequencySemiMonthly,
		NextPayday:           types.Today(),
		SemiMonthlyFirstDay:  15,
		SemiMonthlySecondDay: 15,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

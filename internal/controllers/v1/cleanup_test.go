package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/pacekeeper/backend/internal/controllers/v1"
	"github.com/pacekeeper/backend/internal/models"
	"github.com/pacekeeper/backend/internal/pace"
	"github.com/pacekeeper/backend/internal/types"
	"github.com/pacekeeper/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestCleanup verifies that the cleanup endpoint deletes everything.
func (suite *TestSuiteStandard) TestCleanup() {
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{})
	budgetID := envelope.Data.BudgetID
	_ = createTestPreferences(suite.T(), budgetID, v1.PreferencesEditable{})
	_ = createTestPurchase(suite.T(), envelope.Data.ID, 50, "Cheese", types.Today())

	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/budgets/"+budgetID.String()+"/plans/"+pace.PeriodID(types.Today().AddDays(14), 14), v1.PlanEditable{
		Envelopes: []v1.PlannedEnvelopeEditable{
			{Name: "Groceries", Allocation: decimal.NewFromInt(450), PeriodLength: 14},
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Verify that all resources are deleted
	for name, model := range map[string]any{
		"budgets":           &models.Budget{},
		"envelopes":         &models.Envelope{},
		"preferences":       &models.PaycheckPreferences{},
		"period plans":      &models.PeriodPlan{},
		"planned envelopes": &models.PlannedEnvelope{},
		"purchases":         &models.Purchase{},
	} {
		suite.T().Run(name, func(t *testing.T) {
			var count int64
			err := models.DB.Model(model).Count(&count).Error
			assert.Nil(t, err)
			assert.Equal(t, int64(0), count)
		})
	}
}

// TestCleanupConfirmation verifies that the confirmation parameter is
// required.
func (suite *TestSuiteStandard) TestCleanupConfirmation() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})

	for _, query := range []string{"", "?confirm=yes"} {
		r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1"+query, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}

	// Nothing was deleted
	r := test.Request(suite.T(), http.MethodGet, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

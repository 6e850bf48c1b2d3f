package models_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pacekeeper/backend/internal/models"
	"github.com/pacekeeper/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestEnvelopeTrimWhitespace() {
	budget := suite.createTestBudget(models.Budget{})

	envelope := suite.createTestEnvelope(models.Envelope{
		BudgetID: budget.ID,
		Name:     " Groceries ",
		Note:     "Everything edible\t",
	})

	assert.Equal(suite.T(), "Groceries", envelope.Name)
	assert.Equal(suite.T(), "Everything edible", envelope.Note)
}

func (suite *TestSuiteStandard) TestEnvelopeValidation() {
	budget := suite.createTestBudget(models.Budget{})

	tests := []struct {
		name     string
		envelope models.Envelope
		err      error
	}{
		{"empty name", models.Envelope{
			BudgetID:     budget.ID,
			Name:         " ",
			Allocation:   decimal.NewFromInt(100),
			PeriodLength: 14,
		}, models.ErrEnvelopeNameEmpty},
		{"zero allocation", models.Envelope{
			BudgetID:     budget.ID,
			Name:         "Zero allocation",
			PeriodLength: 14,
		}, models.ErrAllocationNotPositive},
		{"negative allocation", models.Envelope{
			BudgetID:     budget.ID,
			Name:         "Negative allocation",
			Allocation:   decimal.NewFromInt(-100),
			PeriodLength: 14,
		}, models.ErrAllocationNotPositive},
		{"negative spent", models.Envelope{
			BudgetID:     budget.ID,
			Name:         "Negative spent",
			Allocation:   decimal.NewFromInt(100),
			Spent:        decimal.NewFromInt(-1),
			PeriodLength: 14,
		}, models.ErrSpentNegative},
		{"period too short", models.Envelope{
			BudgetID:   budget.ID,
			Name:       "No period",
			Allocation: decimal.NewFromInt(100),
		}, models.ErrPeriodLengthOutOfRange},
		{"period too long", models.Envelope{
			BudgetID:     budget.ID,
			Name:         "Long period",
			Allocation:   decimal.NewFromInt(100),
			PeriodLength: 32,
		}, models.ErrPeriodLengthOutOfRange},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.envelope).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestEnvelopeNameUniquePerBudget() {
	first := suite.createTestBudget(models.Budget{})
	second := suite.createTestBudget(models.Budget{})

	_ = suite.createTestEnvelope(models.Envelope{BudgetID: first.ID, Name: "Groceries"})

	// The same name in another budget is fine
	_ = suite.createTestEnvelope(models.Envelope{BudgetID: second.ID, Name: "Groceries"})

	err := models.DB.Create(&models.Envelope{
		BudgetID:     first.ID,
		Name:         "Groceries",
		Allocation:   decimal.NewFromInt(50),
		PeriodLength: 7,
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrEnvelopeNameNotUnique)
}

func (suite *TestSuiteStandard) TestEnvelopeUnknownBudget() {
	err := models.DB.Create(&models.Envelope{
		BudgetID:     uuid.New(),
		Name:         "Orphan",
		Allocation:   decimal.NewFromInt(100),
		PeriodLength: 14,
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestEnvelopeOverspentIsLegal() {
	budget := suite.createTestBudget(models.Budget{})

	envelope := suite.createTestEnvelope(models.Envelope{
		BudgetID:   budget.ID,
		Allocation: decimal.NewFromInt(100),
		Spent:      decimal.NewFromInt(150),
	})

	assert.True(suite.T(), envelope.Remaining().Equal(decimal.NewFromInt(-50)))
}

func (suite *TestSuiteStandard) TestEnvelopePeriodEnd() {
	budget := suite.createTestBudget(models.Budget{})

	envelope := suite.createTestEnvelope(models.Envelope{
		BudgetID:     budget.ID,
		StartDate:    types.NewDate(2026, time.August, 21),
		PeriodLength: 14,
	})

	assert.True(suite.T(), envelope.PeriodEnd().Equal(types.NewDate(2026, time.September, 3)))
}

func (suite *TestSuiteStandard) TestEnvelopePurchasesOrdered() {
	budget := suite.createTestBudget(models.Budget{})
	envelope := suite.createTestEnvelope(models.Envelope{BudgetID: budget.ID})

	_ = suite.createTestPurchase(models.Purchase{
		EnvelopeID: envelope.ID,
		Amount:     decimal.NewFromInt(20),
		Date:       types.NewDate(2026, time.August, 25),
	})
	_ = suite.createTestPurchase(models.Purchase{
		EnvelopeID: envelope.ID,
		Amount:     decimal.NewFromInt(10),
		Date:       types.NewDate(2026, time.August, 20),
	})

	purchases, err := envelope.Purchases(models.DB)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), purchases, 2)
	assert.True(suite.T(), purchases[0].Amount.Equal(decimal.NewFromInt(10)))
	assert.True(suite.T(), purchases[1].Amount.Equal(decimal.NewFromInt(20)))
}

package models_test

import (
	"github.com/pacekeeper/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestPlanSaveAndGet() {
	store := models.PeriodPlanStore{DB: models.DB}

	saved, err := store.Save("2026-09-04-14d", []models.PlannedEnvelope{
		{Name: "Groceries", Allocation: decimal.NewFromInt(420), PeriodLength: 14},
		{Name: "Dining out", Allocation: decimal.NewFromInt(150), PeriodLength: 14},
	})
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "2026-09-04-14d", saved.PeriodID)

	plan, err := store.Get("2026-09-04-14d")
	require.Nil(suite.T(), err)
	require.Len(suite.T(), plan.Envelopes, 2)
	assert.Equal(suite.T(), "Groceries", plan.Envelopes[0].Name)
	assert.Equal(suite.T(), 0, plan.Envelopes[0].Position)
	assert.Equal(suite.T(), "Dining out", plan.Envelopes[1].Name)
	assert.Equal(suite.T(), 1, plan.Envelopes[1].Position)

	exists, err := store.Exists("2026-09-04-14d")
	require.Nil(suite.T(), err)
	assert.True(suite.T(), exists)

	exists, err = store.Exists("2026-09-18-14d")
	require.Nil(suite.T(), err)
	assert.False(suite.T(), exists)
}

func (suite *TestSuiteStandard) TestPlanLastWriterWins() {
	store := models.PeriodPlanStore{DB: models.DB}

	_, err := store.Save("2026-09-04-14d", []models.PlannedEnvelope{
		{Name: "Groceries", Allocation: decimal.NewFromInt(420), PeriodLength: 14},
		{Name: "Dining out", Allocation: decimal.NewFromInt(150), PeriodLength: 14},
	})
	require.Nil(suite.T(), err)

	_, err = store.Save("2026-09-04-14d", []models.PlannedEnvelope{
		{Name: "Groceries", Allocation: decimal.NewFromInt(300), PeriodLength: 14},
	})
	require.Nil(suite.T(), err)

	plan, err := store.Get("2026-09-04-14d")
	require.Nil(suite.T(), err)
	require.Len(suite.T(), plan.Envelopes, 1)
	assert.True(suite.T(), plan.Envelopes[0].Allocation.Equal(decimal.NewFromInt(300)))
}

func (suite *TestSuiteStandard) TestPlanValidatesBeforePersisting() {
	store := models.PeriodPlanStore{DB: models.DB}

	_, err := store.Save("2026-09-04-14d", []models.PlannedEnvelope{
		{Name: "Groceries", Allocation: decimal.NewFromInt(420), PeriodLength: 14},
	})
	require.Nil(suite.T(), err)

	// An invalid entry anywhere rejects the whole plan and leaves the
	// stored one untouched
	tests := []struct {
		name      string
		envelopes []models.PlannedEnvelope
	}{
		{"empty name", []models.PlannedEnvelope{
			{Name: "Valid", Allocation: decimal.NewFromInt(10), PeriodLength: 14},
			{Name: "  ", Allocation: decimal.NewFromInt(10), PeriodLength: 14},
		}},
		{"zero allocation", []models.PlannedEnvelope{
			{Name: "Zero", Allocation: decimal.Zero, PeriodLength: 14},
		}},
		{"negative allocation", []models.PlannedEnvelope{
			{Name: "Negative", Allocation: decimal.NewFromInt(-10), PeriodLength: 14},
		}},
	}

	for _, tt := range tests {
		_, err := store.Save("2026-09-04-14d", tt.envelopes)
		assert.ErrorIs(suite.T(), err, models.ErrPlanEntryInvalid, tt.name)
	}

	plan, err := store.Get("2026-09-04-14d")
	require.Nil(suite.T(), err)
	require.Len(suite.T(), plan.Envelopes, 1)
	assert.Equal(suite.T(), "Groceries", plan.Envelopes[0].Name)
}

func (suite *TestSuiteStandard) TestPlanEmptyPeriodID() {
	store := models.PeriodPlanStore{DB: models.DB}

	_, err := store.Save("", []models.PlannedEnvelope{
		{Name: "Groceries", Allocation: decimal.NewFromInt(10), PeriodLength: 14},
	})
	assert.ErrorIs(suite.T(), err, models.ErrPlanPeriodIDEmpty)
}

func (suite *TestSuiteStandard) TestPlanCurrentPeriodGuard() {
	store := models.PeriodPlanStore{DB: models.DB, CurrentPeriodID: "2026-08-21-14d"}

	_, err := store.Save("2026-08-21-14d", []models.PlannedEnvelope{
		{Name: "Groceries", Allocation: decimal.NewFromInt(10), PeriodLength: 14},
	})
	assert.ErrorIs(suite.T(), err, models.ErrCannotModifyCurrentPeriod)

	err = store.Delete("2026-08-21-14d")
	assert.ErrorIs(suite.T(), err, models.ErrCannotModifyCurrentPeriod)
}

func (suite *TestSuiteStandard) TestPlanDelete() {
	store := models.PeriodPlanStore{DB: models.DB}

	_, err := store.Save("2026-09-04-14d", []models.PlannedEnvelope{
		{Name: "Groceries", Allocation: decimal.NewFromInt(10), PeriodLength: 14},
	})
	require.Nil(suite.T(), err)

	require.Nil(suite.T(), store.Delete("2026-09-04-14d"))

	_, err = store.Get("2026-09-04-14d")
	assert.True(suite.T(), models.IsNotFound(err))

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.PlannedEnvelope{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count, "deleting a plan must remove its entries")

	// Deleting a missing plan reports not found
	err = store.Delete("2026-09-04-14d")
	assert.True(suite.T(), models.IsNotFound(err))
}

func (suite *TestSuiteStandard) TestPlanTemplate() {
	budget := suite.createTestBudget(models.Budget{})

	_ = suite.createTestEnvelope(models.Envelope{
		BudgetID:   budget.ID,
		Name:       "Groceries",
		Allocation: decimal.NewFromInt(420),
	})
	_ = suite.createTestEnvelope(models.Envelope{
		BudgetID:   budget.ID,
		Name:       "Dining out",
		Allocation: decimal.NewFromInt(150),
	})
	_ = suite.createTestEnvelope(models.Envelope{
		BudgetID: budget.ID,
		Name:     "Old hobby",
		Archived: true,
	})

	store := models.PeriodPlanStore{DB: models.DB}
	entries, err := store.Template(budget.ID)
	require.Nil(suite.T(), err)

	// Archived envelopes are not part of the template
	require.Len(suite.T(), entries, 2)
	assert.Equal(suite.T(), "Dining out", entries[0].Name)
	assert.Equal(suite.T(), "Groceries", entries[1].Name)

	// The template is a suggestion, nothing is stored
	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.PeriodPlan{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)
}

package models_test

import (
	"github.com/google/uuid"
	"github.com/pacekeeper/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSetShuffleLimit() {
	budget := suite.createTestBudget(models.Budget{})
	envelope := suite.createTestEnvelope(models.Envelope{BudgetID: budget.ID})

	limit, err := models.SetShuffleLimit(models.DB, envelope.ID, decimal.NewFromInt(100))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), limit.Limited)
	assert.True(suite.T(), limit.MaxAmount.Equal(decimal.NewFromInt(100)))
	assert.True(suite.T(), limit.CurrentShuffled.IsZero())

	// Updating only changes the ceiling
	limit, err = models.SetShuffleLimit(models.DB, envelope.ID, decimal.NewFromInt(50))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), limit.MaxAmount.Equal(decimal.NewFromInt(50)))
}

func (suite *TestSuiteStandard) TestSetShuffleLimitNegative() {
	budget := suite.createTestBudget(models.Budget{})
	envelope := suite.createTestEnvelope(models.Envelope{BudgetID: budget.ID})

	_, err := models.SetShuffleLimit(models.DB, envelope.ID, decimal.NewFromInt(-1))
	assert.ErrorIs(suite.T(), err, models.ErrShuffleLimitNegative)
}

func (suite *TestSuiteStandard) TestSetShuffleLimitUnknownEnvelope() {
	_, err := models.SetShuffleLimit(models.DB, uuid.New(), decimal.NewFromInt(10))
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

// Lowering the ceiling below the current usage blocks further shuffles
// but never touches the usage itself.
func (suite *TestSuiteStandard) TestLowerLimitBelowUsage() {
	target, sourceA, _ := suite.shuffleFixture()

	_, err := models.ApplyShuffle(models.DB, models.ShuffleTransaction{
		TargetEnvelopeID: target.ID,
		Allocations: []models.ShuffleAllocation{
			{SourceEnvelopeID: sourceA.ID, Amount: decimal.NewFromInt(80)},
		},
	})
	require.Nil(suite.T(), err)

	limit, err := models.SetShuffleLimit(models.DB, target.ID, decimal.NewFromInt(50))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), limit.CurrentShuffled.Equal(decimal.NewFromInt(80)))

	_, err = models.ApplyShuffle(models.DB, models.ShuffleTransaction{
		TargetEnvelopeID: target.ID,
		Allocations: []models.ShuffleAllocation{
			{SourceEnvelopeID: sourceA.ID, Amount: decimal.NewFromInt(1)},
		},
	})
	assert.ErrorIs(suite.T(), err, models.ErrShuffleLimitExceeded)
}

func (suite *TestSuiteStandard) TestResetShuffleUsage() {
	target, sourceA, _ := suite.shuffleFixture()

	_, err := models.SetShuffleLimit(models.DB, target.ID, decimal.NewFromInt(100))
	require.Nil(suite.T(), err)

	_, err = models.ApplyShuffle(models.DB, models.ShuffleTransaction{
		TargetEnvelopeID: target.ID,
		Allocations: []models.ShuffleAllocation{
			{SourceEnvelopeID: sourceA.ID, Amount: decimal.NewFromInt(60)},
		},
	})
	require.Nil(suite.T(), err)

	var reloaded models.Envelope
	require.Nil(suite.T(), models.DB.First(&reloaded, target.ID).Error)

	require.Nil(suite.T(), models.ResetShuffleUsage(models.DB, reloaded.BudgetID))

	var limit models.ShuffleLimit
	require.Nil(suite.T(), models.DB.First(&limit, &models.ShuffleLimit{EnvelopeID: target.ID}).Error)
	assert.True(suite.T(), limit.CurrentShuffled.IsZero())

	// The ceiling survives the reset
	assert.True(suite.T(), limit.Limited)
	assert.True(suite.T(), limit.MaxAmount.Equal(decimal.NewFromInt(100)))
}

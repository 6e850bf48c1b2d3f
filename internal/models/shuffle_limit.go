package models

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ShuffleLimit is the per-envelope ceiling on money shuffled into the
// envelope during the active period.
//
// CurrentShuffled is the running usage and resets to zero at period
// rollover. An envelope without a configured limit (Limited = false)
// accepts shuffles of any size, but usage is still tracked.
type ShuffleLimit struct {
	Timestamps
	EnvelopeID      uuid.UUID       `gorm:"primaryKey"`
	MaxAmount       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CurrentShuffled decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Limited         bool
}

// SetShuffleLimit updates the ceiling for an envelope. It only changes
// the ceiling, the running usage is untouched.
func SetShuffleLimit(db *gorm.DB, envelopeID uuid.UUID, maxAmount decimal.Decimal) (ShuffleLimit, error) {
	if maxAmount.IsNegative() {
		return ShuffleLimit{}, ErrShuffleLimitNegative
	}

	if err := db.First(&Envelope{}, envelopeID).Error; err != nil {
		return ShuffleLimit{}, err
	}

	limit, err := shuffleLimitFor(db, envelopeID)
	if err != nil {
		return ShuffleLimit{}, err
	}

	limit.MaxAmount = maxAmount
	limit.Limited = true

	if err := db.Save(&limit).Error; err != nil {
		return ShuffleLimit{}, err
	}

	return limit, nil
}

// GetShuffleLimit returns the limit row for an envelope. Envelopes
// without a configured limit get a fresh unlimited row.
func GetShuffleLimit(db *gorm.DB, envelopeID uuid.UUID) (ShuffleLimit, error) {
	if err := db.First(&Envelope{}, envelopeID).Error; err != nil {
		return ShuffleLimit{}, err
	}

	return shuffleLimitFor(db, envelopeID)
}

// shuffleLimitFor loads the limit row for an envelope, returning a
// fresh unlimited row if none exists yet.
func shuffleLimitFor(db *gorm.DB, envelopeID uuid.UUID) (ShuffleLimit, error) {
	var limit ShuffleLimit
	err := db.First(&limit, &ShuffleLimit{EnvelopeID: envelopeID}).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			return ShuffleLimit{
				EnvelopeID:      envelopeID,
				MaxAmount:       decimal.Zero,
				CurrentShuffled: decimal.Zero,
			}, nil
		}
		return ShuffleLimit{}, err
	}

	return limit, nil
}

// ResetShuffleUsage zeroes the running usage for every envelope of the
// budget. It is called exactly once per period rollover, never
// implicitly.
func ResetShuffleUsage(db *gorm.DB, budgetID uuid.UUID) error {
	return db.Model(&ShuffleLimit{}).
		Where("envelope_id IN (?)", db.Model(&Envelope{}).Select("id").Where(&Envelope{BudgetID: budgetID})).
		Update("current_shuffled", decimal.Zero).Error
}

// Returns all shuffle limits on this instance for export
func (ShuffleLimit) Export() (json.RawMessage, error) {
	var limits []ShuffleLimit
	err := DB.Unscoped().Where(&ShuffleLimit{}).Find(&limits).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&limits)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}

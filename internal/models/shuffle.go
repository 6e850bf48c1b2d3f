package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pacekeeper/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ShuffleTransaction moves unspent allocation from one or more source
// envelopes into a target envelope within the active period.
//
// Like the purchase log, the shuffle log is append-only.
type ShuffleTransaction struct {
	DefaultModel
	TargetEnvelope   Envelope  `json:"-"`
	TargetEnvelopeID uuid.UUID
	Date             types.Date
	Allocations      []ShuffleAllocation `gorm:"foreignKey:ShuffleTransactionID"`
}

// ShuffleAllocation is a single source contribution of a shuffle.
type ShuffleAllocation struct {
	DefaultModel
	ShuffleTransactionID uuid.UUID
	SourceEnvelope       Envelope  `json:"-"`
	SourceEnvelopeID     uuid.UUID
	Amount               decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Position             int             // order within the shuffle
}

func (s *ShuffleTransaction) BeforeSave(_ *gorm.DB) error {
	if s.Date.IsZero() {
		s.Date = types.Today()
	}

	return nil
}

// Total returns the sum of all source contributions.
func (s ShuffleTransaction) Total() decimal.Decimal {
	total := decimal.Zero
	for _, allocation := range s.Allocations {
		total = total.Add(allocation.Amount)
	}

	return total
}

// validate checks the shuffle transaction before anything is persisted.
func (s ShuffleTransaction) validate() error {
	if len(s.Allocations) == 0 {
		return ErrShuffleNoAllocations
	}

	for _, allocation := range s.Allocations {
		if !allocation.Amount.IsPositive() {
			return ErrShuffleAmountNotPositive
		}

		if allocation.SourceEnvelopeID == s.TargetEnvelopeID {
			return ErrShuffleSourceIsTarget
		}
	}

	return nil
}

// ApplyShuffle enforces the target envelope's shuffle limit and then
// moves the allocation amounts in a single database transaction: the
// limit usage update, the allocation transfer and the log append all
// happen or none of them do.
//
// A shuffle that would push the limit usage past the configured ceiling
// is rejected with ErrShuffleLimitExceeded and leaves the usage
// unchanged, it is never clamped.
func ApplyShuffle(db *gorm.DB, shuffle ShuffleTransaction) (ShuffleTransaction, error) {
	if err := shuffle.validate(); err != nil {
		return ShuffleTransaction{}, err
	}

	total := shuffle.Total()

	err := db.Transaction(func(tx *gorm.DB) error {
		var target Envelope
		if err := tx.First(&target, shuffle.TargetEnvelopeID).Error; err != nil {
			return err
		}

		limit, err := shuffleLimitFor(tx, target.ID)
		if err != nil {
			return err
		}

		if limit.Limited && limit.CurrentShuffled.Add(total).GreaterThan(limit.MaxAmount) {
			return ErrShuffleLimitExceeded
		}

		for i := range shuffle.Allocations {
			allocation := &shuffle.Allocations[i]
			allocation.Position = i

			var source Envelope
			if err := tx.First(&source, allocation.SourceEnvelopeID).Error; err != nil {
				return err
			}

			if source.Remaining().LessThan(allocation.Amount) {
				return ErrShuffleSourceInsufficient
			}

			err = tx.Model(&source).Update("Allocation", source.Allocation.Sub(allocation.Amount)).Error
			if err != nil {
				return err
			}
		}

		err = tx.Model(&target).Update("Allocation", target.Allocation.Add(total)).Error
		if err != nil {
			return err
		}

		limit.CurrentShuffled = limit.CurrentShuffled.Add(total)
		if err := tx.Save(&limit).Error; err != nil {
			return err
		}

		return tx.Create(&shuffle).Error
	})
	if err != nil {
		return ShuffleTransaction{}, err
	}

	return shuffle, nil
}

// Returns all shuffle transactions on this instance for export
func (ShuffleTransaction) Export() (json.RawMessage, error) {
	var shuffles []ShuffleTransaction
	err := DB.Unscoped().Preload("Allocations").Where(&ShuffleTransaction{}).Find(&shuffles).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&shuffles)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}

package models

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PeriodPlan holds the envelope allocations planned for a future,
// not-yet-active period. Plans are only ever created or replaced by an
// explicit save and removed by an explicit delete.
type PeriodPlan struct {
	Timestamps
	PeriodID  string            `gorm:"primaryKey"`
	Envelopes []PlannedEnvelope `gorm:"foreignKey:PeriodID"`
}

// PlannedEnvelope is a single entry of a period plan. Spent is
// implicitly zero, a plan only fixes names and allocations.
type PlannedEnvelope struct {
	DefaultModel
	PeriodID     string
	Name         string
	Allocation   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	PeriodLength int
	Position     int // order within the plan
}

// PeriodPlanStore is the keyed persistence for period plans.
//
// CurrentPeriodID guards against editing the active period through the
// store: current-period envelopes are mutated only through the live
// envelope aggregate.
type PeriodPlanStore struct {
	DB              *gorm.DB
	CurrentPeriodID string
}

// Save validates and then stores a plan, overwriting any existing plan
// for the period. Last writer wins.
func (s PeriodPlanStore) Save(periodID string, envelopes []PlannedEnvelope) (PeriodPlan, error) {
	if periodID == "" {
		return PeriodPlan{}, ErrPlanPeriodIDEmpty
	}

	if periodID == s.CurrentPeriodID {
		return PeriodPlan{}, ErrCannotModifyCurrentPeriod
	}

	// Validation happens before anything is persisted
	for i := range envelopes {
		envelopes[i].Name = strings.TrimSpace(envelopes[i].Name)

		if envelopes[i].Name == "" || !envelopes[i].Allocation.IsPositive() {
			return PeriodPlan{}, ErrPlanEntryInvalid
		}

		envelopes[i].PeriodID = periodID
		envelopes[i].Position = i
	}

	plan := PeriodPlan{PeriodID: periodID, Envelopes: envelopes}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Unscoped().Where(&PlannedEnvelope{PeriodID: periodID}).Delete(&PlannedEnvelope{}).Error
		if err != nil {
			return err
		}

		err = tx.Unscoped().Where(&PeriodPlan{PeriodID: periodID}).Delete(&PeriodPlan{}).Error
		if err != nil {
			return err
		}

		return tx.Create(&plan).Error
	})
	if err != nil {
		return PeriodPlan{}, err
	}

	return plan, nil
}

// Get returns the plan for a period.
func (s PeriodPlanStore) Get(periodID string) (PeriodPlan, error) {
	var plan PeriodPlan
	err := s.DB.Preload("Envelopes", func(db *gorm.DB) *gorm.DB {
		return db.Order("planned_envelopes.position ASC")
	}).First(&plan, &PeriodPlan{PeriodID: periodID}).Error
	if err != nil {
		return PeriodPlan{}, err
	}

	return plan, nil
}

// Exists reports whether a plan is stored for the period.
func (s PeriodPlanStore) Exists(periodID string) (bool, error) {
	var count int64
	err := s.DB.Model(&PeriodPlan{}).Where(&PeriodPlan{PeriodID: periodID}).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes the plan for a period.
func (s PeriodPlanStore) Delete(periodID string) error {
	if periodID == s.CurrentPeriodID {
		return ErrCannotModifyCurrentPeriod
	}

	plan, err := s.Get(periodID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Unscoped().Where(&PlannedEnvelope{PeriodID: periodID}).Delete(&PlannedEnvelope{}).Error
		if err != nil {
			return err
		}

		return tx.Unscoped().Delete(&plan).Error
	})
}

// Template returns the current envelopes of the budget as planned
// entries with spent zeroed. It is used to seed the plan editor when no
// plan exists for a period yet and is never persisted implicitly.
func (s PeriodPlanStore) Template(budgetID uuid.UUID) ([]PlannedEnvelope, error) {
	var envelopes []Envelope
	err := s.DB.Where(&Envelope{BudgetID: budgetID}).Where("archived = ?", false).
		Order("name ASC").Find(&envelopes).Error
	if err != nil {
		return nil, err
	}

	entries := make([]PlannedEnvelope, 0, len(envelopes))
	for i, envelope := range envelopes {
		entries = append(entries, PlannedEnvelope{
			Name:         envelope.Name,
			Allocation:   envelope.Allocation,
			PeriodLength: envelope.PeriodLength,
			Position:     i,
		})
	}

	return entries, nil
}

// Returns all period plans on this instance for export
func (PeriodPlan) Export() (json.RawMessage, error) {
	var plans []PeriodPlan
	err := DB.Unscoped().Preload("Envelopes").Where(&PeriodPlan{}).Find(&plans).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&plans)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}

// IsNotFound reports whether the error means that no plan is stored.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}

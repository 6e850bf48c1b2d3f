package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/pacekeeper/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Envelope represents an envelope in your budget: a named sub-budget
// with a fixed allocation for the period starting at StartDate.
type Envelope struct {
	DefaultModel
	Budget       Budget    `json:"-"`
	BudgetID     uuid.UUID `gorm:"uniqueIndex:envelope_name_budget_id"`
	Name         string    `gorm:"uniqueIndex:envelope_name_budget_id"`
	Note         string
	Allocation   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Spent        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	StartDate    types.Date
	PeriodLength int // days, 1 to 31
	Archived     bool
}

// BeforeSave trims whitespace from all strings.
func (e *Envelope) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	e.Note = strings.TrimSpace(e.Note)

	return nil
}

func (e *Envelope) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Envelope)
	return e.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the envelope before
// committing an update to the database.
func (e *Envelope) BeforeUpdate(tx *gorm.DB) error {
	// Column updates from the engine itself do not carry an Envelope
	// destination and never change the budget reference
	toSave, ok := tx.Statement.Dest.(Envelope)
	if !ok {
		return nil
	}

	if tx.Statement.Changed("BudgetID") {
		err := e.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// AfterSave validates the envelope fields.
//
// Spent may exceed Allocation: an overspent envelope is a legal state
// that the status classification reports as empty, not an error.
func (e *Envelope) AfterSave(_ *gorm.DB) error {
	if e.Name == "" {
		return ErrEnvelopeNameEmpty
	}

	if !e.Allocation.IsPositive() {
		return ErrAllocationNotPositive
	}

	if e.Spent.IsNegative() {
		return ErrSpentNegative
	}

	if e.PeriodLength < 1 || e.PeriodLength > 31 {
		return ErrPeriodLengthOutOfRange
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (e *Envelope) checkIntegrity(tx *gorm.DB, toSave Envelope) error {
	return tx.First(&Budget{}, toSave.BudgetID).Error
}

// PeriodEnd returns the last day of the envelope's current period.
func (e Envelope) PeriodEnd() types.Date {
	return e.StartDate.AddDays(e.PeriodLength - 1)
}

// Remaining returns the unspent allocation. It is negative when the
// envelope is overspent.
func (e Envelope) Remaining() decimal.Decimal {
	return e.Allocation.Sub(e.Spent)
}

// Purchases returns the committed purchase log for this envelope.
func (e Envelope) Purchases(db *gorm.DB) ([]Purchase, error) {
	var purchases []Purchase
	err := db.Where(&Purchase{EnvelopeID: e.ID}).Order("date ASC, created_at ASC").Find(&purchases).Error
	return purchases, err
}

// Returns all envelopes on this instance for export
func (Envelope) Export() (json.RawMessage, error) {
	var envelopes []Envelope
	err := DB.Unscoped().Where(&Envelope{}).Find(&envelopes).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&envelopes)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}

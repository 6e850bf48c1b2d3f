package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/pacekeeper/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Purchase is a committed purchase against an envelope.
//
// The purchase log is append-only: committed purchases are never
// updated or deleted, they only stop mattering when the envelope rolls
// into a new period.
type Purchase struct {
	DefaultModel
	Envelope   Envelope  `json:"-"`
	EnvelopeID uuid.UUID
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Item       string          // optional label for what was bought
	Date       types.Date
}

// BeforeSave sets the date to today if it is unset.
func (p *Purchase) BeforeSave(_ *gorm.DB) error {
	p.Item = strings.TrimSpace(p.Item)

	if p.Date.IsZero() {
		p.Date = types.Today()
	}

	return nil
}

func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	_ = p.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Purchase)
	return p.checkIntegrity(tx, *toSave)
}

func (p *Purchase) AfterSave(_ *gorm.DB) error {
	if !p.Amount.IsPositive() {
		return ErrPurchaseAmountNotPositive
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (p *Purchase) checkIntegrity(tx *gorm.DB, toSave Purchase) error {
	return tx.First(&Envelope{}, toSave.EnvelopeID).Error
}

// Returns all purchases on this instance for export
func (Purchase) Export() (json.RawMessage, error) {
	var purchases []Purchase
	err := DB.Unscoped().Where(&Purchase{}).Find(&purchases).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&purchases)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}

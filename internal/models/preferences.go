package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/pacekeeper/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaycheckFrequency describes how often the user is paid.
type PaycheckFrequency string

const (
	FrequencyWeekly      PaycheckFrequency = "weekly"
	FrequencyBiweekly    PaycheckFrequency = "biweekly"
	FrequencySemiMonthly PaycheckFrequency = "semimonthly"
	FrequencyMonthly     PaycheckFrequency = "monthly"
)

// PaycheckPreferences drives period boundary generation for a budget.
//
// It is owned by profile management; the period calendar only reads it.
type PaycheckPreferences struct {
	DefaultModel
	Budget              Budget    `json:"-"`
	BudgetID            uuid.UUID `gorm:"uniqueIndex"`
	Frequency           PaycheckFrequency
	NextPayday          types.Date
	PaycheckAmount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	SemiMonthlyFirstDay int             // only used with the semimonthly frequency
	SemiMonthlySecondDay int            // only used with the semimonthly frequency
}

func (p *PaycheckPreferences) BeforeSave(_ *gorm.DB) error {
	p.Frequency = PaycheckFrequency(strings.ToLower(strings.TrimSpace(string(p.Frequency))))

	// The first semimonthly pay day is the earlier one
	if p.Frequency == FrequencySemiMonthly && p.SemiMonthlyFirstDay > p.SemiMonthlySecondDay {
		p.SemiMonthlyFirstDay, p.SemiMonthlySecondDay = p.SemiMonthlySecondDay, p.SemiMonthlyFirstDay
	}

	return nil
}

func (p *PaycheckPreferences) BeforeCreate(tx *gorm.DB) error {
	_ = p.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*PaycheckPreferences)
	return p.checkIntegrity(tx, *toSave)
}

func (p *PaycheckPreferences) AfterSave(_ *gorm.DB) error {
	switch p.Frequency {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
	case FrequencySemiMonthly:
		if p.SemiMonthlyFirstDay < 1 || p.SemiMonthlySecondDay > 31 ||
			p.SemiMonthlyFirstDay == p.SemiMonthlySecondDay {
			return ErrSemiMonthlyDaysInvalid
		}
	default:
		return ErrPaycheckFrequencyInvalid
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (p *PaycheckPreferences) checkIntegrity(tx *gorm.DB, toSave PaycheckPreferences) error {
	return tx.First(&Budget{}, toSave.BudgetID).Error
}

// Returns all paycheck preferences on this instance for export
func (PaycheckPreferences) Export() (json.RawMessage, error) {
	var preferences []PaycheckPreferences
	err := DB.Unscoped().Where(&PaycheckPreferences{}).Find(&preferences).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&preferences)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}

package models

import (
	"encoding/json"
	"strings"

	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// Budget represents a budget
//
// A budget is the highest level of organization in Pacekeeper, all other
// resources reference it directly or transitively.
type Budget struct {
	DefaultModel
	Name     string `gorm:"uniqueIndex"`
	Note     string
	Currency string // ISO 4217 code, only used for display
}

// BeforeSave trims whitespace and verifies the currency code.
//
// The currency is a display tag only, Pacekeeper does no multi-currency
// arithmetic. An empty currency is allowed.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Note = strings.TrimSpace(b.Note)
	b.Currency = strings.ToUpper(strings.TrimSpace(b.Currency))

	if b.Currency != "" {
		if _, err := currency.ParseISO(b.Currency); err != nil {
			return ErrCurrencyInvalid
		}
	}

	return nil
}

// Returns all budgets on this instance for export
func (Budget) Export() (json.RawMessage, error) {
	var budgets []Budget
	err := DB.Unscoped().Where(&Budget{}).Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&budgets)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}

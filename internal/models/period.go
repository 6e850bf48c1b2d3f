package models

import (
	"github.com/google/uuid"
	"github.com/pacekeeper/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StartNewPeriod rolls every envelope of the budget into a new period
// starting at startDate, in a single database transaction.
//
// If a period plan exists for the new period it is consumed: envelopes
// named in the plan are updated or created with the planned
// allocations, envelopes missing from the plan are archived. Without a
// plan, every envelope keeps its allocation and only gets its spent
// amount reset.
//
// Shuffle limit usage is always reset; this is the only place that
// does so.
func StartNewPeriod(db *gorm.DB, budgetID uuid.UUID, startDate types.Date, periodID string) error {
	if err := db.First(&Budget{}, budgetID).Error; err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		store := PeriodPlanStore{DB: tx}

		planned, err := store.Exists(periodID)
		if err != nil {
			return err
		}

		if planned {
			plan, err := store.Get(periodID)
			if err != nil {
				return err
			}

			if err := applyPlan(tx, budgetID, startDate, plan); err != nil {
				return err
			}

			// The plan is consumed by the rollover
			err = tx.Unscoped().Where(&PlannedEnvelope{PeriodID: periodID}).Delete(&PlannedEnvelope{}).Error
			if err != nil {
				return err
			}

			err = tx.Unscoped().Where(&PeriodPlan{PeriodID: periodID}).Delete(&PeriodPlan{}).Error
			if err != nil {
				return err
			}
		} else {
			var envelopes []Envelope
			if err := tx.Where(&Envelope{BudgetID: budgetID}).Find(&envelopes).Error; err != nil {
				return err
			}

			for _, envelope := range envelopes {
				err := tx.Model(&envelope).Updates(map[string]interface{}{
					"spent":      decimal.Zero,
					"start_date": startDate,
				}).Error
				if err != nil {
					return err
				}
			}
		}

		return ResetShuffleUsage(tx, budgetID)
	})
}

// applyPlan replaces the budget's envelope set with the planned one.
func applyPlan(tx *gorm.DB, budgetID uuid.UUID, startDate types.Date, plan PeriodPlan) error {
	var envelopes []Envelope
	if err := tx.Where(&Envelope{BudgetID: budgetID}).Find(&envelopes).Error; err != nil {
		return err
	}

	byName := make(map[string]Envelope, len(envelopes))
	for _, envelope := range envelopes {
		byName[envelope.Name] = envelope
	}

	for _, entry := range plan.Envelopes {
		if existing, ok := byName[entry.Name]; ok {
			err := tx.Model(&existing).Updates(map[string]interface{}{
				"allocation":    entry.Allocation,
				"spent":         decimal.Zero,
				"start_date":    startDate,
				"period_length": entry.PeriodLength,
				"archived":      false,
			}).Error
			if err != nil {
				return err
			}

			delete(byName, entry.Name)
			continue
		}

		envelope := Envelope{
			BudgetID:     budgetID,
			Name:         entry.Name,
			Allocation:   entry.Allocation,
			Spent:        decimal.Zero,
			StartDate:    startDate,
			PeriodLength: entry.PeriodLength,
		}
		if err := tx.Create(&envelope).Error; err != nil {
			return err
		}
	}

	// Envelopes the plan does not mention are archived, not deleted,
	// so their purchase history stays addressable.
	for _, leftover := range byName {
		if err := tx.Model(&leftover).Update("Archived", true).Error; err != nil {
			return err
		}
	}

	return nil
}

package v1

import (
	"github.com/pacekeeper/backend/internal/models"
	"github.com/pacekeeper/backend/internal/types"
	"github.com/shopspring/decimal"
)

// PreferencesEditable represents all user configurable parameters
type PreferencesEditable struct {
	Frequency            models.PaycheckFrequency `json:"frequency" example:"biweekly"`      // How often the user is paid: weekly, biweekly, semimonthly or monthly
	NextPayday           types.Date               `json:"nextPayday" example:"2026-09-04"`   // A known payday, past or future paydays are derived from it
	PaycheckAmount       decimal.Decimal          `json:"paycheckAmount" example:"2000"`     // Amount of the paycheck, for display only
	SemiMonthlyFirstDay  int                      `json:"semiMonthlyFirstDay" example:"1"`   // First pay day of the month, only used with the semimonthly frequency
	SemiMonthlySecondDay int                      `json:"semiMonthlySecondDay" example:"15"` // Second pay day of the month, only used with the semimonthly frequency
}

// model transforms the API representation into the model representation
func (p PreferencesEditable) model() models.PaycheckPreferences {
	return models.PaycheckPreferences{
		Frequency:            p.Frequency,
		NextPayday:           p.NextPayday,
		PaycheckAmount:       p.PaycheckAmount,
		SemiMonthlyFirstDay:  p.SemiMonthlyFirstDay,
		SemiMonthlySecondDay: p.SemiMonthlySecondDay,
	}
}

type Preferences struct {
	models.DefaultModel
	PreferencesEditable
}

func newPreferences(model models.PaycheckPreferences) Preferences {
	return Preferences{
		DefaultModel: model.DefaultModel,
		PreferencesEditable: PreferencesEditable{
			Frequency:            model.Frequency,
			NextPayday:           model.NextPayday,
			PaycheckAmount:       model.PaycheckAmount,
			SemiMonthlyFirstDay:  model.SemiMonthlyFirstDay,
			SemiMonthlySecondDay: model.SemiMonthlySecondDay,
		},
	}
}

type PreferencesResponse struct {
	Data  *Preferences `json:"data"`                                                          // The paycheck preferences
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

package pace

import (
	"fmt"

	"github.com/pacekeeper/backend/internal/models"
	"github.com/pacekeeper/backend/internal/types"
)

// Period is one budgeting period, bounded by two consecutive paydays.
// EndDate is the last day inside the period, the next period starts the
// day after.
type Period struct {
	ID           string     `json:"id" example:"2026-08-21-14d"`
	StartDate    types.Date `json:"startDate" example:"2026-08-21"`
	EndDate      types.Date `json:"endDate" example:"2026-09-03"`
	PeriodLength int        `json:"periodLength" example:"14"`
	Current      bool       `json:"current"`
	Planned      bool       `json:"planned"`
}

// PlanChecker reports whether a period plan exists for a period ID.
type PlanChecker interface {
	Exists(periodID string) (bool, error)
}

// PeriodID returns the deterministic identifier for a period starting
// at start and lasting length days. The same boundaries always produce
// the same ID, so plans keyed by it survive recomputing the calendar.
func PeriodID(start types.Date, length int) string {
	return fmt.Sprintf("%s-%dd", start, length)
}

// NextPeriods computes the current period and the upcoming ones from
// the paycheck schedule, n periods in total. n values below 1 fall back
// to 3. A nil PlanChecker leaves every Planned flag false.
//
// The first period returned always contains today.
func NextPeriods(prefs models.PaycheckPreferences, today types.Date, n int, plans PlanChecker) ([]Period, error) {
	if err := validateSchedule(prefs); err != nil {
		return nil, err
	}

	if n < 1 {
		n = 3
	}

	start, err := currentPayday(prefs, today)
	if err != nil {
		return nil, err
	}

	periods := make([]Period, 0, n)
	for i := 0; i < n; i++ {
		next, err := nextPayday(prefs, start)
		if err != nil {
			return nil, err
		}

		period := Period{
			StartDate:    start,
			EndDate:      next.AddDays(-1),
			PeriodLength: start.DaysUntil(next),
			Current:      i == 0,
		}
		period.ID = PeriodID(period.StartDate, period.PeriodLength)

		if plans != nil {
			planned, err := plans.Exists(period.ID)
			if err != nil {
				return nil, err
			}
			period.Planned = planned
		}

		periods = append(periods, period)
		start = next
	}

	return periods, nil
}

func validateSchedule(prefs models.PaycheckPreferences) error {
	if prefs.NextPayday.IsZero() {
		return ErrInvalidSchedule
	}

	switch prefs.Frequency {
	case models.FrequencyWeekly, models.FrequencyBiweekly, models.FrequencyMonthly:
		return nil
	case models.FrequencySemiMonthly:
		if prefs.SemiMonthlyFirstDay < 1 || prefs.SemiMonthlySecondDay > 31 ||
			prefs.SemiMonthlyFirstDay >= prefs.SemiMonthlySecondDay {
			return ErrInvalidSchedule
		}
		return nil
	default:
		return ErrInvalidSchedule
	}
}

// currentPayday finds the latest payday that is on or before today. The
// stored NextPayday may lie in the past or the future, both work.
func currentPayday(prefs models.PaycheckPreferences, today types.Date) (types.Date, error) {
	switch prefs.Frequency {
	case models.FrequencyWeekly, models.FrequencyBiweekly:
		interval := 7
		if prefs.Frequency == models.FrequencyBiweekly {
			interval = 14
		}

		diff := prefs.NextPayday.DaysUntil(today)
		steps := diff / interval
		if diff < 0 && diff%interval != 0 {
			steps--
		}

		return prefs.NextPayday.AddDays(steps * interval), nil

	case models.FrequencyMonthly:
		payday := today.WithDayClamped(prefs.NextPayday.Day())
		if payday.After(today) {
			previous := types.NewDate(today.Year(), today.Month()-1, 1)
			payday = previous.WithDayClamped(prefs.NextPayday.Day())
		}

		return payday, nil

	case models.FrequencySemiMonthly:
		second := today.WithDayClamped(prefs.SemiMonthlySecondDay)
		if !second.After(today) {
			return second, nil
		}

		first := today.WithDayClamped(prefs.SemiMonthlyFirstDay)
		if !first.After(today) {
			return first, nil
		}

		previous := types.NewDate(today.Year(), today.Month()-1, 1)
		return previous.WithDayClamped(prefs.SemiMonthlySecondDay), nil
	}

	return types.Date{}, ErrInvalidSchedule
}

// nextPayday returns the payday following the given one.
func nextPayday(prefs models.PaycheckPreferences, payday types.Date) (types.Date, error) {
	switch prefs.Frequency {
	case models.FrequencyWeekly:
		return payday.AddDays(7), nil

	case models.FrequencyBiweekly:
		return payday.AddDays(14), nil

	case models.FrequencyMonthly:
		next := types.NewDate(payday.Year(), payday.Month()+1, 1)
		return next.WithDayClamped(prefs.NextPayday.Day()), nil

	case models.FrequencySemiMonthly:
		// Short months can clamp both pay days onto the same date. The
		// second candidate only counts when it is strictly later.
		second := payday.WithDayClamped(prefs.SemiMonthlySecondDay)
		if second.After(payday) {
			return second, nil
		}

		next := types.NewDate(payday.Year(), payday.Month()+1, 1)
		return next.WithDayClamped(prefs.SemiMonthlyFirstDay), nil
	}

	return types.Date{}, ErrInvalidSchedule
}

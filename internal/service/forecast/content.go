package forecast

import (
	"time"

	"github.com/samber/lo"

	"github.com/mamadbah2/demandcast/internal/domain/models"
)

var energySources = []models.EnergySourceShare{
	{Source: "Coal", Percent: 45},
	{Source: "Solar", Percent: 20},
	{Source: "Wind", Percent: 15},
	{Source: "Hydro", Percent: 12},
	{Source: "Nuclear", Percent: 5},
	{Source: "Other", Percent: 3},
}

var insights = []models.Insight{
	{Title: "Peak Usage Forecast", Description: "Highest demand expected between 2 PM - 4 PM"},
	{Title: "Weekly Forecast", Description: "Weekday demand predicted to be 20% higher than weekends"},
	{Title: "Monthly Forecast", Description: "June expected to show highest demand due to cooling needs"},
}

// EnergySourceBreakdown returns the generation mix in display order.
func EnergySourceBreakdown() []models.EnergySourceShare {
	return append([]models.EnergySourceShare(nil), energySources...)
}

// Insights returns the headlines shown with the trends charts.
func Insights() []models.Insight {
	return append([]models.Insight(nil), insights...)
}

// FilterRange keeps the records whose date lies within [start, end].
// Records with unparsable dates are dropped.
func FilterRange(records []models.DailyRecord, start, end time.Time) []models.DailyRecord {
	first, last := Day(start), Day(end)
	if first.After(last) {
		return []models.DailyRecord{}
	}
	return lo.Filter(records, func(r models.DailyRecord, _ int) bool {
		d, err := ParseDate(r.Date)
		if err != nil {
			return false
		}
		return !d.Before(first) && !d.After(last)
	})
}

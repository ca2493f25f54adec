package simulation

import (
	"github.com/shopspring/decimal"

	"github.com/sudat/cf-simu/internal/models"
)

// CalculateMonthlyData breaks one projected year into twelve months of
// income and expense. Monthly-frequency items spread their grown annual
// amount evenly; yearly-frequency items are booked entirely in March.
func CalculateMonthlyData(s *models.PlanState, year int) []models.MonthlyDataPoint {
	out := make([]models.MonthlyDataPoint, 0, 12)

	for month := 1; month <= 12; month++ {
		income := totalMonthlyFlow(s, s.Incomes, year, month)
		expense := totalMonthlyFlow(s, s.Expenses, year, month)
		out = append(out, models.MonthlyDataPoint{
			Month:   month,
			Income:  income,
			Expense: expense,
			Net:     income - expense,
		})
	}
	return out
}

func totalMonthlyFlow(s *models.PlanState, items models.CategoryItems, year, month int) int64 {
	var total int64
	for itemName, item := range items {
		setting, ok := item.Settings[activePlanName(s, itemName)]
		if !ok || setting.Flow == nil {
			continue
		}
		total += monthlyFlowAmount(setting.Flow, year, month)
	}
	return total
}

// yearlyBookingMonth is when a yearly-frequency amount lands, matching the
// fiscal-year-end convention of the dialogs.
const yearlyBookingMonth = 3

func monthlyFlowAmount(f *models.FlowSetting, year, month int) int64 {
	if year < f.StartYear {
		return 0
	}
	if f.EndYear != nil && year > *f.EndYear {
		return 0
	}

	yearly := annualFlowAmount(f, int64(year-f.StartYear))

	if f.Frequency == models.FrequencyMonthly {
		return yearly.Div(decimal.NewFromInt(12)).Round(0).IntPart()
	}
	if month == yearlyBookingMonth {
		return yearly.Round(0).IntPart()
	}
	return 0
}

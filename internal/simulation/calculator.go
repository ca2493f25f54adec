// Package simulation is the projection engine: it turns the current plan
// state into year-indexed income, expense, asset and debt series. It is a
// pure read-only consumer of a snapshot and never mutates it.
package simulation

import (
	"github.com/shopspring/decimal"

	"github.com/sudat/cf-simu/internal/logging"
	"github.com/sudat/cf-simu/internal/models"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

var one = decimal.NewFromInt(1)
var twelve = decimal.NewFromInt(12)
var hundred = decimal.NewFromInt(100)

// CalculateSimulation projects the snapshot over the horizon, one data
// point per year from startYear through startYear+periodYears inclusive.
// Every item contributes through its active plan's setting; an item whose
// active plan has no setting contributes nothing.
func CalculateSimulation(s *models.PlanState, periodYears, startYear int) []models.SimulationDataPoint {
	results := make([]models.SimulationDataPoint, 0, periodYears+1)

	for i := 0; i <= periodYears; i++ {
		year := startYear + i
		income := totalFlow(s, s.Incomes, year)
		expense := totalFlow(s, s.Expenses, year)
		assets := totalStock(s, s.Assets, year)
		debts := totalStock(s, s.Debts, year)

		results = append(results, models.SimulationDataPoint{
			Year:      year,
			Income:    income,
			Expense:   expense,
			NetIncome: income - expense,
			Assets:    assets,
			Debts:     debts,
			NetAssets: assets - debts,
		})
	}

	log.WithFields(
		logging.Field{Key: "years", Value: periodYears},
		logging.Field{Key: "start_year", Value: startYear},
	).Debug("simulation calculated")
	return results
}

// activePlanName resolves the plan the projection should read for an item,
// defaulting when the directory has no entry.
func activePlanName(s *models.PlanState, itemName string) string {
	if entry, ok := s.Plans[itemName]; ok && entry.ActivePlan != "" {
		return entry.ActivePlan
	}
	return models.DefaultPlanName
}

// totalFlow sums the year's contributions of all flow items in one
// category. Each item is rounded to whole yen before summing.
func totalFlow(s *models.PlanState, items models.CategoryItems, year int) int64 {
	var total int64
	for itemName, item := range items {
		setting, ok := item.Settings[activePlanName(s, itemName)]
		if !ok || setting.Flow == nil {
			continue
		}
		total += FlowAmount(setting.Flow, year)
	}
	return total
}

// totalStock sums the year's balances of all stock items in one category.
func totalStock(s *models.PlanState, items models.CategoryItems, year int) int64 {
	var total int64
	for itemName, item := range items {
		setting, ok := item.Settings[activePlanName(s, itemName)]
		if !ok || setting.Stock == nil {
			continue
		}
		total += StockAmount(setting.Stock, year)
	}
	return total
}

// FlowAmount is the flow item's annual amount at the given year: zero
// outside [startYear, endYear], otherwise the annualized base compounded at
// growthRate per elapsed year plus the annualized linear change, rounded to
// whole yen.
func FlowAmount(f *models.FlowSetting, year int) int64 {
	if year < f.StartYear {
		return 0
	}
	if f.EndYear != nil && year > *f.EndYear {
		return 0
	}

	elapsed := int64(year - f.StartYear)
	amount := annualFlowAmount(f, elapsed)
	return amount.Round(0).IntPart()
}

// annualFlowAmount computes the unrounded annual amount after elapsed
// years of growth.
func annualFlowAmount(f *models.FlowSetting, elapsed int64) decimal.Decimal {
	yearly := f.Amount
	if f.Frequency == models.FrequencyMonthly {
		yearly = yearly.Mul(twelve)
	}

	amount := yearly
	if !f.GrowthRate.IsZero() {
		factor := one.Add(f.GrowthRate.Div(hundred))
		amount = yearly.Mul(factor.Pow(decimal.NewFromInt(elapsed)))
	}

	if !f.YearlyChange.IsZero() {
		change := f.YearlyChange
		if f.Frequency == models.FrequencyMonthly {
			change = change.Mul(twelve)
		}
		amount = amount.Add(change.Mul(decimal.NewFromInt(elapsed)))
	}
	return amount
}

// StockAmount is the stock item's balance at the given year. At or before
// the base year the balance is the seed amount. After that the balance is
// stepped one year at a time: compound first, then apply the flat yearly
// change, so a contribution never earns its own year's return. This
// iterative form is deliberately not a closed-form annuity; the two differ
// whenever yearlyChange is nonzero.
func StockAmount(st *models.StockSetting, year int) int64 {
	if year <= st.BaseYear {
		return st.BaseAmount.Round(0).IntPart()
	}

	amount := st.BaseAmount
	var factor decimal.Decimal
	if !st.Rate.IsZero() {
		factor = one.Add(st.Rate.Div(hundred))
	}

	for y := st.BaseYear; y < year; y++ {
		if !st.Rate.IsZero() {
			amount = amount.Mul(factor)
		}
		if !st.YearlyChange.IsZero() {
			amount = amount.Add(st.YearlyChange)
		}
	}
	return amount.Round(0).IntPart()
}

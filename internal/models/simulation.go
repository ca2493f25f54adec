package models

// SimulationDataPoint is one projected year. Amounts are rounded to whole
// yen; net figures are derived from the rounded totals.
type SimulationDataPoint struct {
	Year      int   `csv:"year" json:"year" yaml:"year"`
	Income    int64 `csv:"income" json:"income" yaml:"income"`
	Expense   int64 `csv:"expense" json:"expense" yaml:"expense"`
	NetIncome int64 `csv:"net_income" json:"netIncome" yaml:"netIncome"`
	Assets    int64 `csv:"assets" json:"assets" yaml:"assets"`
	Debts     int64 `csv:"debts" json:"debts" yaml:"debts"`
	NetAssets int64 `csv:"net_assets" json:"netAssets" yaml:"netAssets"`
}

// MonthlyDataPoint is one month of the within-year breakdown. Monthly
// amounts spread evenly; yearly amounts are booked entirely in March.
type MonthlyDataPoint struct {
	Month   int   `csv:"month" json:"month" yaml:"month"`
	Income  int64 `csv:"income" json:"income" yaml:"income"`
	Expense int64 `csv:"expense" json:"expense" yaml:"expense"`
	Net     int64 `csv:"net" json:"net" yaml:"net"`
}

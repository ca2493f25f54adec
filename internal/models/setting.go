package models

import "github.com/shopspring/decimal"

// FlowSetting parameterizes a recurring income or expense. The amount is
// active within [StartYear, EndYear] (open-ended when EndYear is nil),
// compounds at GrowthRate percent per year and is shifted by a flat
// YearlyChange per year.
type FlowSetting struct {
	StartYear    int             `json:"startYear" yaml:"startYear"`
	EndYear      *int            `json:"endYear,omitempty" yaml:"endYear,omitempty"`
	Amount       decimal.Decimal `json:"amount" yaml:"amount"`
	Frequency    Frequency       `json:"frequency" yaml:"frequency"`
	GrowthRate   decimal.Decimal `json:"growthRate" yaml:"growthRate"`
	YearlyChange decimal.Decimal `json:"yearlyChange,omitempty" yaml:"yearlyChange,omitempty"`
}

// StockSetting parameterizes an asset or debt balance. The balance equals
// BaseAmount at BaseYear, compounds at Rate percent per year and receives a
// flat YearlyChange contribution (or withdrawal) each year after compounding.
type StockSetting struct {
	BaseYear     int             `json:"baseYear" yaml:"baseYear"`
	BaseAmount   decimal.Decimal `json:"baseAmount" yaml:"baseAmount"`
	Rate         decimal.Decimal `json:"rate" yaml:"rate"`
	YearlyChange decimal.Decimal `json:"yearlyChange" yaml:"yearlyChange"`
}

// Setting is the per-plan parameter variant of an item. Exactly one of the
// two branches is set, matching the owning item's fixed type tag; consumers
// resolve the branch once and never shape-sniff.
type Setting struct {
	Flow  *FlowSetting  `json:"flow,omitempty" yaml:"flow,omitempty"`
	Stock *StockSetting `json:"stock,omitempty" yaml:"stock,omitempty"`
}

// NewFlowSetting wraps a flow variant.
func NewFlowSetting(f FlowSetting) Setting {
	return Setting{Flow: &f}
}

// NewStockSetting wraps a stock variant.
func NewStockSetting(s StockSetting) Setting {
	return Setting{Stock: &s}
}

// IsZero reports whether neither branch is populated.
func (s Setting) IsZero() bool {
	return s.Flow == nil && s.Stock == nil
}

// Clone returns a deep copy. Decimal values are immutable and may be shared.
func (s Setting) Clone() Setting {
	var out Setting
	if s.Flow != nil {
		f := *s.Flow
		if s.Flow.EndYear != nil {
			end := *s.Flow.EndYear
			f.EndYear = &end
		}
		out.Flow = &f
	}
	if s.Stock != nil {
		st := *s.Stock
		out.Stock = &st
	}
	return out
}

// defaultSeedYear is the base year every freshly created item starts from.
const defaultSeedYear = 2024

// ZeroSetting returns the zeroed default-plan setting for a new item of the
// given type.
func ZeroSetting(t ItemType) Setting {
	if t == ItemStock {
		return NewStockSetting(StockSetting{
			BaseYear:     defaultSeedYear,
			BaseAmount:   decimal.Zero,
			Rate:         decimal.Zero,
			YearlyChange: decimal.Zero,
		})
	}
	return NewFlowSetting(FlowSetting{
		StartYear:  defaultSeedYear,
		Amount:     decimal.Zero,
		Frequency:  FrequencyMonthly,
		GrowthRate: decimal.Zero,
	})
}

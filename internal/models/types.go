// Package models defines the plan-state data model shared by the item
// registry, the plan directory, the integrity checks and the simulation
// calculator.
package models

// DefaultPlanName is the reserved plan every item always carries. It can
// never be deleted or renamed.
const DefaultPlanName = "デフォルトプラン"

// MaxPlanNameLength is the upper bound for user-supplied plan names.
const MaxPlanNameLength = 50

// CategoryType identifies which of the four category maps an item lives in.
type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
	CategoryAsset   CategoryType = "asset"
	CategoryDebt    CategoryType = "debt"
)

// Valid reports whether c is one of the four known categories.
func (c CategoryType) Valid() bool {
	switch c {
	case CategoryIncome, CategoryExpense, CategoryAsset, CategoryDebt:
		return true
	}
	return false
}

// IsFlow reports whether items in this category are flow items
// (recurring income/expense) as opposed to stock items (asset/debt balances).
func (c CategoryType) IsFlow() bool {
	return c == CategoryIncome || c == CategoryExpense
}

// AllCategories lists the categories in their canonical order.
func AllCategories() []CategoryType {
	return []CategoryType{CategoryIncome, CategoryExpense, CategoryAsset, CategoryDebt}
}

// ItemType distinguishes recurring amounts from balances. It is fixed at
// item creation.
type ItemType string

const (
	ItemFlow  ItemType = "flow"
	ItemStock ItemType = "stock"
)

// Valid reports whether t is a known item type.
func (t ItemType) Valid() bool {
	return t == ItemFlow || t == ItemStock
}

// Frequency is how often a flow amount recurs.
type Frequency string

const (
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

package models

import "fmt"

// PlanDescriptor describes one selectable plan of one item. Ids are scoped
// to the item: the same plan name on two items yields two distinct ids.
type PlanDescriptor struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	IsDefault bool   `json:"isDefault" yaml:"isDefault"`
	ItemName  string `json:"itemName" yaml:"itemName"`
}

// DefaultPlanDescriptor returns the descriptor for an item's default plan.
// It is also used synthetically for items the directory does not know yet.
func DefaultPlanDescriptor(itemName string) PlanDescriptor {
	return PlanDescriptor{
		ID:        itemName + "-default",
		Name:      DefaultPlanName,
		IsDefault: true,
		ItemName:  itemName,
	}
}

// CustomPlanDescriptor returns the descriptor for a non-default plan at the
// given position in the item's available-plan list.
func CustomPlanDescriptor(itemName, planName string, position int) PlanDescriptor {
	return PlanDescriptor{
		ID:       fmt.Sprintf("%s-plan-%d", itemName, position),
		Name:     planName,
		ItemName: itemName,
	}
}

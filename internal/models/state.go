package models

// Item is a trackable financial item. Its type is fixed at creation; the
// settings map holds one parameter variant per plan name.
type Item struct {
	Type     ItemType           `json:"type" yaml:"type"`
	Settings map[string]Setting `json:"settings" yaml:"settings"`
}

// Clone returns a deep copy of the item.
func (i *Item) Clone() *Item {
	out := &Item{Type: i.Type, Settings: make(map[string]Setting, len(i.Settings))}
	for name, s := range i.Settings {
		out.Settings[name] = s.Clone()
	}
	return out
}

// CategoryItems maps item name to item within one category.
type CategoryItems map[string]*Item

// Clone returns a deep copy of the category map.
func (c CategoryItems) Clone() CategoryItems {
	out := make(CategoryItems, len(c))
	for name, item := range c {
		out[name] = item.Clone()
	}
	return out
}

// PlanEntry is the per-item plan directory record: the ordered list of
// available plan names and the single active selection.
type PlanEntry struct {
	AvailablePlans []string `json:"availablePlans" yaml:"availablePlans"`
	ActivePlan     string   `json:"activePlan" yaml:"activePlan"`
}

// Clone returns a deep copy of the entry.
func (e *PlanEntry) Clone() *PlanEntry {
	plans := make([]string, len(e.AvailablePlans))
	copy(plans, e.AvailablePlans)
	return &PlanEntry{AvailablePlans: plans, ActivePlan: e.ActivePlan}
}

// HasPlan reports whether name is in the entry's available plans.
func (e *PlanEntry) HasPlan(name string) bool {
	for _, p := range e.AvailablePlans {
		if p == name {
			return true
		}
	}
	return false
}

// PlanState is the full application snapshot: the plan directory plus the
// four category-grouped item registries.
type PlanState struct {
	Plans    map[string]*PlanEntry `json:"plans" yaml:"plans"`
	Incomes  CategoryItems         `json:"incomes" yaml:"incomes"`
	Expenses CategoryItems         `json:"expenses" yaml:"expenses"`
	Assets   CategoryItems         `json:"assets" yaml:"assets"`
	Debts    CategoryItems         `json:"debts" yaml:"debts"`
}

// NewPlanState returns an empty snapshot with all maps initialized.
func NewPlanState() *PlanState {
	return &PlanState{
		Plans:    map[string]*PlanEntry{},
		Incomes:  CategoryItems{},
		Expenses: CategoryItems{},
		Assets:   CategoryItems{},
		Debts:    CategoryItems{},
	}
}

// Clone returns a deep copy of the snapshot. Mutating operations clone
// first so a failed step never leaves callers with a half-written state.
func (s *PlanState) Clone() *PlanState {
	out := &PlanState{
		Plans:    make(map[string]*PlanEntry, len(s.Plans)),
		Incomes:  s.Incomes.Clone(),
		Expenses: s.Expenses.Clone(),
		Assets:   s.Assets.Clone(),
		Debts:    s.Debts.Clone(),
	}
	for name, entry := range s.Plans {
		out.Plans[name] = entry.Clone()
	}
	return out
}

// Category returns the item map for the given category, or nil for an
// unknown category.
func (s *PlanState) Category(c CategoryType) CategoryItems {
	switch c {
	case CategoryIncome:
		return s.Incomes
	case CategoryExpense:
		return s.Expenses
	case CategoryAsset:
		return s.Assets
	case CategoryDebt:
		return s.Debts
	}
	return nil
}

// FindItem searches all four categories for an item by name. Item names are
// globally unique in practice (the plan directory is keyed by bare item
// name), so the first match wins in canonical category order.
func (s *PlanState) FindItem(name string) (CategoryType, *Item, bool) {
	for _, c := range AllCategories() {
		if item, ok := s.Category(c)[name]; ok {
			return c, item, true
		}
	}
	return "", nil, false
}

// Normalize ensures all maps are non-nil, so a snapshot decoded from an
// empty or partial YAML document behaves like NewPlanState().
func (s *PlanState) Normalize() {
	if s.Plans == nil {
		s.Plans = map[string]*PlanEntry{}
	}
	if s.Incomes == nil {
		s.Incomes = CategoryItems{}
	}
	if s.Expenses == nil {
		s.Expenses = CategoryItems{}
	}
	if s.Assets == nil {
		s.Assets = CategoryItems{}
	}
	if s.Debts == nil {
		s.Debts = CategoryItems{}
	}
}

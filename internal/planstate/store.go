package planstate

import (
	"github.com/sudat/cf-simu/internal/integrity"
	"github.com/sudat/cf-simu/internal/models"
	"github.com/sudat/cf-simu/internal/simulation"
)

// Result is the discriminated outcome callers of the store receive from
// every mutating operation. Failed mutations leave the state untouched.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Store owns the current snapshot for hosts that want a single mutable
// state holder (the dialogs, the CLI). All operations delegate to the pure
// transition functions; the store additionally retains the most recent
// failure message until it is explicitly cleared, which is the contract the
// UI's error banner relies on.
//
// The store assumes a single logical writer and does no locking.
type Store struct {
	state     *models.PlanState
	lastError string
}

// NewStore returns a store over an empty snapshot.
func NewStore() *Store {
	return &Store{state: models.NewPlanState()}
}

// NewStoreWithState returns a store over an existing snapshot.
func NewStoreWithState(s *models.PlanState) *Store {
	if s == nil {
		s = models.NewPlanState()
	}
	s.Normalize()
	return &Store{state: s}
}

// State returns the current snapshot. Callers must treat it as read-only.
func (st *Store) State() *models.PlanState {
	return st.state
}

// LastError returns the most recent operation's failure message, or the
// empty string.
func (st *Store) LastError() string {
	return st.lastError
}

// ClearError resets the retained failure message.
func (st *Store) ClearError() {
	st.lastError = ""
}

// apply commits a transition outcome and converts it to a Result.
func (st *Store) apply(next *models.PlanState, err error) Result {
	if err != nil {
		st.lastError = err.Error()
		return Result{Success: false, Error: err.Error()}
	}
	st.state = next
	return Result{Success: true}
}

// AddItem creates an item with its default plan. Duplicate adds are no-ops
// and still report success.
func (st *Store) AddItem(name string, category models.CategoryType, itemType models.ItemType) Result {
	st.state = AddItem(st.state, name, category, itemType)
	return Result{Success: true}
}

// AddItemPlan adds a named plan to one item.
func (st *Store) AddItemPlan(itemName, planName string) Result {
	return st.apply(AddPlan(st.state, itemName, planName))
}

// DeleteItemPlan removes a named plan from one item.
func (st *Store) DeleteItemPlan(itemName, planName string) Result {
	return st.apply(DeletePlan(st.state, itemName, planName))
}

// RenameItemPlan renames a plan on one item.
func (st *Store) RenameItemPlan(itemName, oldName, newName string) Result {
	return st.apply(RenamePlan(st.state, itemName, oldName, newName))
}

// SetItemActivePlan switches one item's active plan.
func (st *Store) SetItemActivePlan(itemName, planName string) Result {
	return st.apply(SetActivePlan(st.state, itemName, planName))
}

// SaveAmountSetting writes a plan's parameter setting addressed by a
// composite "category-itemName" identifier.
func (st *Store) SaveAmountSetting(itemKey, planName string, setting models.Setting) Result {
	return st.apply(SaveAmountSetting(st.state, itemKey, planName, setting))
}

// GetItemPlans lists one item's selectable plans, default first.
func (st *Store) GetItemPlans(itemName string) []models.PlanDescriptor {
	return GetAvailablePlans(st.state, itemName)
}

// GetAvailablePlans is an alias of GetItemPlans kept for callers of the
// older name.
func (st *Store) GetAvailablePlans(itemName string) []models.PlanDescriptor {
	return GetAvailablePlans(st.state, itemName)
}

// GetItemActivePlan returns one item's active plan descriptor.
func (st *Store) GetItemActivePlan(itemName string) models.PlanDescriptor {
	return GetActivePlan(st.state, itemName)
}

// PlanExists reports whether a plan is selectable for an item.
func (st *Store) PlanExists(itemName, planName string) bool {
	return PlanExists(st.state, itemName, planName)
}

// GetSetting looks up one item/plan setting.
func (st *Store) GetSetting(category models.CategoryType, itemName, planName string) (models.Setting, bool) {
	return GetSetting(st.state, category, itemName, planName)
}

// ValidatePlanData runs the per-entry directory check.
func (st *Store) ValidatePlanData() models.ValidationReport {
	return integrity.ValidatePlanData(st.state)
}

// ValidatePlanReferences runs the narrow reference check.
func (st *Store) ValidatePlanReferences() models.ValidationReport {
	return integrity.ValidatePlanReferences(st.state)
}

// CheckDataConsistency runs the directory-versus-registry cross-check.
func (st *Store) CheckDataConsistency() models.ConsistencyReport {
	return integrity.CheckDataConsistency(st.state)
}

// FixDataIntegrityIssues repairs fixable findings in place when autoFix is
// set; otherwise it only reports.
func (st *Store) FixDataIntegrityIssues(autoFix bool) models.FixReport {
	next, report := integrity.FixDataIntegrityIssues(st.state, autoFix)
	if autoFix {
		st.state = next
	}
	return report
}

// CalculateSimulation projects the current snapshot over the horizon.
func (st *Store) CalculateSimulation(periodYears, startYear int) []models.SimulationDataPoint {
	return simulation.CalculateSimulation(st.state, periodYears, startYear)
}

// CalculateMonthlyData breaks one projected year into months.
func (st *Store) CalculateMonthlyData(year int) []models.MonthlyDataPoint {
	return simulation.CalculateMonthlyData(st.state, year)
}

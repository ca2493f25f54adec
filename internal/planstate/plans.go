package planstate

import (
	"strings"

	"github.com/sudat/cf-simu/internal/logging"
	"github.com/sudat/cf-simu/internal/models"
)

// GetAvailablePlans lists an item's selectable plans, default plan first,
// custom plans in addition order. Unknown items yield a single synthetic
// default-plan descriptor: an item the directory has not seen is "not yet
// configured", never an error.
func GetAvailablePlans(s *models.PlanState, itemName string) []models.PlanDescriptor {
	entry, ok := s.Plans[itemName]
	if !ok {
		return []models.PlanDescriptor{models.DefaultPlanDescriptor(itemName)}
	}

	out := []models.PlanDescriptor{models.DefaultPlanDescriptor(itemName)}
	for i, name := range entry.AvailablePlans {
		if name == models.DefaultPlanName {
			continue
		}
		out = append(out, models.CustomPlanDescriptor(itemName, name, i))
	}
	return out
}

// GetActivePlan returns the descriptor of the item's active plan, falling
// back to the default descriptor for unknown items.
func GetActivePlan(s *models.PlanState, itemName string) models.PlanDescriptor {
	entry, ok := s.Plans[itemName]
	if !ok || entry.ActivePlan == "" || entry.ActivePlan == models.DefaultPlanName {
		return models.DefaultPlanDescriptor(itemName)
	}
	for i, name := range entry.AvailablePlans {
		if name == entry.ActivePlan {
			return models.CustomPlanDescriptor(itemName, name, i)
		}
	}
	// Orphaned active reference; report it as a plain descriptor so callers
	// can still render the name. Validation flags this state as fixable.
	return models.PlanDescriptor{
		ID:       itemName + "-plan-orphan",
		Name:     entry.ActivePlan,
		ItemName: itemName,
	}
}

// PlanExists reports whether the plan name is selectable for the item. The
// default plan always exists, even for items the directory does not know.
func PlanExists(s *models.PlanState, itemName, planName string) bool {
	if planName == models.DefaultPlanName {
		return true
	}
	entry, ok := s.Plans[itemName]
	if !ok {
		return false
	}
	return entry.HasPlan(planName)
}

// validatePlanName checks a user-supplied plan name and returns the trimmed
// form.
func validatePlanName(planName string) (string, error) {
	trimmed := strings.TrimSpace(planName)
	if trimmed == "" {
		return "", errValidation(msgEmptyPlanName)
	}
	if len([]rune(trimmed)) > models.MaxPlanNameLength {
		return "", errValidation(msgPlanNameTooLong)
	}
	return trimmed, nil
}

// AddPlan appends a new named plan to the item's directory entry and clones
// the item's default-plan setting into the new slot, so the new plan is
// immediately resolvable by the simulation.
func AddPlan(s *models.PlanState, itemName, planName string) (*models.PlanState, error) {
	if strings.TrimSpace(itemName) == "" {
		return s, errValidation(msgInvalidItem)
	}
	trimmed, err := validatePlanName(planName)
	if err != nil {
		return s, err
	}
	entry, ok := s.Plans[itemName]
	if !ok {
		return s, errNotFound(msgItemNotFound)
	}
	if entry.HasPlan(trimmed) {
		return s, errDuplicate(msgDuplicatePlanName)
	}

	next := s.Clone()
	nextEntry := next.Plans[itemName]
	nextEntry.AvailablePlans = append(nextEntry.AvailablePlans, trimmed)
	materializeSetting(next, itemName, trimmed)
	log.WithFields(
		logging.Field{Key: "item", Value: itemName},
		logging.Field{Key: "plan", Value: trimmed},
	).Info("plan added")
	return next, nil
}

// DeletePlan removes a named plan from the item's directory entry. The
// default plan is protected. Deleting the active plan resets the selection
// to the default. The plan-keyed setting is intentionally left in place.
func DeletePlan(s *models.PlanState, itemName, planName string) (*models.PlanState, error) {
	entry, ok := s.Plans[itemName]
	if !ok {
		return s, errNotFound(msgItemNotFound)
	}
	if !entry.HasPlan(planName) {
		return s, errNotFound(msgPlanNotFound)
	}
	if planName == models.DefaultPlanName {
		return s, errProtected(msgCannotDeleteDefault)
	}

	next := s.Clone()
	nextEntry := next.Plans[itemName]
	kept := nextEntry.AvailablePlans[:0]
	for _, name := range nextEntry.AvailablePlans {
		if name != planName {
			kept = append(kept, name)
		}
	}
	nextEntry.AvailablePlans = kept
	if nextEntry.ActivePlan == planName {
		nextEntry.ActivePlan = models.DefaultPlanName
	}
	log.WithFields(
		logging.Field{Key: "item", Value: itemName},
		logging.Field{Key: "plan", Value: planName},
	).Info("plan deleted")
	return next, nil
}

// RenamePlan renames a non-default plan, re-pointing the active selection
// and re-keying the item's setting in the same transition.
func RenamePlan(s *models.PlanState, itemName, oldName, newName string) (*models.PlanState, error) {
	trimmed, err := validatePlanName(newName)
	if err != nil {
		return s, err
	}
	if oldName == models.DefaultPlanName {
		return s, errProtected(msgCannotRenameDefault)
	}
	entry, ok := s.Plans[itemName]
	if !ok {
		return s, errNotFound(msgItemNotFound)
	}
	if !entry.HasPlan(oldName) {
		return s, errNotFound(msgPlanNotFound)
	}
	if entry.HasPlan(trimmed) {
		return s, errDuplicate(msgDuplicatePlanName)
	}

	next := s.Clone()
	nextEntry := next.Plans[itemName]
	for i, name := range nextEntry.AvailablePlans {
		if name == oldName {
			nextEntry.AvailablePlans[i] = trimmed
		}
	}
	if nextEntry.ActivePlan == oldName {
		nextEntry.ActivePlan = trimmed
	}
	if _, item, found := next.FindItem(itemName); found {
		if setting, ok := item.Settings[oldName]; ok {
			item.Settings[trimmed] = setting
			delete(item.Settings, oldName)
		}
	}
	log.WithFields(
		logging.Field{Key: "item", Value: itemName},
		logging.Field{Key: "old", Value: oldName},
		logging.Field{Key: "new", Value: trimmed},
	).Info("plan renamed")
	return next, nil
}

// SetActivePlan switches the item's active selection. A plan activated
// before any setting was written for it gets the default-plan setting
// cloned in, so the simulation never resolves an active plan to nothing.
func SetActivePlan(s *models.PlanState, itemName, planName string) (*models.PlanState, error) {
	entry, ok := s.Plans[itemName]
	if !ok {
		return s, errNotFound(msgItemNotFound)
	}
	if !entry.HasPlan(planName) {
		return s, errNotFound(msgPlanNotAvailable)
	}

	next := s.Clone()
	next.Plans[itemName].ActivePlan = planName
	materializeSetting(next, itemName, planName)
	log.WithFields(
		logging.Field{Key: "item", Value: itemName},
		logging.Field{Key: "plan", Value: planName},
	).Info("active plan changed")
	return next, nil
}

// materializeSetting clones the item's default-plan setting into the given
// plan slot unless a setting already exists there. Items known only to the
// directory (no registry data) are left alone.
func materializeSetting(s *models.PlanState, itemName, planName string) {
	_, item, found := s.FindItem(itemName)
	if !found {
		return
	}
	if _, ok := item.Settings[planName]; ok {
		return
	}
	defaultSetting, ok := item.Settings[models.DefaultPlanName]
	if !ok {
		return
	}
	item.Settings[planName] = defaultSetting.Clone()
}

// Package planstate implements the item registry and the per-item plan
// directory as pure state transitions: every mutating operation takes the
// current snapshot and returns a new snapshot, leaving the input untouched.
package planstate

import (
	"strings"

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

// AddItem creates an item in the given category together with its plan
// directory entry, seeded with a zeroed default-plan setting. Adding an
// item that already exists in the category is a no-op.
func AddItem(s *models.PlanState, name string, category models.CategoryType, itemType models.ItemType) *models.PlanState {
	items := s.Category(category)
	if items == nil || !itemType.Valid() {
		return s
	}
	if _, exists := items[name]; exists {
		log.WithField("item", name).Debug("item already exists, ignoring add")
		return s
	}

	next := s.Clone()
	next.Category(category)[name] = &models.Item{
		Type: itemType,
		Settings: map[string]models.Setting{
			models.DefaultPlanName: models.ZeroSetting(itemType),
		},
	}
	next.Plans[name] = &models.PlanEntry{
		AvailablePlans: []string{models.DefaultPlanName},
		ActivePlan:     models.DefaultPlanName,
	}
	log.WithFields(
		logging.Field{Key: "item", Value: name},
		logging.Field{Key: "category", Value: string(category)},
		logging.Field{Key: "type", Value: string(itemType)},
	).Info("item added")
	return next
}

// GetSetting looks up the parameter setting of one item/plan pair. The
// second return value is false when the item or the plan-keyed setting is
// absent.
func GetSetting(s *models.PlanState, category models.CategoryType, itemName, planName string) (models.Setting, bool) {
	items := s.Category(category)
	if items == nil {
		return models.Setting{}, false
	}
	item, ok := items[itemName]
	if !ok {
		return models.Setting{}, false
	}
	setting, ok := item.Settings[planName]
	return setting, ok
}

// WriteSetting upserts the plan-keyed setting of an existing item. The item
// must already exist in the category.
func WriteSetting(s *models.PlanState, category models.CategoryType, itemName, planName string, setting models.Setting) (*models.PlanState, error) {
	items := s.Category(category)
	if items == nil {
		return s, errNotFound(msgItemNotFound)
	}
	if _, ok := items[itemName]; !ok {
		return s, errNotFound(msgItemNotFound)
	}

	next := s.Clone()
	item := next.Category(category)[itemName]
	if item.Settings == nil {
		item.Settings = map[string]models.Setting{}
	}
	item.Settings[planName] = setting.Clone()
	return next, nil
}

// SplitItemKey parses a composite "category-itemName" identifier. The
// category is the prefix up to the first hyphen; the remainder is the item
// name and may itself contain hyphens.
func SplitItemKey(key string) (models.CategoryType, string, error) {
	idx := strings.Index(key, "-")
	if idx < 0 {
		return "", "", errFormat("項目IDの形式が不正です: %s", key)
	}
	category := models.CategoryType(key[:idx])
	itemName := key[idx+1:]
	if !category.Valid() {
		return "", "", errFormat("不明なカテゴリです: %s", string(category))
	}
	if itemName == "" {
		return "", "", errFormat("項目IDの形式が不正です: %s", key)
	}
	return category, itemName, nil
}

// SaveAmountSetting writes a plan's parameter setting addressed by a
// composite "category-itemName" identifier.
func SaveAmountSetting(s *models.PlanState, itemKey, planName string, setting models.Setting) (*models.PlanState, error) {
	category, itemName, err := SplitItemKey(itemKey)
	if err != nil {
		return s, err
	}
	return WriteSetting(s, category, itemName, planName, setting)
}

// Package integrity cross-checks the plan directory against the item
// registry. All checks are pure reads over a snapshot; only the explicit
// repair entry point produces a new state.
package integrity

import (
	"fmt"

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

// ValidatePlanData checks every directory entry in isolation: orphaned
// active references and duplicate names are errors; a missing default plan
// is a warning. All three are fixable.
func ValidatePlanData(s *models.PlanState) models.ValidationReport {
	report := models.ValidationReport{IsValid: true, Errors: []models.Issue{}, Warnings: []models.Issue{}}

	for itemName, entry := range s.Plans {
		if !entry.HasPlan(entry.ActivePlan) {
			report.Errors = append(report.Errors, models.Issue{
				Kind:     models.IssueOrphanReference,
				Message:  fmt.Sprintf("アクティブプラン「%s」が利用可能プランに存在しません", entry.ActivePlan),
				ItemName: itemName,
				PlanName: entry.ActivePlan,
				Fixable:  true,
			})
		}
		for _, dup := range duplicateNames(entry.AvailablePlans) {
			report.Errors = append(report.Errors, models.Issue{
				Kind:     models.IssueDuplicatePlan,
				Message:  fmt.Sprintf("プラン「%s」が重複しています", dup),
				ItemName: itemName,
				PlanName: dup,
				Fixable:  true,
			})
		}
		if !entry.HasPlan(models.DefaultPlanName) {
			report.Warnings = append(report.Warnings, models.Issue{
				Kind:     models.IssueMissingPlan,
				Message:  "デフォルトプランが利用可能プランに存在しません",
				ItemName: itemName,
				PlanName: models.DefaultPlanName,
				Fixable:  true,
			})
		}
	}

	report.IsValid = len(report.Errors) == 0
	return report
}

// ValidatePlanReferences is the narrow reference check: orphaned active
// plans and entries with an empty available-plan list.
func ValidatePlanReferences(s *models.PlanState) models.ValidationReport {
	report := models.ValidationReport{IsValid: true, Errors: []models.Issue{}, Warnings: []models.Issue{}}

	for itemName, entry := range s.Plans {
		if len(entry.AvailablePlans) == 0 {
			report.Errors = append(report.Errors, models.Issue{
				Kind:     models.IssueMissingPlan,
				Message:  "利用可能なプランがありません",
				ItemName: itemName,
				Fixable:  true,
			})
			continue
		}
		if !entry.HasPlan(entry.ActivePlan) {
			report.Errors = append(report.Errors, models.Issue{
				Kind:     models.IssueOrphanReference,
				Message:  fmt.Sprintf("アクティブプラン「%s」が利用可能プランに存在しません", entry.ActivePlan),
				ItemName: itemName,
				PlanName: entry.ActivePlan,
				Fixable:  true,
			})
		}
	}

	report.IsValid = len(report.Errors) == 0
	return report
}

// duplicateNames returns each name that appears more than once, one entry
// per duplicated name, in first-duplicate order.
func duplicateNames(names []string) []string {
	seen := map[string]int{}
	var dups []string
	for _, name := range names {
		seen[name]++
		if seen[name] == 2 {
			dups = append(dups, name)
		}
	}
	return dups
}

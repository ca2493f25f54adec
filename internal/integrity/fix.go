package integrity

import (
	"github.com/sudat/cf-simu/internal/logging"
	"github.com/sudat/cf-simu/internal/models"
)

// FixDataIntegrityIssues collects the union of all current findings and,
// when autoFix is set, applies the per-kind repair on a fresh snapshot:
// orphaned active references reset to the default plan, missing defaults
// are inserted (creating the directory entry when needed), duplicates
// collapse to their first occurrence and dangling settings are removed.
// Unfixable issues are never touched and are always carried back.
//
// With autoFix unset no state is produced and every finding is returned as
// remaining.
func FixDataIntegrityIssues(s *models.PlanState, autoFix bool) (*models.PlanState, models.FixReport) {
	issues := collectIssues(s)

	if !autoFix {
		return s, models.FixReport{Success: false, FixedIssues: 0, RemainingIssues: issues}
	}

	next := s.Clone()
	report := models.FixReport{Success: true, RemainingIssues: []models.Issue{}}

	for _, issue := range issues {
		if !issue.Fixable {
			report.RemainingIssues = append(report.RemainingIssues, issue)
			continue
		}
		applyFix(next, issue)
		report.FixedIssues++
	}

	log.WithFields(
		logging.Field{Key: "fixed", Value: report.FixedIssues},
		logging.Field{Key: "remaining", Value: len(report.RemainingIssues)},
	).Info("integrity repair finished")
	return next, report
}

// collectIssues unions the findings of all three checks, deduplicated by
// kind, item, plan and category.
func collectIssues(s *models.PlanState) []models.Issue {
	var all []models.Issue

	data := ValidatePlanData(s)
	all = append(all, data.Errors...)
	all = append(all, data.Warnings...)

	refs := ValidatePlanReferences(s)
	all = append(all, refs.Errors...)

	consistency := CheckDataConsistency(s)
	all = append(all, consistency.Issues...)

	type key struct {
		kind     models.IssueKind
		item     string
		plan     string
		category models.CategoryType
	}
	seen := map[key]bool{}
	out := []models.Issue{}
	for _, issue := range all {
		k := key{issue.Kind, issue.ItemName, issue.PlanName, issue.Category}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, issue)
	}
	return out
}

// applyFix mutates the working snapshot for one fixable issue.
func applyFix(s *models.PlanState, issue models.Issue) {
	switch issue.Kind {
	case models.IssueOrphanReference:
		if entry, ok := s.Plans[issue.ItemName]; ok {
			entry.ActivePlan = models.DefaultPlanName
		}
	case models.IssueMissingPlan:
		entry, ok := s.Plans[issue.ItemName]
		if !ok {
			s.Plans[issue.ItemName] = &models.PlanEntry{
				AvailablePlans: []string{models.DefaultPlanName},
				ActivePlan:     models.DefaultPlanName,
			}
			return
		}
		if !entry.HasPlan(models.DefaultPlanName) {
			entry.AvailablePlans = append([]string{models.DefaultPlanName}, entry.AvailablePlans...)
		}
	case models.IssueDuplicatePlan:
		if entry, ok := s.Plans[issue.ItemName]; ok {
			entry.AvailablePlans = dedupe(entry.AvailablePlans)
		}
	case models.IssueInconsistentData:
		if items := s.Category(issue.Category); items != nil {
			if item, ok := items[issue.ItemName]; ok {
				delete(item.Settings, issue.PlanName)
			}
		}
	}
}

// dedupe collapses repeated names to their first occurrence, keeping order.
func dedupe(names []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

package integrity

import (
	"fmt"

	"github.com/sudat/cf-simu/internal/models"
)

// CheckDataConsistency cross-checks directory entries against the actual
// item registries: directory entries without item data, item data without a
// directory entry, settings keyed by plans the directory does not list, and
// items with an unknown type tag. The last kind is structural and cannot be
// auto-repaired.
func CheckDataConsistency(s *models.PlanState) models.ConsistencyReport {
	report := models.ConsistencyReport{IsConsistent: true, Issues: []models.Issue{}}

	for itemName, entry := range s.Plans {
		report.Summary.TotalPlans += len(entry.AvailablePlans)

		if _, _, found := s.FindItem(itemName); !found {
			report.Issues = append(report.Issues, models.Issue{
				Kind:     models.IssueOrphanReference,
				Message:  fmt.Sprintf("項目「%s」のプラン定義に対応する項目データがありません", itemName),
				ItemName: itemName,
				Fixable:  true,
			})
			report.Summary.OrphanReferences++
		}
		for _, dup := range duplicateNames(entry.AvailablePlans) {
			report.Issues = append(report.Issues, models.Issue{
				Kind:     models.IssueDuplicatePlan,
				Message:  fmt.Sprintf("プラン「%s」が重複しています", dup),
				ItemName: itemName,
				PlanName: dup,
				Fixable:  true,
			})
			report.Summary.DuplicatePlans++
		}
	}

	for _, category := range models.AllCategories() {
		for itemName, item := range s.Category(category) {
			report.Summary.TotalItems++

			entry, hasEntry := s.Plans[itemName]
			if !hasEntry {
				report.Issues = append(report.Issues, models.Issue{
					Kind:     models.IssueMissingPlan,
					Message:  fmt.Sprintf("項目「%s」にプラン定義がありません", itemName),
					ItemName: itemName,
					Category: category,
					Fixable:  true,
				})
			} else {
				for planName := range item.Settings {
					if !entry.HasPlan(planName) {
						report.Issues = append(report.Issues, models.Issue{
							Kind:     models.IssueInconsistentData,
							Message:  fmt.Sprintf("項目「%s」に未定義プラン「%s」の設定が残っています", itemName, planName),
							ItemName: itemName,
							PlanName: planName,
							Category: category,
							Fixable:  true,
						})
					}
				}
			}

			if !item.Type.Valid() {
				report.Issues = append(report.Issues, models.Issue{
					Kind:     models.IssueInvalidData,
					Message:  fmt.Sprintf("項目「%s」の型「%s」が不正です", itemName, string(item.Type)),
					ItemName: itemName,
					Category: category,
					Fixable:  false,
				})
				report.Summary.InvalidData++
			}
		}
	}

	report.IsConsistent = len(report.Issues) == 0
	return report
}

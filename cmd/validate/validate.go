// Package validate handles the integrity check command
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sudat/cf-simu/cmd/common"
	"github.com/sudat/cf-simu/cmd/root"
	"github.com/sudat/cf-simu/internal/models"
)

var fix bool

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Check plan data integrity",
	Long: `Cross-check the plan directory against the item registry and report
orphaned references, duplicates, missing defaults and dangling settings.
With --fix, repairable findings are fixed and the state is saved.`,
	Run: validateFunc,
}

func init() {
	Cmd.Flags().BoolVar(&fix, "fix", false, "Repair fixable findings")
}

func printIssues(label string, issues []models.Issue) {
	for _, issue := range issues {
		fmt.Printf("%s [%s] %s", label, issue.Kind, issue.Message)
		if issue.ItemName != "" {
			fmt.Printf(" (item: %s)", issue.ItemName)
		}
		fmt.Println()
	}
}

func validateFunc(cmd *cobra.Command, args []string) {
	st, fileStore := common.LoadStore(root.SharedFlags.StateFile, root.Log)

	data := st.ValidatePlanData()
	printIssues("error", data.Errors)
	printIssues("warning", data.Warnings)

	refs := st.ValidatePlanReferences()
	printIssues("error", refs.Errors)

	consistency := st.CheckDataConsistency()
	printIssues("issue", consistency.Issues)
	fmt.Printf("items: %d, plans: %d, orphans: %d, duplicates: %d, invalid: %d\n",
		consistency.Summary.TotalItems,
		consistency.Summary.TotalPlans,
		consistency.Summary.OrphanReferences,
		consistency.Summary.DuplicatePlans,
		consistency.Summary.InvalidData)

	if data.IsValid && refs.IsValid && consistency.IsConsistent {
		root.Log.Info("Plan data is consistent")
		return
	}

	if !fix {
		root.Log.Warn("Findings detected; run with --fix to repair")
		return
	}

	report := st.FixDataIntegrityIssues(true)
	common.SaveStore(st, fileStore, root.Log)
	root.Log.Infof("Fixed %d issue(s), %d remaining", report.FixedIssues, len(report.RemainingIssues))
	printIssues("remaining", report.RemainingIssues)
}

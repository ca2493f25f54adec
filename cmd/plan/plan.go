// Package plan handles plan directory commands
package plan

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sudat/cf-simu/cmd/common"
	"github.com/sudat/cf-simu/cmd/root"
	"github.com/sudat/cf-simu/internal/planstate"
)

// Cmd represents the plan command
var Cmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage per-item plans",
	Long:  `Manage the named parameter plans of individual items.`,
}

var addCmd = &cobra.Command{
	Use:   "add <item> <plan>",
	Short: "Add a named plan to an item",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		mutate(func(st *planstate.Store) planstate.Result {
			return st.AddItemPlan(args[0], args[1])
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <item> <plan>",
	Short: "Delete a plan from an item",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		mutate(func(st *planstate.Store) planstate.Result {
			return st.DeleteItemPlan(args[0], args[1])
		})
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <item> <old> <new>",
	Short: "Rename an item's plan",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		mutate(func(st *planstate.Store) planstate.Result {
			return st.RenameItemPlan(args[0], args[1], args[2])
		})
	},
}

var activateCmd = &cobra.Command{
	Use:   "activate <item> <plan>",
	Short: "Select an item's active plan",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		mutate(func(st *planstate.Store) planstate.Result {
			return st.SetItemActivePlan(args[0], args[1])
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list <item>",
	Short: "List an item's plans",
	Args:  cobra.ExactArgs(1),
	Run:   listFunc,
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(renameCmd)
	Cmd.AddCommand(activateCmd)
	Cmd.AddCommand(listCmd)
}

// mutate runs one store operation and persists the snapshot on success.
func mutate(op func(*planstate.Store) planstate.Result) {
	st, fileStore := common.LoadStore(root.SharedFlags.StateFile, root.Log)
	result := op(st)
	if !result.Success {
		root.Log.Fatalf("Operation failed: %s", result.Error)
	}
	common.SaveStore(st, fileStore, root.Log)
	root.Log.Info("Plan operation completed")
}

func listFunc(cmd *cobra.Command, args []string) {
	st, _ := common.LoadStore(root.SharedFlags.StateFile, root.Log)

	active := st.GetItemActivePlan(args[0])
	for _, p := range st.GetItemPlans(args[0]) {
		marker := " "
		if p.Name == active.Name {
			marker = "*"
		}
		fmt.Printf("%s %s (%s)\n", marker, p.Name, p.ID)
	}
}

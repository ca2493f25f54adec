// Package item handles item registry commands
package item

import (
	"github.com/spf13/cobra"

	"github.com/sudat/cf-simu/cmd/common"
	"github.com/sudat/cf-simu/cmd/root"
	"github.com/sudat/cf-simu/internal/models"
)

var (
	category string
	itemType string
)

// Cmd represents the item command
var Cmd = &cobra.Command{
	Use:   "item",
	Short: "Manage financial items",
	Long:  `Manage income, expense, asset and debt items.`,
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new item with its default plan",
	Args:  cobra.ExactArgs(1),
	Run:   addFunc,
}

func init() {
	addCmd.Flags().StringVarP(&category, "category", "c", "", "Category: income, expense, asset or debt")
	addCmd.Flags().StringVarP(&itemType, "type", "t", "", "Item type: flow or stock")
	_ = addCmd.MarkFlagRequired("category")
	_ = addCmd.MarkFlagRequired("type")
	Cmd.AddCommand(addCmd)
}

func addFunc(cmd *cobra.Command, args []string) {
	name := args[0]
	cat := models.CategoryType(category)
	typ := models.ItemType(itemType)
	if !cat.Valid() {
		root.Log.Fatalf("Unknown category: %s", category)
	}
	if !typ.Valid() {
		root.Log.Fatalf("Unknown item type: %s", itemType)
	}

	st, fileStore := common.LoadStore(root.SharedFlags.StateFile, root.Log)
	st.AddItem(name, cat, typ)
	common.SaveStore(st, fileStore, root.Log)
	root.Log.Infof("Item %s added to %s", name, category)
}

package planstate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudat/cf-simu/internal/models"
)

func TestStore_SuccessfulMutation(t *testing.T) {
	st := NewStore()
	st.AddItem("給与", models.CategoryIncome, models.ItemFlow)

	res := st.AddItemPlan("給与", "プランA")
	assert.True(t, res.Success)
	assert.Empty(t, res.Error)
	assert.Empty(t, st.LastError())
	assert.True(t, st.PlanExists("給与", "プランA"))
}

func TestStore_FailedMutationKeepsState(t *testing.T) {
	st := NewStore()
	st.AddItem("給与", models.CategoryIncome, models.ItemFlow)

	res := st.DeleteItemPlan("給与", models.DefaultPlanName)
	assert.False(t, res.Success)
	assert.Equal(t, "デフォルトプランは削除できません", res.Error)
	assert.Equal(t, "デフォルトプランは削除できません", st.LastError())
	assert.True(t, st.PlanExists("給与", models.DefaultPlanName))
}

// The retained error survives later successful operations until it is
// explicitly cleared.
func TestStore_LastErrorLifecycle(t *testing.T) {
	st := NewStore()
	st.AddItem("給与", models.CategoryIncome, models.ItemFlow)

	st.AddItemPlan("給与", "")
	assert.Equal(t, "プラン名を入力してください", st.LastError())

	res := st.AddItemPlan("給与", "プランA")
	assert.True(t, res.Success)
	assert.Equal(t, "プラン名を入力してください", st.LastError())

	st.ClearError()
	assert.Empty(t, st.LastError())
}

func TestStore_DuplicateItemAddReportsSuccess(t *testing.T) {
	st := NewStore()
	assert.True(t, st.AddItem("給与", models.CategoryIncome, models.ItemFlow).Success)
	assert.True(t, st.AddItem("給与", models.CategoryIncome, models.ItemFlow).Success)
	assert.Empty(t, st.LastError())
}

func TestStore_EndToEndScenario(t *testing.T) {
	st := NewStore()
	st.AddItem("給与", models.CategoryIncome, models.ItemFlow)

	res := st.SaveAmountSetting("income-給与", models.DefaultPlanName, models.NewFlowSetting(models.FlowSetting{
		StartYear:  2024,
		Amount:     decimal.NewFromInt(500000),
		Frequency:  models.FrequencyMonthly,
		GrowthRate: decimal.NewFromInt(3),
	}))
	require.True(t, res.Success)

	require.True(t, st.AddItemPlan("給与", "昇進プラン").Success)
	res = st.SaveAmountSetting("income-給与", "昇進プラン", models.NewFlowSetting(models.FlowSetting{
		StartYear:  2024,
		Amount:     decimal.NewFromInt(600000),
		Frequency:  models.FrequencyMonthly,
		GrowthRate: decimal.NewFromInt(3),
	}))
	require.True(t, res.Success)

	// Default plan projects the base salary.
	points := st.CalculateSimulation(0, 2024)
	require.Len(t, points, 1)
	assert.Equal(t, int64(6000000), points[0].Income)

	// Switching the active plan switches the projection input.
	require.True(t, st.SetItemActivePlan("給与", "昇進プラン").Success)
	points = st.CalculateSimulation(0, 2024)
	assert.Equal(t, int64(7200000), points[0].Income)

	active := st.GetItemActivePlan("給与")
	assert.Equal(t, "昇進プラン", active.Name)
	assert.False(t, active.IsDefault)
}

func TestStore_RenameAndDelete(t *testing.T) {
	st := NewStore()
	st.AddItem("給与", models.CategoryIncome, models.ItemFlow)
	require.True(t, st.AddItemPlan("給与", "旧名").Success)

	assert.True(t, st.RenameItemPlan("給与", "旧名", "新名").Success)
	assert.False(t, st.PlanExists("給与", "旧名"))
	assert.True(t, st.PlanExists("給与", "新名"))

	assert.True(t, st.DeleteItemPlan("給与", "新名").Success)
	assert.False(t, st.PlanExists("給与", "新名"))
}

func TestNewStoreWithState(t *testing.T) {
	// A partially decoded snapshot (nil maps) must be normalized.
	st := NewStoreWithState(&models.PlanState{})
	assert.NotNil(t, st.State().Plans)
	assert.NotNil(t, st.State().Incomes)

	st = NewStoreWithState(nil)
	assert.NotNil(t, st.State())
}

func TestStore_ValidationDelegation(t *testing.T) {
	st := NewStore()
	st.AddItem("給与", models.CategoryIncome, models.ItemFlow)
	st.State().Plans["給与"].ActivePlan = "消えたプラン"

	report := st.ValidatePlanData()
	assert.False(t, report.IsValid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, models.IssueOrphanReference, report.Errors[0].Kind)

	fix := st.FixDataIntegrityIssues(true)
	assert.True(t, fix.Success)
	assert.Equal(t, models.DefaultPlanName, st.State().Plans["給与"].ActivePlan)
	assert.True(t, st.ValidatePlanData().IsValid)
}

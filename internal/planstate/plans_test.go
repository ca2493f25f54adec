package planstate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudat/cf-simu/internal/models"
)

// newStateWithItem builds a snapshot containing one registered flow item.
func newStateWithItem(t *testing.T, name string) *models.PlanState {
	t.Helper()
	s := AddItem(models.NewPlanState(), name, models.CategoryIncome, models.ItemFlow)
	require.Contains(t, s.Plans, name)
	return s
}

func TestAddPlan(t *testing.T) {
	tests := []struct {
		name     string
		itemName string
		planName string
		wantErr  string
	}{
		{
			name:     "valid plan name",
			itemName: "給与",
			planName: "楽観プラン",
		},
		{
			name:     "empty item name",
			itemName: "",
			planName: "プランA",
			wantErr:  "項目を指定してください",
		},
		{
			name:     "empty plan name",
			itemName: "給与",
			planName: "",
			wantErr:  "プラン名を入力してください",
		},
		{
			name:     "whitespace-only plan name",
			itemName: "給与",
			planName: "   ",
			wantErr:  "プラン名を入力してください",
		},
		{
			name:     "plan name over 50 runes",
			itemName: "給与",
			planName: strings.Repeat("あ", 51),
			wantErr:  "プラン名は50文字以内で入力してください",
		},
		{
			name:     "plan name at exactly 50 runes",
			itemName: "給与",
			planName: strings.Repeat("あ", 50),
		},
		{
			name:     "unknown item",
			itemName: "存在しない項目",
			planName: "プランA",
			wantErr:  "指定された項目が見つかりません",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStateWithItem(t, "給与")
			next, err := AddPlan(s, tt.itemName, tt.planName)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Same(t, s, next, "failed transition must return the input state")
				return
			}
			require.NoError(t, err)
			assert.True(t, next.Plans[tt.itemName].HasPlan(strings.TrimSpace(tt.planName)))
			// The input snapshot is untouched.
			assert.Equal(t, []string{models.DefaultPlanName}, s.Plans["給与"].AvailablePlans)
		})
	}
}

func TestAddPlan_Duplicate(t *testing.T) {
	s := newStateWithItem(t, "給与")
	s, err := AddPlan(s, "給与", "プランA")
	require.NoError(t, err)

	_, err = AddPlan(s, "給与", "プランA")
	assert.EqualError(t, err, "同じ名前のプランが既に存在します")

	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, CodeDuplicate, opErr.Code)
}

func TestAddPlan_DuplicateOfDefault(t *testing.T) {
	s := newStateWithItem(t, "給与")
	_, err := AddPlan(s, "給与", models.DefaultPlanName)
	assert.EqualError(t, err, "同じ名前のプランが既に存在します")
}

func TestAddPlan_TrimsName(t *testing.T) {
	s := newStateWithItem(t, "給与")
	next, err := AddPlan(s, "給与", "  プランA  ")
	require.NoError(t, err)
	assert.True(t, next.Plans["給与"].HasPlan("プランA"))
	assert.False(t, next.Plans["給与"].HasPlan("  プランA  "))
}

func TestAddPlan_ClonesDefaultSetting(t *testing.T) {
	s := newStateWithItem(t, "給与")
	next, err := AddPlan(s, "給与", "プランA")
	require.NoError(t, err)

	item := next.Incomes["給与"]
	require.Contains(t, item.Settings, "プランA")
	assert.Equal(t, item.Settings[models.DefaultPlanName], item.Settings["プランA"])
}

// Plans are scoped per item: adding a plan never leaks into sibling items,
// and the same name on two items yields independent plans with distinct ids.
func TestAddPlan_ItemIsolation(t *testing.T) {
	s := AddItem(models.NewPlanState(), "給与", models.CategoryIncome, models.ItemFlow)
	s = AddItem(s, "副業", models.CategoryIncome, models.ItemFlow)

	s, err := AddPlan(s, "給与", "共通プラン")
	require.NoError(t, err)
	assert.False(t, s.Plans["副業"].HasPlan("共通プラン"))

	s, err = AddPlan(s, "副業", "共通プラン")
	require.NoError(t, err)

	salaryPlans := GetAvailablePlans(s, "給与")
	sidePlans := GetAvailablePlans(s, "副業")
	require.Len(t, salaryPlans, 2)
	require.Len(t, sidePlans, 2)
	assert.Equal(t, "共通プラン", salaryPlans[1].Name)
	assert.Equal(t, "共通プラン", sidePlans[1].Name)
	assert.NotEqual(t, salaryPlans[1].ID, sidePlans[1].ID)
}

func TestDeletePlan(t *testing.T) {
	s := newStateWithItem(t, "給与")
	s, err := AddPlan(s, "給与", "プランA")
	require.NoError(t, err)

	next, err := DeletePlan(s, "給与", "プランA")
	require.NoError(t, err)
	assert.False(t, next.Plans["給与"].HasPlan("プランA"))
	assert.True(t, s.Plans["給与"].HasPlan("プランA"), "input snapshot must be untouched")
}

func TestDeletePlan_DefaultProtected(t *testing.T) {
	s := newStateWithItem(t, "給与")
	_, err := DeletePlan(s, "給与", models.DefaultPlanName)
	assert.EqualError(t, err, "デフォルトプランは削除できません")

	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, CodeProtected, opErr.Code)
}

func TestDeletePlan_NotFoundBeforeProtection(t *testing.T) {
	s := newStateWithItem(t, "給与")

	_, err := DeletePlan(s, "不明", models.DefaultPlanName)
	assert.EqualError(t, err, "指定された項目が見つかりません")

	_, err = DeletePlan(s, "給与", "存在しないプラン")
	assert.EqualError(t, err, "指定されたプランが見つかりません")
}

func TestDeletePlan_ActiveResetsToDefault(t *testing.T) {
	s := newStateWithItem(t, "給与")
	s, err := AddPlan(s, "給与", "プランA")
	require.NoError(t, err)
	s, err = SetActivePlan(s, "給与", "プランA")
	require.NoError(t, err)

	next, err := DeletePlan(s, "給与", "プランA")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPlanName, next.Plans["給与"].ActivePlan)
}

// Deleting a plan keeps its plan-keyed setting: the dangling setting is
// later reported by the consistency check, not silently dropped here.
func TestDeletePlan_KeepsSetting(t *testing.T) {
	s := newStateWithItem(t, "給与")
	s, err := AddPlan(s, "給与", "プランA")
	require.NoError(t, err)

	next, err := DeletePlan(s, "給与", "プランA")
	require.NoError(t, err)
	assert.Contains(t, next.Incomes["給与"].Settings, "プランA")
}

func TestRenamePlan(t *testing.T) {
	s := newStateWithItem(t, "給与")
	s, err := AddPlan(s, "給与", "旧プラン")
	require.NoError(t, err)

	next, err := RenamePlan(s, "給与", "旧プラン", "新プラン")
	require.NoError(t, err)
	assert.False(t, next.Plans["給与"].HasPlan("旧プラン"))
	assert.True(t, next.Plans["給与"].HasPlan("新プラン"))
}

func TestRenamePlan_Errors(t *testing.T) {
	tests := []struct {
		name    string
		item    string
		oldName string
		newName string
		wantErr string
	}{
		{
			name:    "empty new name checked first",
			item:    "給与",
			oldName: models.DefaultPlanName,
			newName: "",
			wantErr: "プラン名を入力してください",
		},
		{
			name:    "new name too long",
			item:    "給与",
			oldName: "旧プラン",
			newName: strings.Repeat("a", 51),
			wantErr: "プラン名は50文字以内で入力してください",
		},
		{
			name:    "default plan protected",
			item:    "給与",
			oldName: models.DefaultPlanName,
			newName: "改名",
			wantErr: "デフォルトプランの名前は変更できません",
		},
		{
			name:    "unknown item",
			item:    "不明",
			oldName: "旧プラン",
			newName: "改名",
			wantErr: "指定された項目が見つかりません",
		},
		{
			name:    "unknown old plan",
			item:    "給与",
			oldName: "存在しない",
			newName: "改名",
			wantErr: "指定されたプランが見つかりません",
		},
		{
			name:    "new name already taken",
			item:    "給与",
			oldName: "旧プラン",
			newName: "別プラン",
			wantErr: "同じ名前のプランが既に存在します",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStateWithItem(t, "給与")
			s, err := AddPlan(s, "給与", "旧プラン")
			require.NoError(t, err)
			s, err = AddPlan(s, "給与", "別プラン")
			require.NoError(t, err)

			_, err = RenamePlan(s, tt.item, tt.oldName, tt.newName)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestRenamePlan_UpdatesActiveAndSetting(t *testing.T) {
	s := newStateWithItem(t, "給与")
	s, err := AddPlan(s, "給与", "旧プラン")
	require.NoError(t, err)
	s, err = SetActivePlan(s, "給与", "旧プラン")
	require.NoError(t, err)

	next, err := RenamePlan(s, "給与", "旧プラン", "新プラン")
	require.NoError(t, err)

	assert.Equal(t, "新プラン", next.Plans["給与"].ActivePlan)
	item := next.Incomes["給与"]
	assert.NotContains(t, item.Settings, "旧プラン")
	assert.Contains(t, item.Settings, "新プラン")
}

func TestSetActivePlan(t *testing.T) {
	s := newStateWithItem(t, "給与")
	s, err := AddPlan(s, "給与", "プランA")
	require.NoError(t, err)

	next, err := SetActivePlan(s, "給与", "プランA")
	require.NoError(t, err)
	assert.Equal(t, "プランA", next.Plans["給与"].ActivePlan)
	assert.Equal(t, models.DefaultPlanName, s.Plans["給与"].ActivePlan)
}

func TestSetActivePlan_Errors(t *testing.T) {
	s := newStateWithItem(t, "給与")

	_, err := SetActivePlan(s, "不明", models.DefaultPlanName)
	assert.EqualError(t, err, "指定された項目が見つかりません")

	_, err = SetActivePlan(s, "給与", "存在しないプラン")
	assert.EqualError(t, err, "指定されたプランが利用できません")
}

func TestSetActivePlan_MaterializesSetting(t *testing.T) {
	s := newStateWithItem(t, "給与")
	s, err := AddPlan(s, "給与", "プランA")
	require.NoError(t, err)
	// Remove the cloned setting so activation has to materialize again.
	delete(s.Incomes["給与"].Settings, "プランA")

	next, err := SetActivePlan(s, "給与", "プランA")
	require.NoError(t, err)
	item := next.Incomes["給与"]
	require.Contains(t, item.Settings, "プランA")
	assert.Equal(t, item.Settings[models.DefaultPlanName], item.Settings["プランA"])
}

func TestGetAvailablePlans(t *testing.T) {
	s := newStateWithItem(t, "給与")
	s, err := AddPlan(s, "給与", "プランA")
	require.NoError(t, err)
	s, err = AddPlan(s, "給与", "プランB")
	require.NoError(t, err)

	plans := GetAvailablePlans(s, "給与")
	require.Len(t, plans, 3)

	assert.True(t, plans[0].IsDefault)
	assert.Equal(t, "給与-default", plans[0].ID)
	assert.Equal(t, models.DefaultPlanName, plans[0].Name)

	assert.Equal(t, "プランA", plans[1].Name)
	assert.Equal(t, "給与-plan-1", plans[1].ID)
	assert.Equal(t, "プランB", plans[2].Name)
	assert.Equal(t, "給与-plan-2", plans[2].ID)
}

func TestGetAvailablePlans_UnknownItem(t *testing.T) {
	s := models.NewPlanState()
	plans := GetAvailablePlans(s, "未登録")
	require.Len(t, plans, 1)
	assert.True(t, plans[0].IsDefault)
	assert.Equal(t, "未登録-default", plans[0].ID)
	assert.Equal(t, "未登録", plans[0].ItemName)
}

func TestGetActivePlan(t *testing.T) {
	s := newStateWithItem(t, "給与")

	// Default selection.
	d := GetActivePlan(s, "給与")
	assert.True(t, d.IsDefault)
	assert.Equal(t, models.DefaultPlanName, d.Name)

	// Custom selection.
	s, err := AddPlan(s, "給与", "プランA")
	require.NoError(t, err)
	s, err = SetActivePlan(s, "給与", "プランA")
	require.NoError(t, err)
	a := GetActivePlan(s, "給与")
	assert.False(t, a.IsDefault)
	assert.Equal(t, "プランA", a.Name)
	assert.Equal(t, "給与-plan-1", a.ID)

	// Unknown items fall back to the synthetic default.
	u := GetActivePlan(s, "未登録")
	assert.True(t, u.IsDefault)
}

func TestPlanExists(t *testing.T) {
	s := newStateWithItem(t, "給与")
	s, err := AddPlan(s, "給与", "プランA")
	require.NoError(t, err)

	assert.True(t, PlanExists(s, "給与", models.DefaultPlanName))
	assert.True(t, PlanExists(s, "給与", "プランA"))
	assert.False(t, PlanExists(s, "給与", "プランB"))

	// The default plan exists even for items the directory never saw.
	assert.True(t, PlanExists(s, "未登録", models.DefaultPlanName))
	assert.False(t, PlanExists(s, "未登録", "プランA"))
}

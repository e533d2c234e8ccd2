package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triage-chatbot/internal/bank"
	"triage-chatbot/internal/model"
)

func TestGroupFromItem_Rendering(t *testing.T) {
	bnk := serviceBank()
	s := NewBatchService(bnk, newTestRanker(bnk, &fakeEncoder{}))

	g := s.GroupFromItem(bnk.ItemByID("DEP_core"))

	assert.Equal(t, "خلق افسرده و بی‌علاقگی", g.Title)
	assert.Equal(t, "depression", g.DisorderID)
	require.Len(t, g.Questions, 3)

	gw := g.Questions[0]
	assert.Equal(t, "DEP_core_gw", gw.QID)
	assert.Equal(t, model.KindYesNo, gw.Kind)
	assert.Contains(t, gw.Text, "غمگینی؟")
	assert.Contains(t, gw.Text, "🕒 بازهٔ مدنظر: دو هفتهٔ اخیر")

	lk := g.Questions[1]
	assert.Equal(t, model.KindLikert, lk.Kind)
	require.NotNil(t, lk.Min)
	require.NotNil(t, lk.Max)
	assert.Equal(t, 0, *lk.Min)
	assert.Equal(t, 3, *lk.Max)

	yn := g.Questions[2]
	assert.Equal(t, model.KindYesNo, yn.Kind)
}

func TestGroupFromItem_OpenBecomesText(t *testing.T) {
	bnk := serviceBank()
	s := NewBatchService(bnk, newTestRanker(bnk, &fakeEncoder{}))

	g := s.GroupFromItem(bnk.ItemByID("ANX_PANIC"))
	require.Len(t, g.Questions, 3)
	assert.Equal(t, model.KindText, g.Questions[2].Kind)
	assert.Equal(t, freeTextPlaceholder, g.Questions[2].Placeholder)
}

func TestBuild_FamilyExpansionAndDedup(t *testing.T) {
	items := []model.QuestionItem{
		{ID: "A1", DisorderID: "anxiety", Symptom: "اضطراب فراگیر",
			Gateway: model.GatewayQuestion{ID: "A1_gw", Text: "؟"}},
		{ID: "A2", DisorderID: "anxiety", Symptom: "حملات پانیک",
			Gateway: model.GatewayQuestion{ID: "A2_gw", Text: "؟"}},
		{ID: "A3", DisorderID: "anxiety", Symptom: "اضطراب فراگیر (نسخهٔ دوم)",
			Gateway: model.GatewayQuestion{ID: "A3_gw", Text: "؟"}},
		{ID: "A4", DisorderID: "anxiety", Symptom: "اضطراب سلامتی",
			Gateway: model.GatewayQuestion{ID: "A4_gw", Text: "؟"}},
	}
	bnk := bank.New(items, nil, nil)
	enc := &fakeEncoder{vectors: map[string][]float32{"متن": queryVec}}
	s := NewBatchService(bnk, newTestRanker(bnk, enc))

	seed := bnk.ItemByID("A1")
	picked, groups, err := s.Build(context.Background(), "متن", []*model.QuestionItem{seed}, 5, 12)
	require.NoError(t, err)

	// A3 duplicates A1's normalized title and must be dropped
	require.Len(t, picked, 3)
	ids := []string{picked[0].ID, picked[1].ID, picked[2].ID}
	assert.NotContains(t, ids, "A3")
	assert.Len(t, groups, 3)
}

func TestBuild_PerFamilyCap(t *testing.T) {
	items := []model.QuestionItem{
		{ID: "A1", DisorderID: "anxiety", Symptom: "عنوان یک", Gateway: model.GatewayQuestion{ID: "g1", Text: "؟"}},
		{ID: "A2", DisorderID: "anxiety", Symptom: "عنوان دو", Gateway: model.GatewayQuestion{ID: "g2", Text: "؟"}},
		{ID: "A3", DisorderID: "anxiety", Symptom: "عنوان سه", Gateway: model.GatewayQuestion{ID: "g3", Text: "؟"}},
	}
	bnk := bank.New(items, nil, nil)
	enc := &fakeEncoder{vectors: map[string][]float32{"متن": queryVec}}
	s := NewBatchService(bnk, newTestRanker(bnk, enc))

	picked, _, err := s.Build(context.Background(), "متن", []*model.QuestionItem{bnk.ItemByID("A1")}, 2, 12)
	require.NoError(t, err)
	assert.Len(t, picked, 2)
}

func TestBuild_MaxGroupsBetweenSeedsAllowsOvershoot(t *testing.T) {
	var items []model.QuestionItem
	for _, fam := range []string{"famA", "famB"} {
		for i := 0; i < 4; i++ {
			id := fam + string(rune('1'+i))
			items = append(items, model.QuestionItem{
				ID: id, DisorderID: fam, Symptom: "عنوان " + id,
				Gateway: model.GatewayQuestion{ID: id + "_gw", Text: "؟"},
			})
		}
	}
	bnk := bank.New(items, nil, nil)
	enc := &fakeEncoder{vectors: map[string][]float32{"متن": queryVec}}
	s := NewBatchService(bnk, newTestRanker(bnk, enc))

	seeds := []*model.QuestionItem{bnk.ItemByID("famA1"), bnk.ItemByID("famB1")}
	picked, _, err := s.Build(context.Background(), "متن", seeds, 4, 3)
	require.NoError(t, err)

	// the first family fills past the cap; the second seed never runs
	assert.Len(t, picked, 4)
	for _, it := range picked {
		assert.Equal(t, "famA", it.DisorderID)
	}
}

func TestBuild_FamilySortedBySimilarity(t *testing.T) {
	items := []model.QuestionItem{
		{ID: "A1", DisorderID: "anxiety", Symptom: "عنوان کم", Gateway: model.GatewayQuestion{ID: "g1", Text: "؟"}},
		{ID: "A2", DisorderID: "anxiety", Symptom: "عنوان زیاد", Gateway: model.GatewayQuestion{ID: "g2", Text: "؟"}},
	}
	bnk := bank.New(items, nil, nil)
	enc := &fakeEncoder{vectors: map[string][]float32{
		"متن":        queryVec,
		"عنوان کم":   vec(0.2),
		"عنوان زیاد": vec(0.9),
	}}
	s := NewBatchService(bnk, newTestRanker(bnk, enc))

	picked, _, err := s.Build(context.Background(), "متن", []*model.QuestionItem{bnk.ItemByID("A1")}, 5, 12)
	require.NoError(t, err)
	require.Len(t, picked, 2)
	assert.Equal(t, "A2", picked[0].ID)
}

func TestEnsureBipolarGateway(t *testing.T) {
	bnk := serviceBank()
	s := NewBatchService(bnk, newTestRanker(bnk, &fakeEncoder{}))

	plain := []model.QuestionGroup{{Title: "خلق افسرده و بی‌علاقگی", DisorderID: "depression"}}

	// depressive phrasing prepends the mania screen
	out := s.EnsureBipolarGatewayIfDepLike("خیلی غمگینم", plain)
	require.Len(t, out, 2)
	assert.Equal(t, "bipolar", out[0].DisorderID)

	// no depressive phrasing, no change
	out = s.EnsureBipolarGatewayIfDepLike("مشکل خواب دارم", plain)
	assert.Len(t, out, 1)

	// an existing bipolar-flavored title blocks a second insertion
	withBipolar := []model.QuestionGroup{
		{Title: "دوره‌های خلق بالا (مانیا/هیپومانیا)", DisorderID: "bipolar"},
		{Title: "خلق افسرده و بی‌علاقگی", DisorderID: "depression"},
	}
	out = s.EnsureBipolarGatewayIfDepLike("خیلی غمگینم", withBipolar)
	assert.Len(t, out, 2)

	// manic phrasing uses the same repair
	out = s.EnsureBipolarGatewayIfManiaLike("خیلی پرانرژی‌ام", plain)
	require.Len(t, out, 2)
	assert.Equal(t, "bipolar", out[0].DisorderID)
}

package service

import (
	"context"
	"errors"
	"math"

	"triage-chatbot/internal/bank"
	"triage-chatbot/internal/embedding"
	"triage-chatbot/internal/model"
)

// fakeEncoder returns fixed vectors per text. Unknown texts get a vector
// orthogonal to the canonical query axis, so they score zero similarity.
type fakeEncoder struct {
	vectors map[string][]float32
	fail    bool
	calls   int
}

func (f *fakeEncoder) Encode(ctx context.Context, texts []string) ([][]float32, error) {
	f.calls++
	if f.fail {
		return nil, errors.New("encode unavailable")
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		if v, ok := f.vectors[t]; ok {
			out[i] = v
		} else {
			out[i] = []float32{0, 1}
		}
	}
	return out, nil
}

func yesno(id, text string) model.FollowupQuestion {
	return model.FollowupQuestion{ID: id, Text: text, ResponseType: model.ResponseYesNo}
}

func likert(id, text string) model.FollowupQuestion {
	return model.FollowupQuestion{ID: id, Text: text, ResponseType: model.ResponseLikert03}
}

func open(id, text string) model.FollowupQuestion {
	return model.FollowupQuestion{ID: id, Text: text, ResponseType: model.ResponseOpen}
}

// serviceItems is a compact catalog covering the families the pipeline
// tests exercise.
func serviceItems() []model.QuestionItem {
	return []model.QuestionItem{
		{
			ID: "DEP_core", DisorderID: "depression", Symptom: "خلق افسرده و بی‌علاقگی",
			Gateway:   model.GatewayQuestion{ID: "DEP_core_gw", Text: "غمگینی؟", TimeframeHint: "دو هفتهٔ اخیر"},
			Followups: []model.FollowupQuestion{likert("DEP_core_f1", "شدت؟"), yesno("DEP_core_f2", "بی‌ارزشی؟")},
		},
		{
			ID: "BP_mania_hypomania_screen", DisorderID: "bipolar", Symptom: "دوره‌های خلق بالا (مانیا/هیپومانیا)",
			Gateway:   model.GatewayQuestion{ID: "BP_gw", Text: "خلق بالا؟"},
			Followups: []model.FollowupQuestion{likert("BP_f1", "شدت؟")},
		},
		{
			ID: "ANX_gad", DisorderID: "anxiety", Symptom: "اضطراب فراگیر",
			Gateway:   model.GatewayQuestion{ID: "ANX_gad_gw", Text: "نگرانی مفرط؟"},
			Followups: []model.FollowupQuestion{likert("ANX_gad_f1", "شدت؟")},
		},
		{
			ID: "ANX_PANIC", DisorderID: "anxiety", Symptom: "حملات پانیک",
			Gateway:   model.GatewayQuestion{ID: "ANX_panic_gw", Text: "حملات ناگهانی ترس؟"},
			Followups: []model.FollowupQuestion{yesno("ANX_panic_f1", "اجتناب؟"), open("ANX_panic_f2", "توضیح بده.")},
		},
		{
			ID: "OCD_core", DisorderID: "ocd_related", Symptom: "وسواس فکری و عملی",
			Gateway:   model.GatewayQuestion{ID: "OCD_gw", Text: "افکار مزاحم؟"},
			Followups: []model.FollowupQuestion{likert("OCD_f1", "شدت؟")},
		},
		{
			ID: "SLEEP_insomnia", DisorderID: "sleep_wake", Symptom: "بی‌خوابی",
			Gateway:   model.GatewayQuestion{ID: "SLEEP_gw", Text: "مشکل خواب؟"},
			Followups: []model.FollowupQuestion{likert("SLEEP_f1", "شدت؟")},
		},
		{
			ID: "SUB_use", DisorderID: "substance", Symptom: "مصرف ماده یا دارو",
			Gateway:   model.GatewayQuestion{ID: "SUB_gw", Text: "مصرف مواد؟"},
			Followups: []model.FollowupQuestion{yesno("SUB_f1", "تحمل؟")},
		},
		{
			ID: "GENDER_dysphoria_adult", DisorderID: "gender_identity", Symptom: "ناهماهنگی جنسیتی (دیفوریا)",
			Gateway:   model.GatewayQuestion{ID: "GENDER_gw", Text: "ناهماهنگی جنسیتی؟"},
			Followups: []model.FollowupQuestion{likert("GENDER_f1", "شدت؟")},
		},
		{
			ID: "PARA_transvestic", DisorderID: "paraphilic", Symptom: "اختلال ترانسوستیک (پوشیدن لباس جنس دیگر)",
			Gateway:   model.GatewayQuestion{ID: "PARA_gw", Text: "برانگیختگی با لباس جنس دیگر؟"},
			Followups: []model.FollowupQuestion{likert("PARA_f1", "شدت؟")},
		},
		{
			ID: "SEX_ED", DisorderID: "sexual_function", Symptom: "مشکل نعوظ",
			Gateway:   model.GatewayQuestion{ID: "SEX_gw", Text: "مشکل نعوظ؟"},
			Followups: []model.FollowupQuestion{likert("SEX_f1", "شدت؟")},
		},
	}
}

func serviceDiff() []model.DiffCluster {
	return []model.DiffCluster{
		{
			Cluster: ClusterMDDVsBipolar, Title: "تفکیک افسردگی از دوقطبی",
			Questions: []model.DiffQuestion{
				{ID: "diff_mdd_bp_1", Text: "دورهٔ پرانرژی؟", ResponseType: model.ResponseYesNo},
				{ID: "diff_mdd_bp_2", Text: "شدت؟", ResponseType: model.ResponseLikert03},
				{ID: "diff_mdd_bp_3", Text: "الگوی خلق؟", ResponseType: "multiple_choice",
					Options: []model.DiffOption{{Value: "a", Label: "ثابت"}, {Value: "b", Label: "دوره‌ای"}}},
			},
		},
		{
			Cluster: ClusterGADVsOCD, Title: "تفکیک نگرانی از وسواس",
			Questions: []model.DiffQuestion{
				{ID: "diff_gad_ocd_1", Text: "نگرانی یا فکر مزاحم؟", ResponseType: model.ResponseOpen},
			},
		},
		{
			Cluster: "unregistered_cluster", Title: "بدون قاعده",
			Questions: []model.DiffQuestion{
				{ID: "diff_x_1", Text: "؟", ResponseType: model.ResponseYesNo},
			},
		},
	}
}

func serviceBank() *bank.Bank {
	return bank.New(serviceItems(), serviceDiff(), nil)
}

// newTestRanker builds a ranker whose similarities are driven by the fake
// encoder's vector table. The query axis is [1,0].
func newTestRanker(bnk *bank.Bank, enc *fakeEncoder) *embedding.Ranker {
	return embedding.NewRanker(enc, bnk)
}

// vec builds a unit vector whose cosine against the query axis [1,0] is
// exactly sim.
func vec(sim float64) []float32 {
	return []float32{float32(sim), float32(math.Sqrt(1 - sim*sim))}
}

var queryVec = []float32{1, 0}

package service

import (
	"triage-chatbot/internal/bank"
	"triage-chatbot/internal/model"
	"triage-chatbot/internal/signal"
)

// Item ids injected directly by keyword heuristics
const (
	itemPanic           = "ANX_PANIC"
	itemGenderDysphoria = "GENDER_dysphoria_adult"
	itemManiaScreen     = "BP_mania_hypomania_screen"
)

// HeuristicService adds candidate disorders and direct items the embedding
// ranking alone would miss. Rules are independent and evaluated in a fixed
// priority order; outputs keep first-occurrence order with duplicates
// removed.
type HeuristicService struct{}

// NewHeuristicService creates a new heuristic service
func NewHeuristicService() *HeuristicService {
	return &HeuristicService{}
}

// Infer returns (extra disorder ids, direct item ids) for the utterance
func (s *HeuristicService) Infer(text string) ([]string, []string) {
	var extras, direct []string

	// Panic phrasing maps straight to the panic item
	if signal.HasAny(text, signal.Panic) {
		direct = append(direct, itemPanic)
	}

	// Dysphoria outranks transvestic paraphilia. Without arousal language
	// only the dysphoria item is added; with it, paraphilic is additive.
	if signal.HasAny(text, signal.GenderDysphoria) {
		if !signal.HasAny(text, signal.SexualArousal) {
			direct = append(direct, itemGenderDysphoria)
		} else {
			direct = append(direct, itemGenderDysphoria)
			extras = append(extras, "paraphilic")
		}
	}

	if signal.IsManiaLike(text) {
		extras = append(extras, "bipolar")
	}

	if signal.HasAny(text, signal.Depressive) && (signal.HasAny(text, signal.Sleep) || signal.HasAny(text, signal.Irritability)) {
		if !contains(extras, "bipolar") {
			extras = append(extras, "bipolar")
		}
	}

	if signal.HasAny(text, signal.OCD) || signal.HasAny(text, signal.OCDStrong) {
		extras = append(extras, "ocd_related")
	}

	if signal.HasAny(text, signal.SexualED) || signal.HasAny(text, signal.SexualGeneral) {
		extras = append(extras, "sexual_function")
	}

	if signal.HasAny(text, signal.Sleep) && !signal.IsManiaLike(text) {
		extras = append(extras, "sleep_wake")
	}

	if signal.HasAny(text, signal.GADCore) {
		extras = append(extras, "anxiety")
	}

	if signal.HasADHDSignal(text) {
		extras = append(extras, "neurodev")
	}

	return dedupe(extras), dedupe(direct)
}

// Representative picks the bank item standing in for an inferred disorder
// id, using per-family preferences for the families that have a canonical
// screening item.
func (s *HeuristicService) Representative(bnk *bank.Bank, disorderID string) *model.QuestionItem {
	switch disorderID {
	case "ocd_related":
		return bnk.Representative(disorderID, []string{"OCD_core"}, []string{"وسواس"})
	case "bipolar":
		return bnk.Representative(disorderID, []string{itemManiaScreen}, []string{"هیپومانیا", "مانیا", "خلق بالا"})
	case "sexual_function":
		return bnk.Representative(disorderID, []string{"SEX_ED", "SEX_function"}, nil)
	case "gender_identity":
		return bnk.Representative(disorderID, []string{itemGenderDysphoria}, []string{"دیفوریا", "ناهماهنگی جنسیتی"})
	default:
		return bnk.Representative(disorderID, nil, nil)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func dedupe(list []string) []string {
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, v := range list {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

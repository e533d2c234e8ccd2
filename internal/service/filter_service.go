package service

import (
	"strings"

	"triage-chatbot/internal/bank"
	"triage-chatbot/internal/model"
	"triage-chatbot/internal/signal"
)

// Title marker substrings per contextually-gated disorder family
var (
	substanceTitleMarkers   = []string{"ماده", "مصرف", "دارو", "جسمی"}
	maniaSleepTitleMarkers  = []string{"نارکولپسی", "آپنه", "پاراسومنیا", "ریتم خواب", "ریتم", "پرخوابی", "بی‌خوابی"}
	peripartumTitleMarkers  = []string{"زایمان", "بارداری", "پیرامون"}
	eatingTitleMarkers      = []string{"پرخوری", "بی‌اشتهایی", "رومینیشن", "پیکا", "خوردن"}
	hypersomniaTitleMarkers = []string{"نارکولپسی", "خواب‌آلودگی", "حملات خواب"}
	neurodevTitleMarkers    = []string{"adhd", "بیش‌فعالی", "نقص توجه", "یادگیری", "اوتیسم", "تیک", "tourette"}
	transvesticMarkers      = []string{"transvestic", "ترانسوستیک", "پوشیدن لباس جنس دیگر"}
)

// ContextFilterService drops question groups whose presence is
// inconsistent with the detected context and deduplicates by normalized
// title, preserving order.
type ContextFilterService struct{}

// NewContextFilterService creates a context filter
func NewContextFilterService() *ContextFilterService {
	return &ContextFilterService{}
}

// Filter walks groups in order and keeps those consistent with the
// utterance's context flags.
func (s *ContextFilterService) Filter(text string, groups []model.QuestionGroup) []model.QuestionGroup {
	hasSubstance := signal.HasAny(text, signal.Substance)
	hasMedical := signal.HasAny(text, signal.Medical)
	maniaLike := signal.IsManiaLike(text)

	hasPeripartum := signal.HasAny(text, signal.Peripartum)
	hasEating := signal.HasAny(text, signal.BingeEating) ||
		signal.HasAny(text, signal.Compensatory) ||
		signal.HasAny(text, signal.EatingCue)
	hasExcessDay := signal.HasAny(text, signal.ExcessiveSleepiness)
	hasChildADHD := signal.HasADHDSignal(text)

	// Cross-dressing mentioned without arousal language reads as gender
	// dysphoria, so purely paraphilic transvestic groups are dropped.
	mentionCrossDress := strings.Contains(text, "لباس جنس دیگر")
	mentionArousal := signal.HasAny(text, signal.SexualArousal)

	out := make([]model.QuestionGroup, 0, len(groups))
	seenTitles := make(map[string]bool)

	for _, g := range groups {
		tlow := strings.ToLower(g.Title)

		if titleHasAny(tlow, substanceTitleMarkers) && !(hasSubstance || hasMedical) {
			continue
		}
		// Sleep-architecture disorders contradict an active manic presentation
		if maniaLike && titleHasAny(tlow, maniaSleepTitleMarkers) {
			continue
		}
		if titleHasAny(tlow, peripartumTitleMarkers) && !hasPeripartum {
			continue
		}
		if titleHasAny(tlow, eatingTitleMarkers) && !hasEating {
			continue
		}
		if titleHasAny(tlow, hypersomniaTitleMarkers) && !hasExcessDay {
			continue
		}
		if titleHasAny(tlow, neurodevTitleMarkers) && !hasChildADHD {
			continue
		}
		if titleHasAny(tlow, transvesticMarkers) && mentionCrossDress && !mentionArousal {
			continue
		}

		norm := bank.NormalizeTitle(g.Title)
		if seenTitles[norm] {
			continue
		}
		seenTitles[norm] = true

		out = append(out, g)
	}
	return out
}

func titleHasAny(titleLower string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(titleLower, m) {
			return true
		}
	}
	return false
}

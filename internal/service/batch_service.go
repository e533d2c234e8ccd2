package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"triage-chatbot/internal/bank"
	"triage-chatbot/internal/embedding"
	"triage-chatbot/internal/model"
	"triage-chatbot/internal/signal"
)

const freeTextPlaceholder = "مثال یا توضیح کوتاه..."

// Title substrings identifying an already-present bipolar-flavored group;
// the repair passes no-op when any of these appear.
var bipolarTitleMarkers = []string{"دو قطبی", "بایپولار", "bipolar", "هیپومانیا", "مانیا"}

// BatchService turns selected bank items into the grouped question batch
type BatchService struct {
	bnk    *bank.Bank
	ranker *embedding.Ranker
}

// NewBatchService creates a batch service
func NewBatchService(bnk *bank.Bank, ranker *embedding.Ranker) *BatchService {
	return &BatchService{bnk: bnk, ranker: ranker}
}

// GroupFromItem renders one bank item as a question group: the gateway
// first (with its timeframe hint appended on a new line), then one spec per
// follow-up.
func (s *BatchService) GroupFromItem(it *model.QuestionItem) model.QuestionGroup {
	gwText := it.Gateway.Text
	if it.Gateway.TimeframeHint != "" {
		gwText = fmt.Sprintf("%s\n🕒 بازهٔ مدنظر: %s", gwText, it.Gateway.TimeframeHint)
	}

	qs := []model.QuestionSpec{{QID: it.Gateway.ID, Kind: model.KindYesNo, Text: gwText}}
	for _, fq := range it.Followups {
		spec := model.QuestionSpec{QID: fq.ID, Text: fq.Text}
		switch fq.ResponseType {
		case model.ResponseYesNo:
			spec.Kind = model.KindYesNo
		case model.ResponseLikert03:
			spec.Kind = model.KindLikert
			spec.Min = intPtr(0)
			spec.Max = intPtr(3)
		default:
			spec.Kind = model.KindText
			spec.Placeholder = freeTextPlaceholder
		}
		qs = append(qs, spec)
	}

	return model.QuestionGroup{
		Title:      it.Symptom,
		DisorderID: it.DisorderID,
		Questions:  qs,
	}
}

// Build expands the selected seed items into a batch. Each seed pulls in
// its whole disorder family, sorted by similarity to the user text when
// embeddings are available, deduplicated globally by normalized title and
// capped at perFamily picks per seed. The maxGroups cap is checked between
// seeds only, so the family being walked may overshoot it slightly.
//
// Returns the picked items (recorded in the chat state for scoring) and
// their groups.
func (s *BatchService) Build(ctx context.Context, text string, selected []*model.QuestionItem, perFamily, maxGroups int) ([]model.QuestionItem, []model.QuestionGroup, error) {
	sims, err := s.ranker.Similarities(ctx, text)
	if err != nil {
		return nil, nil, err
	}

	var pickedIdx []int
	seenNorm := make(map[string]bool)

	for _, base := range selected {
		familyIdx := s.bnk.FamilyIndexes(base.DisorderID)
		if sims != nil && len(familyIdx) > 0 {
			sorted := append([]int(nil), familyIdx...)
			sort.SliceStable(sorted, func(a, b int) bool {
				return sims[sorted[a]] > sims[sorted[b]]
			})
			familyIdx = sorted
		}

		cnt := 0
		for _, i := range familyIdx {
			norm := bank.NormalizeTitle(s.bnk.Items()[i].Symptom)
			if seenNorm[norm] {
				continue
			}
			seenNorm[norm] = true
			pickedIdx = append(pickedIdx, i)
			cnt++
			if cnt >= perFamily {
				break
			}
		}
		if len(pickedIdx) >= maxGroups {
			break
		}
	}

	items := make([]model.QuestionItem, 0, len(pickedIdx))
	groups := make([]model.QuestionGroup, 0, len(pickedIdx))
	for _, i := range pickedIdx {
		it := s.bnk.Items()[i]
		items = append(items, it)
		groups = append(groups, s.GroupFromItem(&it))
	}
	return items, groups, nil
}

// EnsureBipolarGatewayIfDepLike prepends the mania/hypomania screening
// group when the text reads depressive and no bipolar-flavored group is
// present. Depressive presentations must not skip the bipolar gateway.
func (s *BatchService) EnsureBipolarGatewayIfDepLike(text string, groups []model.QuestionGroup) []model.QuestionGroup {
	if !signal.HasAny(text, signal.Depressive) {
		return groups
	}
	return s.prependBipolarGateway(groups)
}

// EnsureBipolarGatewayIfManiaLike does the same for manic phrasing
func (s *BatchService) EnsureBipolarGatewayIfManiaLike(text string, groups []model.QuestionGroup) []model.QuestionGroup {
	if !signal.IsManiaLike(text) {
		return groups
	}
	return s.prependBipolarGateway(groups)
}

func (s *BatchService) prependBipolarGateway(groups []model.QuestionGroup) []model.QuestionGroup {
	if hasBipolarFlavoredTitle(groups) {
		return groups
	}
	it := s.bnk.Representative("bipolar",
		[]string{itemManiaScreen},
		[]string{"هیپومانیا", "مانیا", "بالا رفتن", "خلق بالا"})
	if it == nil {
		return groups
	}
	return append([]model.QuestionGroup{s.GroupFromItem(it)}, groups...)
}

func hasBipolarFlavoredTitle(groups []model.QuestionGroup) bool {
	var b strings.Builder
	for _, g := range groups {
		b.WriteString(g.Title)
		b.WriteString(" ")
	}
	titles := strings.ToLower(b.String())
	for _, marker := range bipolarTitleMarkers {
		if strings.Contains(titles, marker) {
			return true
		}
	}
	return false
}

func intPtr(n int) *int { return &n }

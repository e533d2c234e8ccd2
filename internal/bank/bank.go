package bank

import (
	"fmt"
	"regexp"
	"strings"

	"triage-chatbot/internal/model"
)

var (
	parenRe = regexp.MustCompile(`[\(（][^)）]*[\)）]`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// NormalizeTitle strips parenthetical content, collapses whitespace and
// lower-cases a symptom title. Used for batch-wide dedup.
func NormalizeTitle(s string) string {
	s = parenRe.ReplaceAllString(s, "")
	return strings.ToLower(strings.TrimSpace(spaceRe.ReplaceAllString(s, " ")))
}

// Bank is the read-only question catalog shared across all conversations.
// Built once at startup; all views reference the same items.
type Bank struct {
	items     []model.QuestionItem
	bySymptom map[string]int
	byID      map[string]int
	diff      []model.DiffCluster
	labels    map[string]string
}

// New builds a Bank from loaded catalog data. Malformed diff clusters
// (empty cluster key or no questions) are discarded; label overrides win
// over the defaults.
func New(items []model.QuestionItem, diff []model.DiffCluster, labelOverrides map[string]string) *Bank {
	b := &Bank{
		items:     items,
		bySymptom: make(map[string]int, len(items)),
		byID:      make(map[string]int, len(items)),
		labels:    make(map[string]string, len(DefaultLabels)+len(labelOverrides)),
	}
	for i, it := range items {
		if it.Symptom != "" {
			if _, ok := b.bySymptom[it.Symptom]; !ok {
				b.bySymptom[it.Symptom] = i
			}
		}
		if it.ID != "" {
			if _, ok := b.byID[it.ID]; !ok {
				b.byID[it.ID] = i
			}
		}
	}
	for _, cl := range diff {
		if cl.Cluster == "" || len(cl.Questions) == 0 {
			continue
		}
		b.diff = append(b.diff, cl)
	}
	for k, v := range DefaultLabels {
		b.labels[k] = v
	}
	for k, v := range labelOverrides {
		b.labels[k] = v
	}
	return b
}

// Empty builds a bank with no catalog; every lookup degrades to "no match"
func Empty() *Bank {
	return New(nil, nil, nil)
}

// Items returns the catalog in load order
func (b *Bank) Items() []model.QuestionItem { return b.items }

// Len returns the catalog size
func (b *Bank) Len() int { return len(b.items) }

// Titles returns the symptom title of every item, in catalog order
func (b *Bank) Titles() []string {
	out := make([]string, len(b.items))
	for i, it := range b.items {
		out[i] = it.Symptom
	}
	return out
}

// ItemByID returns the item with the given id, or nil
func (b *Bank) ItemByID(id string) *model.QuestionItem {
	if id == "" {
		return nil
	}
	if i, ok := b.byID[id]; ok {
		return &b.items[i]
	}
	return nil
}

// ItemBySymptom returns the item with the given title, or nil
func (b *Bank) ItemBySymptom(symptom string) *model.QuestionItem {
	if i, ok := b.bySymptom[symptom]; ok {
		return &b.items[i]
	}
	return nil
}

// FamilyIndexes returns the indexes of all titled items sharing a disorder
// id, in catalog order.
func (b *Bank) FamilyIndexes(disorderID string) []int {
	var out []int
	for i, it := range b.items {
		if it.DisorderID == disorderID && it.Symptom != "" {
			out = append(out, i)
		}
	}
	return out
}

// Representative finds an item standing in for a disorder id: first by
// preferred item ids, then by symptom-title substrings, then any family
// member. Returns nil when the family has no items.
func (b *Bank) Representative(disorderID string, preferIDs []string, preferSymptomSubs []string) *model.QuestionItem {
	for i := range b.items {
		it := &b.items[i]
		if it.DisorderID != disorderID {
			continue
		}
		for _, id := range preferIDs {
			if it.ID == id {
				return it
			}
		}
	}
	for i := range b.items {
		it := &b.items[i]
		if it.DisorderID != disorderID {
			continue
		}
		sym := strings.ToLower(it.Symptom)
		for _, sub := range preferSymptomSubs {
			if strings.Contains(sym, strings.ToLower(sub)) {
				return it
			}
		}
	}
	for i := range b.items {
		if b.items[i].DisorderID == disorderID {
			return &b.items[i]
		}
	}
	return nil
}

// DiffClusters returns the differential bank
func (b *Bank) DiffClusters() []model.DiffCluster { return b.diff }

// Label returns the human-readable label for a disorder id
func (b *Bank) Label(disorderID string) string {
	if l, ok := b.labels[disorderID]; ok {
		return l
	}
	return fmt.Sprintf("اختلال %s", disorderID)
}

// LabelHasAny reports whether a disorder's label contains any of the
// given substrings (case-insensitive). Diff predicates use this to test
// whether candidate rows carry e.g. a depression-flavored label.
func (b *Bank) LabelHasAny(disorderID string, subs []string) bool {
	lab := strings.ToLower(b.labels[disorderID])
	if lab == "" {
		return false
	}
	for _, s := range subs {
		if strings.Contains(lab, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

package service

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"triage-chatbot/internal/bank"
	"triage-chatbot/internal/model"
)

// Severity band labels
const (
	SeverityHigh   = "زیاد"
	SeverityMedium = "متوسط"
	SeverityLow    = "کم"
)

var yesValues = []string{"بله", "اره", "آره", "yes", "y", "true", "۱", "1", "✔", "✓", "on"}

type questionMeta struct {
	disorderID   string
	responseType model.ResponseType
}

// ScoringService aggregates submitted batch answers into per-disorder
// severity results.
type ScoringService struct {
	bnk *bank.Bank
}

// NewScoringService creates a scoring service over the given bank
func NewScoringService(bnk *bank.Bank) *ScoringService {
	return &ScoringService{bnk: bnk}
}

// Score rebuilds question metadata for the items recorded in the chat
// state and aggregates the submitted answers per disorder id. Missing or
// blank answers take type defaults (no/0/empty); unknown question ids are
// ignored; disorders scoring zero are omitted entirely. Results are sorted
// by percent, then raw score, descending.
//
// When the state carries no recorded item ids (expired or missing
// conversation) the whole catalog is scanned so submitted answers are not
// lost.
func (s *ScoringService) Score(state *model.ChatState, answers map[string]any) []model.ReportEntry {
	shown := make(map[string]bool, len(state.BatchItemIDs))
	for _, id := range state.BatchItemIDs {
		shown[id] = true
	}

	qmeta := make(map[string]questionMeta)
	for _, it := range s.bnk.Items() {
		if len(shown) > 0 && !shown[it.ID] {
			continue
		}
		if it.Gateway.ID != "" {
			qmeta[it.Gateway.ID] = questionMeta{it.DisorderID, model.ResponseYesNo}
		}
		for _, fq := range it.Followups {
			if fq.ID == "" {
				continue
			}
			qmeta[fq.ID] = questionMeta{it.DisorderID, fq.ResponseType}
		}
	}

	totalByDis := make(map[string]int)
	maxByDis := make(map[string]int)
	for qid, meta := range qmeta {
		val, ok := answers[qid]
		if !ok || isBlank(val) {
			val = defaultFor(meta.responseType)
		}
		totalByDis[meta.disorderID] += scoreAnswer(meta.responseType, val)
		maxByDis[meta.disorderID] += maxScoreFor(meta.responseType)
	}

	var results []model.ReportEntry
	for did, sc := range totalByDis {
		if sc <= 0 {
			continue
		}
		mx := maxByDis[did]
		if mx == 0 {
			mx = 1
		}
		pct := math.Round(100.0*float64(sc)/float64(mx)*10) / 10
		results = append(results, model.ReportEntry{
			DisorderID: did,
			Label:      s.bnk.Label(did),
			Score:      sc,
			Max:        mx,
			Percent:    pct,
			Severity:   SeverityLabel(pct),
		})
	}

	sort.SliceStable(results, func(a, b int) bool {
		if results[a].Percent != results[b].Percent {
			return results[a].Percent > results[b].Percent
		}
		return results[a].Score > results[b].Score
	})
	return results
}

// SeverityLabel maps a percent score to its severity band
func SeverityLabel(percent float64) string {
	switch {
	case percent >= 66:
		return SeverityHigh
	case percent >= 33:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// NormalizeYesNo coerces a loosely-typed answer value to "yes" or "no"
func NormalizeYesNo(val any) string {
	s := strings.ToLower(strings.TrimSpace(stringify(val)))
	for _, y := range yesValues {
		if s == y {
			return "yes"
		}
	}
	return "no"
}

func scoreAnswer(rt model.ResponseType, val any) int {
	switch rt {
	case model.ResponseYesNo:
		if NormalizeYesNo(val) == "yes" {
			return 1
		}
		return 0
	case model.ResponseLikert03:
		n := toInt(val)
		if n < 0 {
			n = 0
		}
		if n > 3 {
			n = 3
		}
		return n
	case model.ResponseOpen, model.ResponseText:
		if strings.TrimSpace(stringify(val)) != "" {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func maxScoreFor(rt model.ResponseType) int {
	switch rt {
	case model.ResponseLikert03:
		return 3
	case model.ResponseYesNo, model.ResponseOpen, model.ResponseText:
		return 1
	default:
		return 0
	}
}

func defaultFor(rt model.ResponseType) any {
	switch rt {
	case model.ResponseYesNo:
		return "no"
	case model.ResponseLikert03:
		return 0
	default:
		return ""
	}
}

func isBlank(val any) bool {
	if val == nil {
		return true
	}
	if s, ok := val.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func stringify(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		// JSON numbers decode as float64; print integers without a dot
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func toInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
		return 0
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return 0
	}
}

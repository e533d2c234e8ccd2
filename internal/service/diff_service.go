package service

import (
	"fmt"
	"strings"

	"triage-chatbot/internal/bank"
	"triage-chatbot/internal/embedding"
	"triage-chatbot/internal/model"
	"triage-chatbot/internal/signal"
)

// Cluster keys of the differential bank. The need-predicate registry below
// is a closed mapping: clusters with no registered key are never shown.
const (
	ClusterMDDVsBipolar       = "mdd_vs_bipolar"
	ClusterGADVsOCD           = "gad_vs_ocd"
	ClusterSocialVsAvoidant   = "social_anxiety_vs_avoidant_pd"
	ClusterBEDVsBulimia       = "bed_vs_bulimia"
	ClusterBipolarVsADHD      = "bipolar_vs_adhd"
	ClusterInsomniaVsCircad   = "insomnia_vs_circadian"
	ClusterOCDVsOCPD          = "ocd_vs_ocpd"
	ClusterDysthymiaVsMDD     = "dysthymia_vs_mdd"
	ClusterPTSDVsBPD          = "ptsd_vs_bpd"
	ClusterADHDVsDepression   = "adhd_vs_depression"
	ClusterADHDVsAnxiety      = "adhd_vs_anxiety"
	ClusterAtypVsMelancholic  = "atypical_vs_melancholic_depression"
	ClusterAtypVsDysthymia    = "atypical_vs_dysthymia"
	ClusterSomaticVsMood      = "somatic_vs_mood_anxiety"
	ClusterMixedAnxietyDep    = "mixed_anxiety_depression"
	ClusterBDDVsSADDepression = "bdd_vs_sad_depression"
	ClusterDIDVsBPDSchizo     = "did_vs_bpd_schizo"
)

// needFunc decides whether a differential cluster should be asked, given
// the utterance and the ranked candidate rows. Predicates are pure.
type needFunc func(text string, rows []embedding.RankedRow) bool

// DiffService selects differential-diagnosis clusters and renders them as
// question groups.
type DiffService struct {
	bnk   *bank.Bank
	needs map[string]needFunc
}

// NewDiffService creates a diff service over the given bank
func NewDiffService(bnk *bank.Bank) *DiffService {
	s := &DiffService{bnk: bnk}
	s.needs = map[string]needFunc{
		ClusterMDDVsBipolar:       s.needMDDVsBipolar,
		ClusterGADVsOCD:           s.needGADVsOCD,
		ClusterSocialVsAvoidant:   s.needSocialVsAvoidant,
		ClusterBEDVsBulimia:       s.needBEDVsBulimia,
		ClusterBipolarVsADHD:      s.needBipolarVsADHD,
		ClusterInsomniaVsCircad:   s.needInsomniaVsCircadian,
		ClusterOCDVsOCPD:          s.needOCDVsOCPD,
		ClusterDysthymiaVsMDD:     s.needDysthymiaVsMDD,
		ClusterPTSDVsBPD:          s.needPTSDVsBPD,
		ClusterADHDVsDepression:   s.needADHDVsDepression,
		ClusterADHDVsAnxiety:      s.needADHDVsAnxiety,
		ClusterAtypVsMelancholic:  s.needAtypicalVsMelancholic,
		ClusterAtypVsDysthymia:    s.needAtypicalVsDysthymia,
		ClusterSomaticVsMood:      s.needSomaticVsMood,
		ClusterMixedAnxietyDep:    s.needMixedAnxietyDepression,
		ClusterBDDVsSADDepression: s.needBDDVsSAD,
		// DID presentations share the PTSD/BPD trauma gate
		ClusterDIDVsBPDSchizo: s.needPTSDVsBPD,
	}
	return s
}

// PickClusters returns every diff-bank cluster whose registered predicate
// fires. Clusters without a registered predicate are skipped.
func (s *DiffService) PickClusters(text string, rows []embedding.RankedRow) []model.DiffCluster {
	var out []model.DiffCluster
	for _, cl := range s.bnk.DiffClusters() {
		fn, ok := s.needs[cl.Cluster]
		if !ok {
			continue
		}
		if fn(text, rows) {
			out = append(out, cl)
		}
	}
	return out
}

// BuildGroups renders diff clusters as question groups under the shared
// "diff" disorder id. Multiple-choice questions become free text with the
// option labels embedded in the placeholder.
func (s *DiffService) BuildGroups(clusters []model.DiffCluster) []model.QuestionGroup {
	groups := make([]model.QuestionGroup, 0, len(clusters))
	for _, cl := range clusters {
		qs := make([]model.QuestionSpec, 0, len(cl.Questions))
		for _, q := range cl.Questions {
			spec := model.QuestionSpec{QID: q.ID, Text: q.Text}
			switch q.ResponseType {
			case model.ResponseYesNo, "":
				spec.Kind = model.KindYesNo
			case model.ResponseLikert03:
				spec.Kind = model.KindLikert
				spec.Min = intPtr(0)
				spec.Max = intPtr(3)
			case "multiple_choice":
				labels := make([]string, 0, len(q.Options))
				for _, o := range q.Options {
					if o.Label != "" {
						labels = append(labels, o.Label)
					}
				}
				spec.Kind = model.KindText
				if len(labels) > 0 {
					spec.Placeholder = fmt.Sprintf("انتخاب: %s", strings.Join(labels, " / "))
				} else {
					spec.Placeholder = "انتخاب را بنویس..."
				}
			default:
				spec.Kind = model.KindText
				spec.Placeholder = freeTextPlaceholder
			}
			qs = append(qs, spec)
		}
		groups = append(groups, model.QuestionGroup{
			Title:      cl.Title,
			DisorderID: "diff",
			Questions:  qs,
		})
	}
	return groups
}

func (s *DiffService) rowsContainLabels(rows []embedding.RankedRow, subs []string) bool {
	for _, row := range rows {
		if s.bnk.LabelHasAny(row.DisorderID, subs) {
			return true
		}
	}
	return false
}

// needMDDVsBipolar: suppressed under dominant grief; requires depressive
// signal or a depression-labeled candidate; forced by manic phrasing or a
// sleep+irritability red flag; otherwise needs both depression- and
// bipolar-labeled candidates.
func (s *DiffService) needMDDVsBipolar(text string, rows []embedding.RankedRow) bool {
	if signal.IsGriefDominant(text) {
		return false
	}
	depKw := signal.HasAny(text, signal.Depressive)
	candDep := s.rowsContainLabels(rows, []string{"افسرد", "depress"})
	if !depKw && !candDep {
		return false
	}
	if signal.IsManiaLike(text) {
		return true
	}
	if signal.HasAny(text, signal.Sleep) && signal.HasAny(text, signal.Irritability) {
		return true
	}
	candBip := s.rowsContainLabels(rows, []string{"دو قطبی", "دوقطبی", "bipolar", "مانیا"})
	return candDep && candBip
}

func (s *DiffService) needGADVsOCD(text string, rows []embedding.RankedRow) bool {
	return signal.HasAny(text, signal.GADCore) &&
		(signal.HasAny(text, signal.OCD) || signal.HasAny(text, signal.OCDStrong))
}

func (s *DiffService) needSocialVsAvoidant(text string, rows []embedding.RankedRow) bool {
	return signal.HasAny(text, signal.Vocab{"جمع", "اجتماعی", "قضاوت", "مسخره"}) ||
		signal.HasAny(text, signal.AvoidantPD)
}

func (s *DiffService) needBEDVsBulimia(text string, rows []embedding.RankedRow) bool {
	return signal.HasAny(text, signal.BingeEating) || signal.HasAny(text, signal.Compensatory)
}

func (s *DiffService) needBipolarVsADHD(text string, rows []embedding.RankedRow) bool {
	return signal.IsManiaLike(text) || signal.HasADHDSignal(text)
}

func (s *DiffService) needInsomniaVsCircadian(text string, rows []embedding.RankedRow) bool {
	return signal.HasAny(text, signal.Sleep) &&
		(signal.HasAny(text, signal.ShiftWork) || signal.HasAny(text, signal.PhaseDelay))
}

func (s *DiffService) needOCDVsOCPD(text string, rows []embedding.RankedRow) bool {
	return signal.HasAny(text, signal.OCD) || signal.HasAny(text, signal.OCDStrong)
}

func (s *DiffService) needDysthymiaVsMDD(text string, rows []embedding.RankedRow) bool {
	return signal.HasAny(text, signal.Depressive)
}

func (s *DiffService) needPTSDVsBPD(text string, rows []embedding.RankedRow) bool {
	return signal.HasAny(text, signal.Trauma) || signal.HasAny(text, signal.PTSDSymptoms) ||
		signal.HasAny(text, signal.BPD)
}

func (s *DiffService) needADHDVsDepression(text string, rows []embedding.RankedRow) bool {
	return signal.HasADHDSignal(text) ||
		(signal.HasAny(text, signal.Depressive) && signal.HasAny(text, signal.Vocab{"تمرکز", "حواس"}))
}

func (s *DiffService) needADHDVsAnxiety(text string, rows []embedding.RankedRow) bool {
	return signal.HasADHDSignal(text) || signal.HasAny(text, signal.GADCore)
}

func (s *DiffService) needAtypicalVsMelancholic(text string, rows []embedding.RankedRow) bool {
	return signal.HasAny(text, signal.Vocab{"پرخوابی", "پرخوری", "صبح زود"}) ||
		signal.HasAny(text, signal.Depressive)
}

func (s *DiffService) needAtypicalVsDysthymia(text string, rows []embedding.RankedRow) bool {
	return signal.HasAny(text, signal.Depressive)
}

func (s *DiffService) needSomaticVsMood(text string, rows []embedding.RankedRow) bool {
	return signal.HasAny(text, signal.HealthAnx) ||
		signal.HasAny(text, signal.Vocab{"علائم جسمی", "درد"})
}

func (s *DiffService) needMixedAnxietyDepression(text string, rows []embedding.RankedRow) bool {
	return signal.HasAny(text, signal.Depressive) && signal.HasAny(text, signal.GADCore)
}

func (s *DiffService) needBDDVsSAD(text string, rows []embedding.RankedRow) bool {
	return signal.HasAny(text, signal.BDD) ||
		signal.HasAny(text, signal.Vocab{"ظاهر", "قیافه", "دماغ"})
}

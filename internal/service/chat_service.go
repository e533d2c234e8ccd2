package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"triage-chatbot/internal/bank"
	"triage-chatbot/internal/embedding"
	"triage-chatbot/internal/model"
	"triage-chatbot/internal/signal"
)

// Conversational replies (the service never surfaces raw errors)
const (
	ReplyEmptyMessage = "یه چیزی بنویس لطفاً 😊"
	ReplyEmergency    = "به نظر می‌رسه به کمک فوری نیاز داری. لطفاً همین الآن با اورژانس ۱۱۵ تماس بگیر یا با یکی از متخصصین ما صحبت کن. ❤️"
	ReplyNotSure      = "هنوز مطمئن نیستم. لطفاً کمی بیشتر دربارهٔ علائمت توضیح بده."
	ReplyUnclear      = "علائمی که گفتی واضح نبود. کمی دقیق‌تر بگو چه چیزهایی اذیتت می‌کنه."
	ReplyNoActive     = "بر اساس پاسخ‌ها نشانهٔ فعالی تأیید نشد. می‌تونی فقط به سؤال‌هایی که دوست داری جواب بدی؛ بقیه به‌صورت «خیر» درنظر گرفته می‌شن."
	ReplyTurnFailure  = "الان نمی‌تونم پیامت رو پردازش کنم. چند لحظه دیگه دوباره تلاش کن 🙏"

	reportHeader     = "نتیجهٔ غربالگری (غیردقیق/غیرتشخیصی):"
	reportMaxEntries = 6
)

// ChatService runs one conversational turn through the triage pipeline:
// ranking, heuristics, batch building, context filtering, differential
// injection, bipolar repair, and finally scoring on submission.
type ChatService struct {
	bnk     *bank.Bank
	ranker  *embedding.Ranker
	heur    *HeuristicService
	batch   *BatchService
	filter  *ContextFilterService
	diff    *DiffService
	scoring *ScoringService

	topK      int
	minSim    float64
	perFamily int
	maxGroups int
}

// NewChatService wires the pipeline stages together
func NewChatService(
	bnk *bank.Bank,
	ranker *embedding.Ranker,
	heur *HeuristicService,
	batch *BatchService,
	filter *ContextFilterService,
	diff *DiffService,
	scoring *ScoringService,
	topK int,
	minSim float64,
	perFamily int,
	maxGroups int,
) *ChatService {
	return &ChatService{
		bnk:       bnk,
		ranker:    ranker,
		heur:      heur,
		batch:     batch,
		filter:    filter,
		diff:      diff,
		scoring:   scoring,
		topK:      topK,
		minSim:    minSim,
		perFamily: perFamily,
		maxGroups: maxGroups,
	}
}

// HandleMessage processes a free-text turn. It mutates state when a batch
// is produced (mode, user text, recorded item ids, active diff clusters).
// Encoder failures propagate as the turn's single error.
func (s *ChatService) HandleMessage(ctx context.Context, state *model.ChatState, message string) (*model.TurnResponse, error) {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return model.TextReply(ReplyEmptyMessage), nil
	}

	// Crisis phrases bypass the whole pipeline
	if signal.IsEmergency(msg) {
		return model.TextReply(ReplyEmergency), nil
	}

	rows, err := s.ranker.Rank(ctx, msg, s.topK, s.minSim)
	if err != nil {
		return nil, err
	}

	extraDids, directItemIDs := s.heur.Infer(msg)

	// No confident embedding match: fall back to heuristic selections only
	if len(rows) == 0 {
		if len(extraDids) == 0 && len(directItemIDs) == 0 {
			return model.TextReply(ReplyNotSure), nil
		}

		var selected []*model.QuestionItem
		for _, iid := range directItemIDs {
			if it := s.bnk.ItemByID(iid); it != nil {
				selected = append(selected, it)
			}
		}
		for _, did := range extraDids {
			if rep := s.heur.Representative(s.bnk, did); rep != nil {
				selected = append(selected, rep)
			}
		}
		if len(selected) == 0 {
			return model.TextReply(ReplyNotSure), nil
		}

		items, groups, err := s.batch.Build(ctx, msg, selected, s.perFamily, s.maxGroups)
		if err != nil {
			return nil, err
		}
		groups = s.filter.Filter(msg, groups)

		if clusters := s.diff.PickClusters(msg, nil); len(clusters) > 0 {
			groups = append(s.diff.BuildGroups(clusters), groups...)
			state.DiffActive = clusterNames(clusters)
		}

		groups = s.batch.EnsureBipolarGatewayIfManiaLike(msg, groups)
		groups = s.batch.EnsureBipolarGatewayIfDepLike(msg, groups)

		state.Mode = model.ChatModeBatch
		state.UserText = msg
		state.BatchItemIDs = itemIDs(items)
		return model.BatchReply(groups), nil
	}

	// Confident matches: seed with each disorder's best item
	selected := make([]*model.QuestionItem, 0, len(rows))
	for _, row := range rows {
		it := s.bnk.Items()[row.ItemIndex]
		selected = append(selected, &it)
	}

	// Direct heuristic items go to the front
	for _, iid := range directItemIDs {
		it := s.bnk.ItemByID(iid)
		if it == nil || containsItem(selected, it.ID) {
			continue
		}
		selected = append([]*model.QuestionItem{it}, selected...)
	}

	// Extra disorders extend the candidate set without displacing matches
	existingDids := make(map[string]bool, len(selected))
	for _, it := range selected {
		existingDids[it.DisorderID] = true
	}
	for _, did := range extraDids {
		if existingDids[did] {
			continue
		}
		rep := s.heur.Representative(s.bnk, did)
		if rep == nil {
			continue
		}
		selected = append(selected, rep)
		existingDids[did] = true
	}

	items, groups, err := s.batch.Build(ctx, msg, selected, s.perFamily, s.maxGroups)
	if err != nil {
		return nil, err
	}
	groups = s.filter.Filter(msg, groups)

	if len(groups) == 0 {
		return model.TextReply(ReplyUnclear), nil
	}

	if clusters := s.diff.PickClusters(msg, rows); len(clusters) > 0 {
		groups = append(s.diff.BuildGroups(clusters), groups...)
		state.DiffActive = clusterNames(clusters)
	}

	groups = s.batch.EnsureBipolarGatewayIfManiaLike(msg, groups)
	groups = s.batch.EnsureBipolarGatewayIfDepLike(msg, groups)

	state.Mode = model.ChatModeBatch
	state.UserText = msg
	state.BatchItemIDs = itemIDs(items)
	return model.BatchReply(groups), nil
}

// HandleSubmit scores a submitted batch and formats the screening report.
// The conversation cycle ends here: the caller clears the state either way.
func (s *ChatService) HandleSubmit(state *model.ChatState, answers map[string]any) *model.TurnResponse {
	results := s.scoring.Score(state, answers)
	if len(results) == 0 {
		return model.TextReply(ReplyNoActive)
	}

	lines := []string{reportHeader}
	for i, r := range results {
		if i >= reportMaxEntries {
			break
		}
		pct := strconv.FormatFloat(r.Percent, 'f', 1, 64)
		lines = append(lines, fmt.Sprintf("• %s — امتیاز %d/%d (٪%s)", r.Label, r.Score, r.Max, pct))
	}
	return model.TextReply(strings.Join(lines, "\n"))
}

func itemIDs(items []model.QuestionItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it.ID != "" {
			out = append(out, it.ID)
		}
	}
	return out
}

func containsItem(items []*model.QuestionItem, id string) bool {
	for _, it := range items {
		if it.ID == id {
			return true
		}
	}
	return false
}

func clusterNames(clusters []model.DiffCluster) []string {
	out := make([]string, 0, len(clusters))
	for _, cl := range clusters {
		out = append(out, cl.Cluster)
	}
	return out
}

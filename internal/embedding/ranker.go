package embedding

import (
	"context"
	"math"
	"sync"

	"triage-chatbot/internal/bank"
)

// Default ranking knobs; both are overridable per deployment
const (
	DefaultTopK   = 5
	DefaultMinSim = 0.45
)

// RankedRow is one candidate disorder: its best-matching catalog item and
// the cosine similarity of that item's title to the user text.
type RankedRow struct {
	DisorderID string
	Similarity float64
	ItemIndex  int
}

// Ranker ranks catalog entries against a user utterance by cosine
// similarity of title embeddings. The catalog matrix is encoded once per
// process on first use; the query is encoded per call.
type Ranker struct {
	enc Encoder
	bnk *bank.Bank

	mu     sync.Mutex
	matrix [][]float32
}

// NewRanker creates a ranker over the given bank
func NewRanker(enc Encoder, bnk *bank.Bank) *Ranker {
	return &Ranker{enc: enc, bnk: bnk}
}

// Similarities returns the cosine similarity between the text and every
// catalog title, indexed like the bank's items. Returns (nil, nil) on an
// empty catalog; encode failures propagate.
func (r *Ranker) Similarities(ctx context.Context, text string) ([]float64, error) {
	if r.bnk.Len() == 0 {
		return nil, nil
	}
	if err := r.initMatrix(ctx); err != nil {
		return nil, err
	}

	qs, err := r.enc.Encode(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	q := unitNorm(qs[0])

	sims := make([]float64, len(r.matrix))
	for i, v := range r.matrix {
		sims[i] = dot(q, v)
	}
	return sims, nil
}

// Rank returns up to topK disorders whose best item title reaches minSim,
// sorted by similarity descending. Each disorder id appears once, backed by
// its single best item (first catalog occurrence wins ties, comparison is
// strict greater-than).
func (r *Ranker) Rank(ctx context.Context, text string, topK int, minSim float64) ([]RankedRow, error) {
	sims, err := r.Similarities(ctx, text)
	if err != nil || sims == nil {
		return nil, err
	}

	type best struct {
		sim float64
		idx int
	}
	bestByDid := make(map[string]best)
	order := []string{}
	for i, it := range r.bnk.Items() {
		if it.DisorderID == "" || it.Symptom == "" {
			continue
		}
		cur, ok := bestByDid[it.DisorderID]
		if !ok {
			bestByDid[it.DisorderID] = best{sims[i], i}
			order = append(order, it.DisorderID)
			continue
		}
		if sims[i] > cur.sim {
			bestByDid[it.DisorderID] = best{sims[i], i}
		}
	}

	rows := make([]RankedRow, 0, len(order))
	for _, did := range order {
		b := bestByDid[did]
		if b.sim < minSim {
			continue
		}
		rows = append(rows, RankedRow{DisorderID: did, Similarity: b.sim, ItemIndex: b.idx})
	}
	// stable insertion sort keeps catalog order among equal similarities
	for i := 1; i < len(rows); i++ {
		for j := i; j > 0 && rows[j].Similarity > rows[j-1].Similarity; j-- {
			rows[j], rows[j-1] = rows[j-1], rows[j]
		}
	}
	if len(rows) > topK {
		rows = rows[:topK]
	}
	return rows, nil
}

// initMatrix encodes every catalog title once per process. Concurrent
// first users are serialized so only one encode runs; a failed encode is
// not cached, the next turn retries it.
func (r *Ranker) initMatrix(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.matrix != nil {
		return nil
	}
	vecs, err := r.enc.Encode(ctx, r.bnk.Titles())
	if err != nil {
		return err
	}
	m := make([][]float32, len(vecs))
	for i, v := range vecs {
		m[i] = unitNorm(v)
	}
	r.matrix = m
	return nil
}

func unitNorm(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	n := math.Sqrt(sum)
	if n == 0 {
		return v
	}
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / n)
	}
	return out
}

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		if i >= len(b) {
			break
		}
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

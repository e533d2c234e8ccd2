package embedding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triage-chatbot/internal/bank"
	"triage-chatbot/internal/model"
)

// fakeEncoder returns fixed vectors per text, falling back to a zero-ish
// default for unknown inputs.
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
			out[i] = []float32{0, 0.01}
		}
	}
	return out, nil
}

func rankerBank() *bank.Bank {
	items := []model.QuestionItem{
		{ID: "DEP_1", DisorderID: "depression", Symptom: "خلق افسرده"},
		{ID: "DEP_2", DisorderID: "depression", Symptom: "افسرده‌خویی"},
		{ID: "ANX_1", DisorderID: "anxiety", Symptom: "اضطراب فراگیر"},
		{ID: "SLEEP_1", DisorderID: "sleep_wake", Symptom: "بی‌خوابی"},
		{ID: "untitled", DisorderID: "eating", Symptom: ""},
	}
	return bank.New(items, nil, nil)
}

func TestRank_BestItemPerDisorder(t *testing.T) {
	enc := &fakeEncoder{vectors: map[string][]float32{
		"query":       {1, 0},
		"خلق افسرده":  {0.6, 0.8},
		"افسرده‌خویی": {1, 0},
		"اضطراب فراگیر": {0.8, 0.6},
		"بی‌خوابی":      {0, 1},
	}}
	r := NewRanker(enc, rankerBank())

	rows, err := r.Rank(context.Background(), "query", DefaultTopK, DefaultMinSim)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// depression's best item is DEP_2 (sim 1.0), anxiety second (0.8);
	// sleep_wake falls below the threshold
	assert.Equal(t, "depression", rows[0].DisorderID)
	assert.Equal(t, 1, rows[0].ItemIndex)
	assert.InDelta(t, 1.0, rows[0].Similarity, 1e-6)
	assert.Equal(t, "anxiety", rows[1].DisorderID)
	assert.InDelta(t, 0.8, rows[1].Similarity, 1e-6)
}

func TestRank_TieKeepsFirstCatalogOccurrence(t *testing.T) {
	enc := &fakeEncoder{vectors: map[string][]float32{
		"query":       {1, 0},
		"خلق افسرده":  {1, 0},
		"افسرده‌خویی": {1, 0},
	}}
	r := NewRanker(enc, rankerBank())

	rows, err := r.Rank(context.Background(), "query", DefaultTopK, DefaultMinSim)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	// equal similarity must not displace the earlier item
	assert.Equal(t, 0, rows[0].ItemIndex)
}

func TestRank_TopKTruncation(t *testing.T) {
	enc := &fakeEncoder{vectors: map[string][]float32{
		"query":       {1, 0},
		"خلق افسرده":  {1, 0},
		"اضطراب فراگیر": {0.9, 0.1},
		"بی‌خوابی":      {0.8, 0.2},
	}}
	r := NewRanker(enc, rankerBank())

	rows, err := r.Rank(context.Background(), "query", 1, 0.1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "depression", rows[0].DisorderID)
}

func TestRank_Deterministic(t *testing.T) {
	enc := &fakeEncoder{vectors: map[string][]float32{
		"query":       {1, 0},
		"خلق افسرده":  {0.9, 0.1},
		"اضطراب فراگیر": {0.7, 0.3},
	}}
	r := NewRanker(enc, rankerBank())

	first, err := r.Rank(context.Background(), "query", DefaultTopK, 0.1)
	require.NoError(t, err)
	second, err := r.Rank(context.Background(), "query", DefaultTopK, 0.1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRank_EmptyCatalog(t *testing.T) {
	enc := &fakeEncoder{}
	r := NewRanker(enc, bank.Empty())

	rows, err := r.Rank(context.Background(), "هر چیزی", DefaultTopK, DefaultMinSim)
	require.NoError(t, err)
	assert.Nil(t, rows)
	// nothing should be encoded for an empty catalog
	assert.Equal(t, 0, enc.calls)
}

func TestRank_EncodeFailureIsRetried(t *testing.T) {
	enc := &fakeEncoder{fail: true, vectors: map[string][]float32{
		"query":      {1, 0},
		"خلق افسرده": {1, 0},
	}}
	r := NewRanker(enc, rankerBank())

	_, err := r.Rank(context.Background(), "query", DefaultTopK, DefaultMinSim)
	require.Error(t, err)

	// a failed catalog encode must not be cached
	enc.fail = false
	rows, err := r.Rank(context.Background(), "query", DefaultTopK, DefaultMinSim)
	require.NoError(t, err)
	assert.NotEmpty(t, rows)
}

func TestSimilarities_IndexedLikeCatalog(t *testing.T) {
	enc := &fakeEncoder{vectors: map[string][]float32{
		"query":      {0, 1},
		"بی‌خوابی":    {0, 1},
		"خلق افسرده": {1, 0},
	}}
	b := rankerBank()
	r := NewRanker(enc, b)

	sims, err := r.Similarities(context.Background(), "query")
	require.NoError(t, err)
	require.Len(t, sims, b.Len())
	assert.InDelta(t, 1.0, sims[3], 1e-6)
	assert.InDelta(t, 0.0, sims[0], 1e-6)
}

package model

// ChatMode marks where a conversation stands in its cycle
type ChatMode string

const (
	// ChatModeBatch means a question batch is pending submission
	ChatModeBatch ChatMode = "batch"
)

// ChatState is the per-conversation state carried between the free-text
// turn and the batch submission. It is stored externally (Redis) under an
// opaque conversation id and cleared once the batch is scored.
//
// BatchItemIDs is the exact set of bank items the pending batch was built
// from; scoring may only reference questions of these items. An ordered
// slice is used instead of a set so the serialized form stays stable.
type ChatState struct {
	Mode         ChatMode `json:"mode,omitempty"`
	UserText     string   `json:"user_text,omitempty"`
	BatchItemIDs []string `json:"batch_items_ids,omitempty"`
	DiffActive   []string `json:"diff_active,omitempty"`
}

// HasBatch reports whether a batch is pending for this conversation
func (s *ChatState) HasBatch() bool {
	return s != nil && s.Mode == ChatModeBatch
}

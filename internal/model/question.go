package model

// ResponseType defines how a question is answered
type ResponseType string

const (
	ResponseYesNo    ResponseType = "yesno"      // Yes/no toggle
	ResponseLikert03 ResponseType = "likert_0_3" // 0..3 severity scale
	ResponseOpen     ResponseType = "open"       // Free text
	ResponseText     ResponseType = "text"       // Free text (legacy alias)
)

// GatewayQuestion is the single yes/no screening question asked before
// an item's follow-ups.
type GatewayQuestion struct {
	ID            string `json:"id" bson:"id"`
	Text          string `json:"text" bson:"text"`
	TimeframeHint string `json:"timeframe_hint,omitempty" bson:"timeframe_hint,omitempty"`
}

// FollowupQuestion is a detail question under a gateway
type FollowupQuestion struct {
	ID           string       `json:"id" bson:"id"`
	Text         string       `json:"text" bson:"text"`
	ResponseType ResponseType `json:"response_type" bson:"response_type"`
}

// QuestionItem is one entry of the static question bank. Multiple items may
// share a DisorderID; together they form that disorder's family.
type QuestionItem struct {
	ID         string             `json:"id" bson:"id"`
	DisorderID string             `json:"disorder_id" bson:"disorder_id"`
	Symptom    string             `json:"symptom" bson:"symptom"` // human-readable title
	Gateway    GatewayQuestion    `json:"gateway" bson:"gateway"`
	Followups  []FollowupQuestion `json:"followups,omitempty" bson:"followups,omitempty"`
}

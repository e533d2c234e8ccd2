package model

// TurnRequest is the request body of one conversational turn. A free-text
// turn carries Message with an empty Action; a scoring turn carries
// Action "batch_submit" with the answers keyed by question id. Message is
// a pointer so a missing field can be told apart from an empty message;
// answer values are left loosely typed and normalized by scoring.
type TurnRequest struct {
	Action  string         `json:"action,omitempty"`
	Message *string        `json:"message,omitempty"`
	Answers map[string]any `json:"answers,omitempty"`
}

const ActionBatchSubmit = "batch_submit"

// TurnResponse is the response of one conversational turn: either a plain
// text reply or a question batch. SessionToken is set when the server
// started a new conversation for this client.
type TurnResponse struct {
	UI           string          `json:"ui"` // "text" or "batch"
	Reply        string          `json:"reply,omitempty"`
	Groups       []QuestionGroup `json:"groups,omitempty"`
	SessionToken string          `json:"session_token,omitempty"`
}

// TextReply builds a plain text turn response
func TextReply(reply string) *TurnResponse {
	return &TurnResponse{UI: "text", Reply: reply}
}

// BatchReply builds a batch turn response
func BatchReply(groups []QuestionGroup) *TurnResponse {
	return &TurnResponse{UI: "batch", Groups: groups}
}

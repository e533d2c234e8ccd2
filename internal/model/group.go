package model

// QuestionKind is the rendering kind of a batch question
type QuestionKind string

const (
	KindYesNo  QuestionKind = "yesno"
	KindLikert QuestionKind = "likert"
	KindText   QuestionKind = "text"
)

// QuestionSpec is a rendering-oriented projection of a gateway, follow-up or
// differential question. Built fresh per turn, never persisted.
type QuestionSpec struct {
	QID         string       `json:"qid"`
	Kind        QuestionKind `json:"kind"`
	Text        string       `json:"text"`
	Required    bool         `json:"required"`
	Min         *int         `json:"min,omitempty"`
	Max         *int         `json:"max,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
}

// QuestionGroup is one titled block of the outgoing batch
type QuestionGroup struct {
	Title      string         `json:"title"`
	DisorderID string         `json:"disorder_id"`
	Questions  []QuestionSpec `json:"questions"`
}

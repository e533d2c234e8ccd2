package model

// DiffOption is one choice of a multiple-choice differential question.
// Choices are rendered as free text with the option labels embedded, so
// there is no structured choice scoring.
type DiffOption struct {
	Value string `json:"value,omitempty" bson:"value,omitempty"`
	Label string `json:"label" bson:"label"`
}

// DiffQuestion is a question inside a differential cluster
type DiffQuestion struct {
	ID           string       `json:"id" bson:"id"`
	Text         string       `json:"text" bson:"text"`
	ResponseType ResponseType `json:"response_type" bson:"response_type"`
	Options      []DiffOption `json:"options,omitempty" bson:"options,omitempty"`
}

// DiffCluster bundles questions that distinguish between look-alike
// disorders (e.g. MDD vs bipolar). Cluster is the registry key that selects
// the need-predicate deciding whether the cluster is shown.
type DiffCluster struct {
	Cluster   string         `json:"cluster" bson:"cluster"`
	Title     string         `json:"title" bson:"title"`
	Questions []DiffQuestion `json:"questions" bson:"questions"`
}

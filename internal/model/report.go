package model

// ReportEntry is one scored disorder in the screening report
type ReportEntry struct {
	DisorderID string  `json:"disorder_id"`
	Label      string  `json:"label"`
	Score      int     `json:"score"`
	Max        int     `json:"max"`
	Percent    float64 `json:"percent"`
	Severity   string  `json:"severity"`
}

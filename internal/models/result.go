package models

// SimilarityResult is one scored pairing of the selected reference record
// against another record. Results are ephemeral: the full set is recomputed
// whenever the selection, the metric, or the store contents change.
type SimilarityResult struct {
	Subject     string  `json:"subject"`
	Other       string  `json:"other"`
	SubjectText string  `json:"subject_text"`
	OtherText   string  `json:"other_text"`
	Score       float64 `json:"score"`
	// Label buckets the score for display: High, Medium, Low, Very Low.
	Label string `json:"label"`
}

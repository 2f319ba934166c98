package models

// RecordView is the API shape of a stored record. The full vector is only
// included on single-record responses; list responses carry the norm and
// dimension count instead.
type RecordView struct {
	ID       string    `json:"id"`
	Text     string    `json:"text"`
	Color    string    `json:"color"`
	Position Position  `json:"position"`
	Dims     int       `json:"dims"`
	Norm     float64   `json:"norm"`
	Vector   []float64 `json:"vector,omitempty"`
}

// AddRequest is the body for adding a record.
type AddRequest struct {
	Text string `json:"text"`
}

// SelectRequest is the body for selecting a reference record.
type SelectRequest struct {
	ID string `json:"id"`
}

// MetricRequest is the body for changing the similarity metric.
type MetricRequest struct {
	Metric string `json:"metric"`
}

// ImportRequest is the body for importing record texts from a document file.
type ImportRequest struct {
	Path string `json:"path"`
}

// RankingsResponse is the ranked similarity list for the current selection.
// Results is empty when nothing is selected.
type RankingsResponse struct {
	Selection string              `json:"selection,omitempty"`
	Metric    string              `json:"metric"`
	Results   []*SimilarityResult `json:"results"`
}

// StatusResponse reports store and configuration state.
type StatusResponse struct {
	Records   int    `json:"records"`
	Dims      int    `json:"dims"`
	Strategy  string `json:"strategy"`
	Metric    string `json:"metric"`
	Selection string `json:"selection,omitempty"`
}

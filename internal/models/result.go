package models

import (
	"encoding/json"
	"math"
)

// Hit is one ranked collection item.
type Hit struct {
	Index int     `json:"index"`
	ID    string  `json:"id,omitempty"`
	Score float64 `json:"score"`
	Rank  int     `json:"rank"`
}

// MarshalJSON writes a NaN or infinite score as null.
func (h Hit) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Index int      `json:"index"`
		ID    string   `json:"id,omitempty"`
		Score *float64 `json:"score"`
		Rank  int      `json:"rank"`
	}{h.Index, h.ID, JSONFloat(h.Score), h.Rank})
}

// SearchResponse is the result of a ranked search.
type SearchResponse struct {
	Metric    string `json:"metric"`
	Hits      []Hit  `json:"hits"`
	Total     int    `json:"total"`
	QueryTime int64  `json:"query_time_ms"`
}

// ScoreResponse carries the full score array of a collection.
type ScoreResponse struct {
	Metric    string    `json:"metric"`
	IDs       []string  `json:"ids,omitempty"`
	Scores    []float64 `json:"scores"`
	QueryTime int64     `json:"query_time_ms"`
}

// MarshalJSON writes NaN or infinite scores as null.
func (r ScoreResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Metric    string     `json:"metric"`
		IDs       []string   `json:"ids,omitempty"`
		Scores    []*float64 `json:"scores"`
		QueryTime int64      `json:"query_time_ms"`
	}{r.Metric, r.IDs, JSONFloats(r.Scores), r.QueryTime})
}

// JSONFloat returns nil for values JSON cannot carry.
func JSONFloat(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// JSONFloats applies JSONFloat to every element. A nil slice stays nil.
func JSONFloats(fs []float64) []*float64 {
	if fs == nil {
		return nil
	}
	out := make([]*float64, len(fs))
	for i, f := range fs {
		out[i] = JSONFloat(f)
	}
	return out
}

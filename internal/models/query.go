// Package models holds the request and result types shared by the search
// engine and the command line.
package models

import (
	"fmt"

	"github.com/hyperjump/vecscan/internal/vector"
)

// DefaultK is used when a query does not ask for a number of results.
const DefaultK = 10

// SearchQuery is one ranked search over a collection.
type SearchQuery struct {
	// Query is the base64 encoding of the query vector.
	Query  string `json:"query"`
	Metric string `json:"metric,omitempty"`
	K      int    `json:"k,omitempty"`
	// Group restricts a SQLite-backed collection to one group.
	Group string `json:"group,omitempty"`
}

// Validate ensures the query has valid fields and sets defaults.
// K is not capped: a K larger than the collection returns every item.
func (q *SearchQuery) Validate() error {
	if q.Query == "" {
		return fmt.Errorf("query cannot be empty")
	}
	m, err := vector.ParseMetric(q.Metric)
	if err != nil {
		return err
	}
	q.Metric = m.String()
	if q.K <= 0 {
		q.K = DefaultK
	}
	return nil
}

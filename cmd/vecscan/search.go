package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/hyperjump/vecscan/internal/cli"
	"github.com/hyperjump/vecscan/internal/models"
	"github.com/hyperjump/vecscan/internal/search"
	"github.com/hyperjump/vecscan/internal/vector"
)

var (
	searchFlags collectionFlags
	searchK     int
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Return the k nearest vectors of a collection",
	Long: `Scores every vector of the collection against the query and prints the
k best: highest similarity first for cosine, smallest distance first for l2.`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

func init() {
	searchFlags.register(searchCmd)
	searchCmd.Flags().IntVarP(&searchK, "k", "k", 0, "number of results (default from config)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	format, err := cli.ParseOutputFormat(searchFlags.output)
	if err != nil {
		return err
	}
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close(cmd)

	q := &models.SearchQuery{
		Query:  searchFlags.query,
		Metric: searchFlags.metric,
		K:      searchK,
		Group:  searchFlags.group,
	}
	if q.Metric == "" {
		q.Metric = rt.cfg.Search.Metric
	}
	if q.K <= 0 {
		q.K = rt.cfg.Search.TopK
	}
	if err := q.Validate(); err != nil {
		return err
	}

	coll, err := loadCollection(cmd.Context(), cmd, rt, &searchFlags)
	if err != nil {
		return err
	}
	start := time.Now()
	metric := vector.Metric(q.Metric)
	scores, err := scoreCollection(rt.engine, metric, q.Query, coll)
	if err != nil {
		return err
	}
	hits := search.Rank(metric, scores, q.K)
	for i := range hits {
		hits[i].ID = coll.ID(hits[i].Index)
	}
	return cli.WriteHits(cmd.OutOrStdout(), &models.SearchResponse{
		Metric:    q.Metric,
		Hits:      hits,
		Total:     coll.Len(),
		QueryTime: time.Since(start).Milliseconds(),
	}, format)
}

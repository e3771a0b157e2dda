package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/hyperjump/vecscan/internal/cli"
	"github.com/hyperjump/vecscan/internal/models"
	"github.com/hyperjump/vecscan/internal/vector"
)

var scoreFlags collectionFlags

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Print the score of every vector in a collection",
	Long: `Scores every vector of the collection against the query and prints the
full score array in collection order.`,
	Args: cobra.NoArgs,
	RunE: runScore,
}

func init() {
	scoreFlags.register(scoreCmd)
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	format, err := cli.ParseOutputFormat(scoreFlags.output)
	if err != nil {
		return err
	}
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close(cmd)

	name := scoreFlags.metric
	if name == "" {
		name = rt.cfg.Search.Metric
	}
	metric, err := vector.ParseMetric(name)
	if err != nil {
		return err
	}
	coll, err := loadCollection(cmd.Context(), cmd, rt, &scoreFlags)
	if err != nil {
		return err
	}
	start := time.Now()
	scores, err := scoreCollection(rt.engine, metric, scoreFlags.query, coll)
	if err != nil {
		return err
	}
	return cli.WriteScores(cmd.OutOrStdout(), &models.ScoreResponse{
		Metric:    metric.String(),
		IDs:       coll.IDs,
		Scores:    cli.Float64s(scores),
		QueryTime: time.Since(start).Milliseconds(),
	}, format)
}

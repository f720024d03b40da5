package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/courtmate/courtmate/internal/domain/types"
)

func newQueryCmd() *cobra.Command {
	var (
		csvPath      string
		k            int
		samePosition bool
		metric       string
	)
	cmd := &cobra.Command{
		Use:   "query <player-id>",
		Short: "Print the k most similar players for one player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd.Context(), csvPath, args[0], k, samePosition, metric)
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "career-stats CSV path (overrides config)")
	cmd.Flags().IntVar(&k, "k", 5, "number of similar players (1-5)")
	cmd.Flags().BoolVar(&samePosition, "same-position", false, "only consider players with the query player's position")
	cmd.Flags().StringVar(&metric, "metric", "", "distance metric: euclidean or cosine (defaults to config)")
	return cmd
}

func runQuery(ctx context.Context, csvPath, playerID string, k int, samePosition bool, metric string) error {
	cfg, err := setup(ctx, csvPath)
	if err != nil {
		return err
	}

	svc := newService(cfg)
	if err := svc.Start(ctx); err != nil {
		return err
	}
	defer svc.Stop()

	entries, err := svc.FindSimilar(ctx, playerID, k, samePosition, metric)
	if err != nil {
		return err
	}
	printSimilar(playerID, samePosition, entries)
	return nil
}

func printSimilar(playerID string, samePosition bool, entries []types.SimilarEntry) {
	if len(entries) == 0 {
		suffix := ""
		if samePosition {
			suffix = " in this position"
		}
		fmt.Printf("no similar players found for %s%s\n", playerID, suffix)
		return
	}

	fmt.Printf("players similar to %s:\n", playerID)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tPLAYER\tPOS\tDISTANCE\tSIMILARITY")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.4f\t%.1f%%\n",
			e.Rank, e.PlayerID, e.Position, e.Distance, e.Similarity)
	}
	_ = w.Flush()
}

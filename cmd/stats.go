package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var csvPath string
	var topN int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print dataset statistics and the career-score leaders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd.Context(), csvPath, topN)
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "career-stats CSV path (overrides config)")
	cmd.Flags().IntVar(&topN, "top", 10, "number of career-score leaders to print")
	return cmd
}

func runStats(ctx context.Context, csvPath string, topN int) error {
	cfg, err := setup(ctx, csvPath)
	if err != nil {
		return err
	}

	svc := newService(cfg)
	if err := svc.Start(ctx); err != nil {
		return err
	}
	defer svc.Stop()

	stats := svc.GetStats()
	fmt.Printf("players: %v\n", stats["totalPlayers"])
	if cols, ok := stats["featureColumns"].([]string); ok {
		fmt.Printf("numeric stats (%d): %s\n", len(cols), strings.Join(cols, ", "))
	}

	if positions, ok := stats["positions"].(map[string]int); ok {
		names := make([]string, 0, len(positions))
		for p := range positions {
			names = append(names, p)
		}
		sort.Strings(names)
		fmt.Println("positions:")
		for _, p := range names {
			fmt.Printf("  %s: %d\n", p, positions[p])
		}
	}

	entries, err := svc.TopCareer(ctx, topN)
	if err != nil {
		return err
	}
	fmt.Printf("top %d by career score:\n", len(entries))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tPLAYER\tPOS\tSCORE")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\n", e.Rank, e.PlayerID, e.Position, e.CareerScore)
	}
	return w.Flush()
}

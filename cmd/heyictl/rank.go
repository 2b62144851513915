// cmd/heyictl/rank.go
package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/javajoker/heyi-backend/internal/catalog"
)

func newRankCmd() *cobra.Command {
	var (
		board  string
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Print a leaderboard (heat, revenue or price)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b := catalog.Board(board)
			if !b.Valid() {
				return fmt.Errorf("unknown board %q, want heat, revenue or price", board)
			}

			store, slot, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer closeSlot(slot)

			entries, err := catalog.BoardEntries(b, store.All(), configFrom(cmd).Catalog.Currency)
			if err != nil {
				return err
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RANK\tNAME\tVALUE\tMETRICS\tCHANGE")
			for _, e := range entries {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", e.Rank, e.Name, e.Value, e.Metrics, e.Change)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&board, "board", "b", string(catalog.BoardHeat), "Leaderboard: heat, revenue or price")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of entries, 0 for all")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print entries as JSON")
	return cmd
}

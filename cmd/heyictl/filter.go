// cmd/heyictl/filter.go
package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/javajoker/heyi-backend/internal/catalog"
	"github.com/javajoker/heyi-backend/internal/models"
)

func newFilterCmd() *cobra.Command {
	var (
		categories  []string
		statuses    []string
		chains      []string
		scriptTypes []string
		minPrice    string
		maxPrice    string
		search      string
		sortOrder   string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "List assets matching the given facets",
		Example: `  heyictl filter --category image,music --status license --min 1000
  heyictl filter --search 林 --sort price_desc --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			order := catalog.SortOrder(sortOrder)
			if !order.Valid() {
				return fmt.Errorf("unknown sort order %q", sortOrder)
			}

			filter := catalog.Filter{
				Categories:  convert[models.Category](categories),
				Statuses:    convert[models.SaleMode](statuses),
				Chains:      convert[models.Chain](chains),
				ScriptTypes: convert[models.ScriptType](scriptTypes),
				Search:      search,
			}
			if cmd.Flags().Changed("min") {
				p := models.ParsePrice(minPrice)
				filter.PriceMin = &p
			}
			if cmd.Flags().Changed("max") {
				p := models.ParsePrice(maxPrice)
				filter.PriceMax = &p
			}

			store, slot, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer closeSlot(slot)

			assets := catalog.Sort(filter.Apply(store.All()), order)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(assets)
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tCATEGORY\tPRICE\tMODES")
			for _, a := range assets {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%v\n", a.ID, a.Title, a.Author, a.Category, a.Price, a.SalesModes)
			}
			fmt.Fprintf(w, "\n%d of %d assets\n", len(assets), store.Len())
			return w.Flush()
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&categories, "category", nil, "Categories (image, music, video, literature)")
	flags.StringSliceVar(&statuses, "status", nil, "Sales modes (direct, license, auction, lease)")
	flags.StringSliceVar(&chains, "chain", nil, "Chains (Harmony, Polygon)")
	flags.StringSliceVar(&scriptTypes, "script-type", nil, "Script types (short-drama, long-drama, unit-series)")
	flags.StringVar(&minPrice, "min", "", "Minimum price, inclusive")
	flags.StringVar(&maxPrice, "max", "", "Maximum price, inclusive")
	flags.StringVarP(&search, "search", "s", "", "Case-insensitive title or author match")
	flags.StringVar(&sortOrder, "sort", string(catalog.SortNewest), "newest, price_asc, price_desc, most_liked or most_viewed")
	flags.BoolVar(&asJSON, "json", false, "Print assets as JSON")
	return cmd
}

func convert[T ~string](values []string) []T {
	if len(values) == 0 {
		return nil
	}
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = T(v)
	}
	return out
}

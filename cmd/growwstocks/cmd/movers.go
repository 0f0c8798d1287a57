package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/notnotrachit/GrowwwStocks/model"
)

var moversLimit int

var moversCmd = &cobra.Command{
	Use:   "movers [gainers|losers|active]",
	Short: "Show the market's top gainers, losers and most active stocks",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		movers, err := quotes.TopMovers(cmd.Context())
		if err != nil {
			return err
		}

		section := "all"
		if len(args) == 1 {
			section = args[0]
		}

		switch section {
		case "gainers":
			printStockTable("Top Gainers", movers.TopGainers, moversLimit)
		case "losers":
			printStockTable("Top Losers", movers.TopLosers, moversLimit)
		case "active":
			printStockTable("Most Active", movers.MostActive, moversLimit)
		case "all":
			printStockTable("Top Gainers", movers.TopGainers, moversLimit)
			printStockTable("Top Losers", movers.TopLosers, moversLimit)
			printStockTable("Most Active", movers.MostActive, moversLimit)
		default:
			return fmt.Errorf("unknown section %q (want gainers, losers or active)", section)
		}

		if movers.LastUpdated != "" {
			fmt.Printf("Last updated: %s\n", movers.LastUpdated)
		}
		return nil
	},
}

func init() {
	moversCmd.Flags().IntVarP(&moversLimit, "limit", "n", 10, "rows per section")
}

func printStockTable(title string, stocks []model.Stock, limit int) {
	fmt.Printf("\n%s\n", title)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tPRICE\tCHANGE\tCHANGE %\tVOLUME")
	for i, stock := range stocks {
		if limit > 0 && i >= limit {
			break
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			stock.Symbol, stock.Price, stock.Change, stock.ChangePercent, stock.Volume)
	}
	w.Flush()
}

package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/notnotrachit/GrowwwStocks/model"
)

var watchlistCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "Manage personal stock watchlists",
}

var watchlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all watchlists and their stocks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lists, err := watchlists.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(lists) == 0 {
			fmt.Println("No watchlists yet")
			return nil
		}
		for _, w := range lists {
			fmt.Printf("\n%s (id %s, %d stocks, updated %s)\n",
				w.Name, w.ID, len(w.Stocks), w.UpdatedAt.Format("2006-01-02 15:04"))
			if len(w.Stocks) > 0 {
				printStockTable("", w.Stocks, 0)
			}
		}
		return nil
	},
}

var watchlistCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a new watchlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		created, err := watchlists.Create(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Created watchlist %q (id %s)\n", created.Name, created.ID)
		return nil
	},
}

var watchlistAddCmd = &cobra.Command{
	Use:   "add SYMBOL WATCHLIST_ID [WATCHLIST_ID...]",
	Short: "Add a stock to one or more watchlists",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol := strings.ToUpper(args[0])
		if err := model.ValidateSymbol(symbol); err != nil {
			return err
		}

		// fetch a quote so the saved entry carries current prices; fall
		// back to a bare snapshot when the symbol is not among the movers
		stock := model.Stock{Symbol: symbol, Name: symbol, Price: "0", Change: "0", ChangePercent: "0%", Volume: "0"}
		if movers, err := quotes.TopMovers(cmd.Context()); err == nil {
			for _, list := range [][]model.Stock{movers.TopGainers, movers.TopLosers, movers.MostActive} {
				for _, s := range list {
					if s.Symbol == symbol {
						stock = s
					}
				}
			}
		}

		if len(args) == 2 {
			if err := watchlists.AddStock(cmd.Context(), args[1], stock); err != nil {
				return err
			}
			fmt.Printf("Added %s to watchlist %s\n", symbol, args[1])
			return nil
		}

		err := watchlists.AddStockToMany(cmd.Context(), args[1:], stock)
		if err != nil {
			return err
		}
		fmt.Printf("Added %s to %d watchlists\n", symbol, len(args)-1)
		return nil
	},
}

var watchlistRemoveCmd = &cobra.Command{
	Use:   "remove WATCHLIST_ID SYMBOL",
	Short: "Remove a stock from a watchlist",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := watchlists.RemoveStock(cmd.Context(), args[0], strings.ToUpper(args[1])); err != nil {
			return err
		}
		fmt.Printf("Removed %s from watchlist %s\n", strings.ToUpper(args[1]), args[0])
		return nil
	},
}

var watchlistDeleteCmd = &cobra.Command{
	Use:   "delete WATCHLIST_ID",
	Short: "Delete a watchlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := watchlists.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted watchlist %s\n", args[0])
		return nil
	},
}

var watchlistFindCmd = &cobra.Command{
	Use:   "find SYMBOL",
	Short: "List the watchlists containing a symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol := strings.ToUpper(args[0])
		containing, err := watchlists.ListContaining(cmd.Context(), symbol)
		if err != nil {
			return err
		}
		if len(containing) == 0 {
			fmt.Printf("%s is not in any watchlist\n", symbol)
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSTOCKS")
		for _, list := range containing {
			fmt.Fprintf(w, "%s\t%s\t%d\n", list.ID, list.Name, len(list.Stocks))
		}
		w.Flush()
		return nil
	},
}

func init() {
	watchlistCmd.AddCommand(watchlistListCmd)
	watchlistCmd.AddCommand(watchlistCreateCmd)
	watchlistCmd.AddCommand(watchlistAddCmd)
	watchlistCmd.AddCommand(watchlistRemoveCmd)
	watchlistCmd.AddCommand(watchlistDeleteCmd)
	watchlistCmd.AddCommand(watchlistFindCmd)
}

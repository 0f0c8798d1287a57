package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/notnotrachit/GrowwwStocks/utils"
)

var overviewCmd = &cobra.Command{
	Use:   "overview SYMBOL",
	Short: "Show company fundamentals for a symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		overview, err := quotes.CompanyOverview(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !overview.HasMinimalData() || overview.IsEmpty() {
			fmt.Printf("No company data available for %s\n", args[0])
			return nil
		}

		fmt.Printf("%s (%s)\n", overview.Name(), overview.Symbol())
		for _, info := range overview.Info() {
			fmt.Printf("%s: %s\n", info.Label, info.Value)
		}

		metrics := utils.AvailableMetrics(overview)
		if len(metrics) > 0 {
			fmt.Println()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, m := range metrics {
				fmt.Fprintf(w, "%s\t%s\n", m.Label, m.Value)
			}
			w.Flush()
		}
		return nil
	},
}

var dailyDays int

var dailyCmd = &cobra.Command{
	Use:   "daily SYMBOL",
	Short: "Show recent daily price history for a symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := quotes.TimeSeriesDaily(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s daily prices\n", data.MetaData.Symbol)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tOPEN\tHIGH\tLOW\tCLOSE\tVOLUME")
		for _, quote := range data.Window(dailyDays) {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
				quote.Date.Format("2006-01-02"),
				quote.Open.StringFixed(2), quote.High.StringFixed(2),
				quote.Low.StringFixed(2), quote.Close.StringFixed(2),
				quote.Volume)
		}
		w.Flush()
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search KEYWORDS",
	Short: "Search for stock symbols by free-text keywords",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matches, err := quotes.SymbolSearch(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			fmt.Println("No matches found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SYMBOL\tNAME\tTYPE\tREGION\tCURRENCY")
		for _, match := range matches {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				match.Symbol, match.Name, match.Type, match.Region, match.Currency)
		}
		w.Flush()
		return nil
	},
}

func init() {
	dailyCmd.Flags().IntVarP(&dailyDays, "days", "d", 30, "number of trading days to show")
}

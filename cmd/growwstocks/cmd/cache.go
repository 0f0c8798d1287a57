package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notnotrachit/GrowwwStocks/feed"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the response cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached provider responses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		quoteCache.Clear(cmd.Context())
		fmt.Println("Cache cleared")
		return nil
	},
}

var providerCmd = &cobra.Command{
	Use:   "provider",
	Short: "Show the active quote provider and its pacing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := feed.ProviderInfo(cfg)
		if err != nil {
			return err
		}
		fmt.Println(info)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
}

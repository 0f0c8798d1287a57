package main

import (
	"os"

	"github.com/notnotrachit/GrowwwStocks/cmd/growwstocks/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

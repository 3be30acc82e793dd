package main

import (
	"os"

	"github.com/reoring/wktcrs/cmd/wktcrs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"task-manager/internal/api"
	"task-manager/internal/cli"
)

func main() {
	// Configuration is resolved by the root command so flags can override env
	root := cli.NewRootCommand(api.NewFromConfig)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

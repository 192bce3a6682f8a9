package main

import (
	"flag"
	"fmt"
	"os"

	"sdn/internal/di"
	"sdn/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.EnvFile, "env-file", "", "path to an env file loaded before reading the environment")
	flag.BoolVar(&flags.DebugMode, "debug", false, "force debug logging")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "sdn: %s\n", err)
		os.Exit(1)
	}
}

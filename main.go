package main

import (
	"fmt"
	"os"
	"strings"

	"pressroom/service"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("pressroom version %s\n", cliVersion)
	case "serve":
		service.RunAppServer(os.Args[2:])
	case "db":
		service.HandleDBCommand(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: pressroom <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve [--config <file>]        Run the blog web service.
  db <subcommand>                Manage the database (init, clean, backup, restore).
`
	fmt.Println(helpText)
}

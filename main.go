package main

import (
	"fmt"
	"os"
	"strings"

	"inkwell/cli"
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
		fmt.Printf("inkwell version %s\n", cliVersion)
	case "serve", "init", "clean", "backup", "restore":
		cli.HandleCommand(os.Args[1:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: inkwell <command> [options]

Commands:
  help                           Display this help message.
  version                        Show version information.
  serve                          Run the blog API server.
  init                           Initialize a new empty database.
  clean                          Remove the database.
  backup                         Create a backup of the database.
  restore <file>                 Restore database from a backup file.
`
	fmt.Println(helpText)
}

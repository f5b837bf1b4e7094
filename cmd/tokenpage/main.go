package main

import (
	"fmt"
	"os"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	args := os.Args[2:]
	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(args)
	case "new":
		err = runNew(args, os.Stdout)
	case "copy":
		err = runCopy(args, os.Stdout)
	case "links":
		err = runLinks(args, os.Stdout)
	case "version":
		fmt.Printf("tokenpage %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`tokenpage - Token promo pages built with Go, Echo, and templ

Usage:
  tokenpage <command> [arguments]

Commands:
  serve [--config file] [--addr :3000]   Serve the pages
  new <slug> [--dir characters]          Create a character configuration
  copy <slug> [--dir characters]         Copy a character's contract address
  links <slug> [--dir characters]        Show which links are live
  version                                Print the tokenpage version
  help                                   Show this help message

Examples:
  tokenpage new solid
  tokenpage links solid
  TOKENPAGE_URL=https://solid.example tokenpage serve`)
}

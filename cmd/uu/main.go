package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/timepp/uu"
	"github.com/timepp/uu/cmd/uu/commands"
)

// handlers maps command names to their entry points.
var handlers = map[string]func([]string) error{
	"stringify": commands.HandleStringify,
	"highlight": commands.HandleHighlight,
	"walk":      commands.HandleWalk,
	"find":      commands.HandleFind,
	"props":     commands.HandleProps,
	"convert":   commands.HandleConvert,
	"mcp":       commands.HandleMCP,
}

// commandNames lists every command, including the built-ins, for suggestions.
var commandNames = []string{"stringify", "highlight", "walk", "find", "props", "convert", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "--version":
		fmt.Printf("uu %s\n", uu.Version())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	}

	handler, ok := handlers[command]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", s)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err := handler(os.Args[2:]); err != nil {
		if !errors.Is(err, commands.ErrNoMatch) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// suggestCommand returns the closest command within edit distance 2, or "".
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b, by rune.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`uu - inspect JSON, YAML and msgpack documents, cycles included

Usage:
  uu <command> [options]

Commands:
  stringify   Print a document as JSON with cycle markers and size budgets
  highlight   Print a document as syntax-highlighted JSON
  walk        List every node with its path and kind
  find        Print the path of the first leaf matching a keyword
  props       List the column names of an array of records
  convert     Convert between JSON, YAML and msgpack
  mcp         Serve the tools over the Model Context Protocol (stdio)
  version     Show version information
  help        Show this help message

Examples:
  uu stringify -max-string 80 data.yaml
  uu highlight -color always response.json | less -R
  uu walk -kind loop graph.yaml
  uu find -ignore-case paris users.json
  uu props -path data.items -flatten response.json
  uu convert data.yaml -o data.msgpack.zst

Configuration:
  Defaults are read from the TOML file named by --config or $UU_CONFIG,
  then overridden by UU_* environment variables.

Run 'uu <command> --help' for more information on a command.`)
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/modelref"
	"github.com/erraggy/modelref/cmd/modelref/commands"
	"github.com/erraggy/modelref/internal/mcpserver"
)

// commandNames lists the commands suggestCommand may propose.
var commandNames = []string{"name", "ref", "values", "sig", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("modelref %s\n", modelref.Version())
		if len(args) > 0 && args[0] == "--verbose" {
			fmt.Println(modelref.BuildInfo())
		}
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	case "name":
		err = commands.HandleName(args, os.Stdout)
	case "ref":
		err = commands.HandleRef(args, os.Stdout)
	case "values":
		err = commands.HandleValues(args, os.Stdout)
	case "sig":
		err = commands.HandleSig(args, os.Stdout)
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err = mcpserver.Run(ctx)
		stop()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", s)
		}
		fmt.Fprintln(os.Stderr)
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" if none is close enough.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage(w io.Writer) {
	commands.Writef(w, `modelref - Go type to API model reference resolver

Usage:
  modelref <command> [options] <type>

Commands:
  name        Print the model name of a type
  ref         Print the model reference built for a type
  values      Print the allowable enumeration values of a type
  sig         Print the structural signature of a type
  mcp         Serve the commands as MCP tools over stdio
  version     Show version information (--verbose for build details)
  help        Show this help message

Types are Go type expressions such as '[]string', 'map[string][]int32',
'*time.Time' or 'void'. Use --opaque to pass a model identity such as
github.com/org/models.Pet instead.

Configuration:
  --config FILE           YAML configuration (naming, generic_naming, max_depth,
                          primitives, enums, log_level)
  MODELREF_NAMING         naming strategy override
  MODELREF_GENERIC_NAMING generic naming override
  MODELREF_MAX_DEPTH      resolver recursion limit
  MODELREF_LOG_LEVEL      debug, info, warn or error
  MODELREF_CONFIG         configuration file for the mcp command

Examples:
  modelref name '[]string'
  modelref ref --format json 'map[string]int64'
  modelref values --opaque --enum x.Size=S,M,L x.Size
  modelref sig 'map[string][]int32'

Run 'modelref <command> --help' for more information on a command.
`)
}

package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: todosync <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  sync       Sync a delimited outline block into another document")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'todosync help <command>' for details on a specific command.")
}

// printSyncUsage prints usage for the sync command.
func printSyncUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: todosync sync [flags] <input> <output>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Extract a delimited block of bullet lines from <input>, filter and")
	fmt.Fprintln(w, "transform them, and replace the delimited block in <output>.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input     Source document (optional if config has files.input)")
	fmt.Fprintln(w, "  output    Destination document (optional if config has files.output)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Delimiters:")
	fmt.Fprintln(w, "      --input-start <re>    Source block start (\"\" = start of document)")
	fmt.Fprintln(w, "      --input-end <re>      Source block end (\"\" = end of document)")
	fmt.Fprintln(w, "      --output-start <re>   Destination block start (required)")
	fmt.Fprintln(w, "      --output-end <re>     Destination block end (required)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Filtering:")
	fmt.Fprintln(w, "  -p, --pattern <re>        Inclusion regex (\"\" = keep all lines)")
	fmt.Fprintln(w, "      --max-level <n>       Deepest kept bullet level (-1 = unlimited)")
	fmt.Fprintln(w, "  -r, --recursive           Kept lines also keep their descendants")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Transform:")
	fmt.Fprintln(w, "      --search <re>         Substitution regex applied to kept lines")
	fmt.Fprintln(w, "      --replace <s>         Replacement template ($1, ${name})")
	fmt.Fprintln(w, "      --strip-properties    Drop Logseq key:: value lines")
	fmt.Fprintln(w, "      --keep-new-lines      Keep multi-line bullet content")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Behavior:")
	fmt.Fprintln(w, "      --strict-empty        Treat zero kept lines as an error")
	fmt.Fprintln(w, "      --indent-width <n>    Spaces per nesting level (default 2)")
	fmt.Fprintln(w, "      --dry-run             Print the result instead of writing")
	fmt.Fprintln(w, "  -w, --watch               Re-sync whenever the input file changes")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show pipeline details")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "sync":
		printSyncUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: todosync version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: todosync help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}

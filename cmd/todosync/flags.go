package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// maxLevelSentinel detects if --max-level was explicitly set.
// Since -1 is a valid value (unlimited), we use an out-of-range sentinel.
// Valid values are >= -1; -2 is safely outside this range.
const maxLevelSentinel = -2

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// delimiterFlags holds block boundary flags.
type delimiterFlags struct {
	inputStart  string
	inputEnd    string
	outputStart string
	outputEnd   string
}

// filterFlags holds line filtering flags.
type filterFlags struct {
	pattern   string
	maxLevel  int
	recursive bool
}

// transformFlags holds line rewriting flags.
type transformFlags struct {
	search          string
	replace         string
	stripProperties bool
	keepNewLines    bool
}

// behaviorFlags holds pipeline policy flags.
type behaviorFlags struct {
	strictEmpty bool
	indentWidth int
	dryRun      bool
	watch       bool
}

// syncFlags holds all flags for the sync command.
type syncFlags struct {
	common     commonFlags
	delimiters delimiterFlags
	filter     filterFlags
	transform  transformFlags
	behavior   behaviorFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show pipeline details")
}

// addDelimiterFlags adds block boundary flags to a FlagSet.
func addDelimiterFlags(fs *flag.FlagSet, f *delimiterFlags) {
	fs.StringVar(&f.inputStart, "input-start", "", "source block start regex (\"\" = start of document)")
	fs.StringVar(&f.inputEnd, "input-end", "", "source block end regex (\"\" = end of document)")
	fs.StringVar(&f.outputStart, "output-start", "", "destination block start regex (required)")
	fs.StringVar(&f.outputEnd, "output-end", "", "destination block end regex (required)")
}

// addFilterFlags adds line filtering flags to a FlagSet.
func addFilterFlags(fs *flag.FlagSet, f *filterFlags) {
	fs.StringVarP(&f.pattern, "pattern", "p", "", "inclusion regex (\"\" = keep all lines)")
	fs.IntVar(&f.maxLevel, "max-level", maxLevelSentinel, "deepest kept bullet level (-1 = unlimited)")
	fs.BoolVarP(&f.recursive, "recursive", "r", false, "kept lines also keep their descendants")
}

// addTransformFlags adds line rewriting flags to a FlagSet.
func addTransformFlags(fs *flag.FlagSet, f *transformFlags) {
	fs.StringVar(&f.search, "search", "", "substitution regex applied to kept lines")
	fs.StringVar(&f.replace, "replace", "", "replacement template ($1, ${name})")
	fs.BoolVar(&f.stripProperties, "strip-properties", false, "drop Logseq key:: value lines")
	fs.BoolVar(&f.keepNewLines, "keep-new-lines", false, "keep multi-line bullet content")
}

// addBehaviorFlags adds pipeline policy flags to a FlagSet.
func addBehaviorFlags(fs *flag.FlagSet, f *behaviorFlags) {
	fs.BoolVar(&f.strictEmpty, "strict-empty", false, "treat zero kept lines as an error")
	fs.IntVar(&f.indentWidth, "indent-width", 0, "spaces per nesting level (0 = default 2)")
	fs.BoolVar(&f.dryRun, "dry-run", false, "print the result instead of writing the output file")
	fs.BoolVarP(&f.watch, "watch", "w", false, "re-sync whenever the input file changes")
}

// parseSyncFlags parses sync command flags and returns positional args.
func parseSyncFlags(args []string) (*syncFlags, []string, error) {
	fs := flag.NewFlagSet("sync", flag.ContinueOnError)
	f := &syncFlags{}

	addCommonFlags(fs, &f.common)
	addDelimiterFlags(fs, &f.delimiters)
	addFilterFlags(fs, &f.filter)
	addTransformFlags(fs, &f.transform)
	addBehaviorFlags(fs, &f.behavior)

	fs.Usage = func() { printSyncUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

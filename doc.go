// Package todosync keeps a curated subset of a Logseq-style outline
// synchronized into a delimited block of another plain-text document.
//
// # Quick Start
//
// Create a service and run a sync:
//
//	svc := todosync.New()
//
//	result, err := svc.Sync(todosync.Input{
//	    Source:      journalText,
//	    Dest:        readmeText,
//	    SourceStart: todosync.DocumentEdge(),
//	    SourceEnd:   todosync.DocumentEdge(),
//	    DestStart:   todosync.Delimiter(`<!-- BEGIN_TODO -->`),
//	    DestEnd:     todosync.Delimiter(`<!-- END_TODO -->`),
//	    Filter: todosync.FilterConfig{
//	        Pattern:   "TODO|DOING",
//	        MaxLevel:  todosync.UnlimitedLevel,
//	        Recursive: true,
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("README.md", []byte(result), 0644)
//
// The result is the full new text of the destination document; everything
// outside the destination delimiters is preserved byte-for-byte.
//
// # Pipeline
//
// A sync runs four stages, each a pure function of its input:
//
//  1. Block extraction: locate the delimited block in the source document.
//     Delimiters are regex patterns that must match exactly one line, or
//     DocumentEdge sentinels meaning the physical start/end of the file.
//  2. Line filtering: keep lines matching the inclusion pattern within the
//     level ceiling. With Recursive set, a kept line also keeps its nested
//     descendants until the first sibling-or-shallower line.
//  3. Line transformation: strip Logseq "key:: value" property lines,
//     apply an optional search/replace to each line's content, and join
//     multi-line bullet content unless KeepNewLines is set.
//  4. Block splicing: replace the destination document's delimited block
//     with the transformed lines.
//
// # Depth Convention
//
// Nesting levels are 1-based and derived from leading whitespace: a bullet
// at column zero is level 1, and every two further spaces (configurable
// via WithIndentWidth) add one level. A tab counts as one indent unit.
//
// Documents are modeled as slices of lines split on "\n"; callers are
// expected to normalize CRLF line endings before invoking the pipeline.
package todosync

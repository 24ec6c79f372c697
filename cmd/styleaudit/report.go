package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gnana997/styleaudit/pkg/scanner"
)

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printReport writes a human-readable audit summary to stdout.
func printReport(result *scanner.ScanResult, files []scanner.FileSuggestions) {
	resolved, unresolved := 0, 0

	for _, fs := range files {
		fmt.Printf("%s\n", fs.Path)
		for _, sug := range fs.Suggestions {
			loc := sug.Match.Location
			if sug.Token != nil {
				resolved++
				fmt.Printf("  %d:%d  %-12s %-28s -> %s (%s, %.2f)\n",
					loc.Line, loc.Column, sug.Match.Category, sug.Match.Value,
					sug.Token.Variable, sug.Token.Name, sug.Confidence)
			} else {
				unresolved++
				fmt.Printf("  %d:%d  %-12s %-28s -> no matching token\n",
					loc.Line, loc.Column, sug.Match.Category, sug.Match.Value)
			}
		}
		fmt.Println()
	}

	fmt.Printf("%d files scanned, %d hardcoded values (%d resolvable, %d without a token), %dms\n",
		result.Stats.FilesScanned, result.Stats.TotalMatches, resolved, unresolved,
		result.Stats.TotalTimeMs)
}

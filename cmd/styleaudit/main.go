package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gnana997/styleaudit/pkg/indexer"
	mcpserver "github.com/gnana997/styleaudit/pkg/mcp"
	"github.com/gnana997/styleaudit/pkg/mcplog"
	"github.com/gnana997/styleaudit/pkg/registry"
	"github.com/gnana997/styleaudit/pkg/scanner"
	"github.com/gnana997/styleaudit/pkg/util"
)

const version = "0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch command := os.Args[1]; command {
	case "scan":
		err = runScan(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	case "export":
		err = runExport(os.Args[2:])
	case "watch":
		err = runWatch(os.Args[2:])
	case "version":
		fmt.Printf("styleaudit %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *slog.Logger {
	cfg := util.DefaultLoggerConfig()
	if verbose {
		cfg.Level = util.LevelDebug
	}
	return util.NewLogger(cfg)
}

// initRegistry builds the token registry from the resolved source, falling
// back to every stylesheet discovered under root.
func initRegistry(log *slog.Logger, tokensFlag, root string) (*registry.Registry, error) {
	reg := registry.New(log)

	source := resolveTokenSource(tokensFlag)
	if source != "" {
		if err := reg.Initialize(source); err != nil {
			return nil, fmt.Errorf("initialize registry: %w", err)
		}
		return reg, nil
	}

	cssFiles, err := scanner.DiscoverCSSFiles(root, scanner.DefaultScanConfig())
	if err != nil {
		return nil, fmt.Errorf("discover stylesheets: %w", err)
	}
	if len(cssFiles) == 0 {
		return nil, fmt.Errorf("no stylesheets found under %s; pass --tokens", root)
	}

	var sb strings.Builder
	for _, path := range cssFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn("skipping unreadable stylesheet", "path", path, "error", err)
			continue
		}
		sb.Write(data)
		sb.WriteByte('\n')
	}
	if err := reg.Initialize(sb.String()); err != nil {
		return nil, fmt.Errorf("initialize registry: %w", err)
	}

	log.Info("registry initialized", "stylesheets", len(cssFiles))
	return reg, nil
}

func runScan(args []string) error {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	tokens := fs.String("tokens", "", "CSS file declaring the design tokens")
	verbose := fs.Bool("verbose", false, "enable debug logging")
	asJSON := fs.Bool("json", false, "print results as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	root := "."
	if fs.NArg() > 0 {
		root = fs.Arg(0)
	}

	log := newLogger(*verbose)
	reg, err := initRegistry(log, *tokens, root)
	if err != nil {
		return err
	}

	sc := scanner.New(log)
	defer sc.Close()

	result, err := sc.Run(root, scanner.DefaultScanConfig())
	if err != nil {
		return err
	}

	suggestions, err := scanner.Resolve(reg, result)
	if err != nil {
		return err
	}

	if *asJSON {
		return printJSON(map[string]any{
			"stats":       result.Stats,
			"files":       result.Files,
			"suggestions": suggestions,
		})
	}
	printReport(result, suggestions)
	return nil
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	tokens := fs.String("tokens", "", "CSS file declaring the design tokens")
	dir := fs.String("dir", ".", "project root for stylesheet discovery")
	logPath := fs.String("log", "", "JSONL tool-call log path")
	verbose := fs.Bool("verbose", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log := newLogger(*verbose)
	reg, err := initRegistry(log, *tokens, *dir)
	if err != nil {
		return err
	}

	sc := scanner.New(log)
	defer sc.Close()

	toolLog, err := mcplog.NewLogger(resolveLogPath(*logPath))
	if err != nil {
		return err
	}
	if toolLog != nil {
		defer toolLog.Close()
	}

	srv := mcpserver.NewServer(reg, sc, toolLog, log)
	log.Info("MCP server listening on stdio")
	if err := srv.ServeStdio(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	tokens := fs.String("tokens", "", "CSS file declaring the design tokens")
	dir := fs.String("dir", ".", "project root for stylesheet discovery")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: styleaudit export <output.json>")
	}
	out := fs.Arg(0)

	log := newLogger(false)
	reg, err := initRegistry(log, *tokens, *dir)
	if err != nil {
		return err
	}
	if err := reg.ExportTokens(out); err != nil {
		return fmt.Errorf("export tokens: %w", err)
	}
	fmt.Printf("tokens written to %s\n", out)
	return nil
}

func runWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	tokens := fs.String("tokens", "", "CSS file declaring the design tokens")
	verbose := fs.Bool("verbose", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	root := "."
	if fs.NArg() > 0 {
		root = fs.Arg(0)
	}

	log := newLogger(*verbose)
	reg, err := initRegistry(log, *tokens, root)
	if err != nil {
		return err
	}
	_ = reg // tokens validated up front; the index serves raw matches

	sc := scanner.New(log)
	defer sc.Close()

	cfg := scanner.DefaultScanConfig()
	idx := indexer.NewMatchIndex(indexer.DefaultMatchIndexConfig(), log)

	// Seed the index with a full scan before watching.
	result, err := sc.Run(root, cfg)
	if err != nil {
		return err
	}
	for _, fm := range result.Files {
		content, err := os.ReadFile(fm.Path)
		if err != nil {
			continue
		}
		idx.Put(fm.Path, content, fm)
	}
	log.Info("initial scan complete",
		"files", result.Stats.FilesScanned, "matches", result.Stats.TotalMatches)

	w, err := indexer.NewWatcher(sc, idx, cfg, indexer.DefaultWatchOptions(), log)
	if err != nil {
		return err
	}
	if err := w.Start(root); err != nil {
		return err
	}
	defer w.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	stats := idx.Stats()
	log.Info("watch stopped",
		"indexed", stats.IndexedFiles, "matches", stats.TotalMatches)
	return nil
}

func printUsage() {
	fmt.Println("Usage: styleaudit <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  scan [dir]       Scan component sources for hardcoded style values")
	fmt.Println("  serve            Start the MCP server on stdio")
	fmt.Println("  export <path>    Write the token registry as JSON")
	fmt.Println("  watch [dir]      Watch sources and keep the match index current")
	fmt.Println("  version          Print version")
	fmt.Println("  help             Show this help message")
	fmt.Println()
	fmt.Println("Common flags:")
	fmt.Println("  --tokens <css>   Token stylesheet (default: discovered under the root)")
	fmt.Println("  --verbose        Debug logging")
}

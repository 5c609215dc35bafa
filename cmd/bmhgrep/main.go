// Command bmhgrep is a grep-like tool that reports the first occurrence
// of a needle within one or more files, directories, or stdin. It adapts
// ivancich-substr/src/sift/tool.go to this module's first-match-only
// streaming searcher; the teacher's -a (all matches) and -c (match count)
// flags are dropped along with the all-matches enumeration they depend on.
package main

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/FooBarWidget/boyer-moore-horspool/internal/bytearray"
	"github.com/FooBarWidget/boyer-moore-horspool/internal/clierr"
	"github.com/FooBarWidget/boyer-moore-horspool/internal/config"
	"github.com/FooBarWidget/boyer-moore-horspool/internal/obslog"
	"github.com/FooBarWidget/boyer-moore-horspool/substr"
)

const (
	statusFound      = 0
	statusNoneFound  = 1
	statusFatalError = 2
)

// CLI is bmhgrep's flag and argument schema.
type CLI struct {
	Text  string              `short:"t" help:"Text to look for within input(s)."`
	Hex   bytearray.ByteArray `short:"b" help:"Bytes to look for, as hex digit pairs (e.g. 00ff00AA)."`
	Rec   bool                `short:"r" help:"Recursively descend into directories."`
	Quiet bool                `short:"q" help:"Exit immediately with status 0 on the first match found, printing nothing."`
	Stdin bool                `help:"Also search standard input."`

	Color    bool   `negatable:"" default:"true" help:"Colorize the reported offset."`
	LogLevel string `default:"info" help:"Log level: debug, info, warn, error."`
	Config   string `type:"path" help:"Optional YAML config file."`

	Inputs []string `arg:"" optional:"" help:"Files or directories to search."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("bmhgrep"),
		kong.Description("Report the first occurrence of a needle in one or more inputs."))

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(statusFatalError)
	}
	obslog.Configure(obslog.ParseLevel(cli.LogLevel), cfg.LogFormat, nil)
	color.NoColor = color.NoColor || !cli.Color || !cfg.Color

	tracker := &clierr.Tracker{}
	defer tracker.Recover()

	needle, err := resolveNeedle(cli)
	if err != nil {
		tracker.Fatal(statusFatalError, err.Error())
	}

	tables, err := substr.NewTables(needle)
	if err != nil {
		tracker.Fatal(statusFatalError, err.Error())
	}

	foundAny := false

	if cli.Stdin {
		if processReader(tracker, "STDIN", os.Stdin, needle, tables, cli.Quiet) {
			foundAny = true
			if cli.Quiet {
				os.Exit(statusFound)
			}
		}
	}

	for _, path := range cli.Inputs {
		if processPath(tracker, path, path, needle, tables, cli) {
			foundAny = true
			if cli.Quiet {
				os.Exit(statusFound)
			}
		}
	}

	if cli.Quiet {
		os.Exit(statusNoneFound)
	}
	if !foundAny && tracker.ExitCode() == 0 {
		tracker.Error(statusNoneFound, "no matches found")
	}
}

func resolveNeedle(cli CLI) ([]byte, error) {
	switch {
	case len(cli.Text) != 0 && len(cli.Hex) != 0:
		return nil, fmt.Errorf("specify only one of -t and -b")
	case len(cli.Text) != 0:
		return []byte(cli.Text), nil
	case len(cli.Hex) != 0:
		return cli.Hex, nil
	default:
		return nil, fmt.Errorf("specify a needle with -t or -b")
	}
}

func processPath(tracker *clierr.Tracker, entry, displayPath string, needle []byte, tables *substr.Tables, cli CLI) bool {
	info, err := os.Stat(entry)
	if err != nil {
		tracker.Error(statusFatalError, "stat failed", "path", displayPath, "err", err)
		return false
	}

	if !info.IsDir() {
		f, err := os.Open(entry)
		if err != nil {
			tracker.Error(statusFatalError, "open failed", "path", displayPath, "err", err)
			return false
		}
		defer f.Close()
		return processReader(tracker, displayPath, f, needle, tables, cli.Quiet)
	}

	if !cli.Rec {
		tracker.Error(statusFatalError, "is a directory without -r", "path", displayPath)
		return false
	}

	foundAny := false
	err = filepath.WalkDir(entry, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			tracker.Error(statusFatalError, "walk failed", "path", p, "err", err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		f, err := os.Open(p)
		if err != nil {
			tracker.Error(statusFatalError, "open failed", "path", p, "err", err)
			return nil
		}
		defer f.Close()
		if processReader(tracker, p, f, needle, tables, cli.Quiet) {
			foundAny = true
			if cli.Quiet {
				return fs.SkipAll
			}
		}
		return nil
	})
	if err != nil && err != fs.SkipAll {
		tracker.Error(statusFatalError, "walk failed", "path", displayPath, "err", err)
	}
	return foundAny
}

func processReader(tracker *clierr.Tracker, displayPath string, r io.Reader, needle []byte, tables *substr.Tables, quiet bool) bool {
	found, offset, err := substr.FindFirstInReader(r, tables, needle)
	if err != nil {
		tracker.Error(statusFatalError, "search failed", "path", displayPath, "err", err)
		return false
	}
	if !found {
		return false
	}
	if quiet {
		return true
	}

	offsetText := fmt.Sprintf("%d", offset)
	if !color.NoColor {
		offsetText = color.New(color.FgGreen, color.Bold).Sprint(offsetText)
	}
	fmt.Printf("%s: first offset %s\n", displayPath, offsetText)
	slog.Debug("match", "path", displayPath, "offset", offset)
	return true
}

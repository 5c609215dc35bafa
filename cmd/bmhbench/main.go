// Command bmhbench times the four searchers in this module against the
// same file and needle, following original_source/benchmark.cpp's exact
// <file> <needle> <iterations> contract and per-algorithm report line.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/klauspost/cpuid"
	"github.com/pbnjay/memory"

	"github.com/FooBarWidget/boyer-moore-horspool/internal/config"
	"github.com/FooBarWidget/boyer-moore-horspool/internal/obslog"
	"github.com/FooBarWidget/boyer-moore-horspool/substr"
)

const (
	statusOK        = 0
	statusFileError = 2
)

// CLI is bmhbench's flag and argument schema; File/Needle/Iterations
// default exactly as original_source/benchmark.cpp does when an argument
// is omitted.
type CLI struct {
	File       string `arg:"" optional:"" default:"binary.dat" help:"File to search."`
	Needle     string `arg:"" optional:"" default:"I have control\n" help:"Needle to search for."`
	Iterations int    `arg:"" optional:"" default:"10" help:"Number of timed repetitions per algorithm."`

	Sysinfo  bool   `help:"Print CPU and memory diagnostics before benchmarking."`
	Color    bool   `negatable:"" default:"true" help:"Colorize each algorithm's label."`
	LogLevel string `default:"info" help:"Log level: debug, info, warn, error."`
	Config   string `type:"path" help:"Optional YAML config file."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("bmhbench"),
		kong.Description("Benchmark the one-shot and streaming searchers against a file."))

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(statusFileError)
	}
	obslog.Configure(obslog.ParseLevel(cli.LogLevel), cfg.LogFormat, nil)
	color.NoColor = !cli.Color || !cfg.Color

	if cli.Sysinfo {
		printSysinfo()
	}

	data, err := os.ReadFile(cli.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not read %s: %s\n", cli.File, err)
		os.Exit(statusFileError)
	}

	needle := []byte(cli.Needle)
	data = append(data, ':')
	data = append(data, needle...)

	tables, err := substr.NewTables(needle)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(statusFileError)
	}

	report("Boyer-Moore", cli.Iterations, func() int {
		return substr.BMSearch(data, tables, needle)
	})
	report("Boyer-Moore-Horspool", cli.Iterations, func() int {
		return substr.HorspoolSearch(data, tables, needle)
	})
	report("Stream Horspool", cli.Iterations, func() int {
		return streamSearchOnce(data, tables, needle)
	})
	report("Turbo Boyer-Moore", cli.Iterations, func() int {
		return substr.TurboBMSearch(data, tables, needle)
	})

	os.Exit(statusOK)
}

func streamSearchOnce(data []byte, tables *substr.Tables, needle []byte) int {
	m := len(needle)
	buf := make([]byte, substr.ContextBufferSize(m))
	ctx, err := substr.NewContext(buf, tables, m)
	if err != nil {
		return len(data)
	}
	ctx.Feed(needle, data)
	if ctx.Found() {
		return int(ctx.Analyzed()) - m
	}
	return len(data)
}

func report(name string, iterations int, run func() int) {
	start := time.Now()
	found := 0
	for i := 0; i < iterations; i++ {
		found = run()
	}
	elapsed := time.Since(start)

	label := name
	if !color.NoColor {
		label = color.New(color.FgCyan, color.Bold).Sprint(name)
	}
	fmt.Printf("%s : found at position %d in %d msec\n", label, found, elapsed.Milliseconds())
}

func printSysinfo() {
	fmt.Fprintf(os.Stderr, "Cores %d\n", runtime.NumCPU())
	if cpuid.CPU.ThreadsPerCore > 0 {
		fmt.Fprintf(os.Stderr, "ThreadsPerCore %d\n", cpuid.CPU.ThreadsPerCore)
	}
	if cpuid.CPU.LogicalCores > 0 {
		fmt.Fprintf(os.Stderr, "LogicalCores %d\n", cpuid.CPU.LogicalCores)
	}
	fmt.Fprintf(os.Stderr, "MemoryGiB %d\n", memory.TotalMemory()/(1024*1024*1024))
}

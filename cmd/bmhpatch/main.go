// Command bmhpatch rewrites the first occurrence of a needle in a file
// with a same-length replacement. It adapts ivancich-substr/src/swap.go's
// temp-file/backup/rename write path, but locates the patch offset itself
// via HorspoolSearch instead of taking offsets as command-line arguments.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/FooBarWidget/boyer-moore-horspool/internal/bytearray"
	"github.com/FooBarWidget/boyer-moore-horspool/internal/clierr"
	"github.com/FooBarWidget/boyer-moore-horspool/internal/config"
	"github.com/FooBarWidget/boyer-moore-horspool/internal/obslog"
	"github.com/FooBarWidget/boyer-moore-horspool/substr"
)

const statusFatalError = 1

// CLI is bmhpatch's flag and argument schema.
type CLI struct {
	Find    string              `help:"Text to search for; the first match is patched."`
	FindHex bytearray.ByteArray `name:"findb" help:"Bytes to search for, as hex digit pairs."`
	To      string              `help:"Replacement text; must be the same length as the match."`
	ToHex   bytearray.ByteArray `name:"tob" help:"Replacement bytes, as hex digit pairs."`

	LogLevel string `default:"info" help:"Log level: debug, info, warn, error."`
	Config   string `type:"path" help:"Optional YAML config file."`

	File string `arg:"" help:"File to patch in place."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("bmhpatch"),
		kong.Description("Search-and-replace the first occurrence of a needle in a file."))

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(statusFatalError)
	}
	obslog.Configure(obslog.ParseLevel(cli.LogLevel), cfg.LogFormat, nil)

	tracker := &clierr.Tracker{}
	defer tracker.Recover()

	find, to, err := resolveFindReplace(cli)
	if err != nil {
		tracker.Fatal(statusFatalError, err.Error())
	}

	if err := patchFirstMatch(cli.File, find, to); err != nil {
		tracker.Fatal(statusFatalError, err.Error())
	}
}

func resolveFindReplace(cli CLI) (find, to []byte, err error) {
	switch {
	case len(cli.Find) != 0 && len(cli.FindHex) != 0:
		return nil, nil, errors.New("specify only one of --find and --findb")
	case len(cli.Find) != 0:
		find = []byte(cli.Find)
	case len(cli.FindHex) != 0:
		find = cli.FindHex
	default:
		return nil, nil, errors.New("specify a needle with --find or --findb")
	}

	switch {
	case len(cli.To) != 0 && len(cli.ToHex) != 0:
		return nil, nil, errors.New("specify only one of --to and --tob")
	case len(cli.To) != 0:
		to = []byte(cli.To)
	case len(cli.ToHex) != 0:
		to = cli.ToHex
	default:
		return nil, nil, errors.New("must specify either --to or --tob")
	}

	if len(find) != len(to) {
		return nil, nil, fmt.Errorf("--find/--findb (%d bytes) must be the same length as --to/--tob (%d bytes)", len(find), len(to))
	}
	return find, to, nil
}

func patchFirstMatch(path string, find, to []byte) error {
	inFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open file %q: %w", path, err)
	}
	defer inFile.Close()

	data, err := io.ReadAll(inFile)
	if err != nil {
		return fmt.Errorf("could not read file %q: %w", path, err)
	}

	tables, err := substr.NewTables(find)
	if err != nil {
		return err
	}
	offset := substr.HorspoolSearch(data, tables, find)
	if offset == len(data) {
		return fmt.Errorf("needle not found in %q", path)
	}

	outFileName, outFile, err := makeTempFile(path, "tmp")
	if err != nil {
		return err
	}
	complete := false
	defer func() {
		outFile.Close()
		if complete {
			return
		}
		os.Remove(outFileName)
	}()

	if _, err := outFile.Write(data); err != nil {
		return fmt.Errorf("error writing temp file: %w", err)
	}
	if _, err := outFile.WriteAt(to, int64(offset)); err != nil {
		return fmt.Errorf("error patching temp file: %w", err)
	}

	mode := os.FileMode(0600)
	if fi, statErr := inFile.Stat(); statErr == nil {
		mode = fi.Mode()
	}

	backupName, backupFile, err := makeTempFile(path, "backup")
	if err != nil {
		return err
	}
	if err := backupFile.Close(); err != nil {
		return err
	}
	if err := os.Rename(path, backupName); err != nil {
		return err
	}
	if err := os.Rename(outFileName, path); err != nil {
		return err
	}
	if err := os.Chmod(path, mode); err != nil {
		return err
	}

	complete = true
	fmt.Printf("%s: patched %d byte(s) at offset %d (backup at %s)\n", path, len(to), offset, backupName)
	return nil
}

func makeTempFile(template, suffix string) (fname string, file *os.File, err error) {
	base := template + "." + suffix
	for i := 0; i <= 100; i++ {
		fname = base + strconv.Itoa(i)
		file, err = os.OpenFile(fname, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0600)
		if err == nil {
			return fname, file, nil
		}
	}
	return "", nil, fmt.Errorf("could not create temp file based on %q", template)
}

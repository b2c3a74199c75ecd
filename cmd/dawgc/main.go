// Command dawgc compiles a sorted word list into a linearized, bit-packed
// DAWG array.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/dawgpack/dawgpack"
)

func main() {
	var (
		out     string
		mode    int
		verbose bool
	)
	flag.StringVar(&out, "out", "", "output file for the packed array (default: <input>.dawg)")
	flag.IntVar(&mode, "mode", 0, "pack mode, 3 or 4 (default: the smallest mode an upper bound on the array size fits)")
	flag.BoolVar(&verbose, "v", false, "log per-stage timing to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <wordlist>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	inPath := flag.Arg(0)

	level := zerolog.Disabled
	if verbose {
		level = zerolog.DebugLevel
	}
	dawg.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	if out == "" {
		out = inPath + ".dawg"
	}

	words, err := readWords(inPath)
	if err != nil {
		fatal(err)
	}

	packMode, err := resolveMode(words, mode)
	if err != nil {
		fatal(err)
	}

	if !confirmOverwrite(out) {
		fmt.Fprintln(os.Stderr, "dawgc: aborted")
		os.Exit(1)
	}

	_, encoded, stats, err := dawg.Build(words, packMode)
	if err != nil {
		fatal(err)
	}

	if err := os.WriteFile(out, encoded, 0o644); err != nil {
		fatal(dawg.WrapIOError(fmt.Sprintf("write %s", out), err))
	}

	fmt.Fprintf(os.Stderr,
		"%s: %d words, %d nodes, %d lists, mode %d, %d bytes\n",
		out, stats.WordCount, stats.NodeCount, stats.ListCount, stats.Mode, stats.EncodedSize,
	)
}

// readWords reads one word per line from path and validates them as a
// sorted, deduplicated, A-Z-only list.
func readWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, dawg.WrapIOError(fmt.Sprintf("open %s", path), err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, dawg.WrapIOError(fmt.Sprintf("read %s", path), err)
	}

	if err := dawg.ValidateWords(words); err != nil {
		return nil, err
	}
	return words, nil
}

// resolveMode returns an explicit -mode flag as given (dawg.Build rejects it
// if the real array does not fit), or else picks the smallest mode that an
// upper bound on the array size allows.
func resolveMode(words []string, requested int) (dawg.PackMode, error) {
	// The array has at most one record per letter of every word plus one
	// sentinel and one root descriptor; a generous upper bound is enough to
	// pick a mode before the real node count is known.
	upperBound := 2
	for _, w := range words {
		upperBound += len(w)
	}

	if requested != 0 {
		return dawg.PackMode(requested), nil
	}

	avail := dawg.AvailableModes(upperBound)
	if len(avail) == 0 {
		return 0, fmt.Errorf("%d words produce too many nodes for any pack mode", len(words))
	}
	return avail[0], nil
}

// confirmOverwrite asks before clobbering an existing output file, the way
// the original tool's prompt_filename step did; a file that doesn't exist
// yet needs no confirmation.
func confirmOverwrite(path string) bool {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return true
	}
	fmt.Fprintf(os.Stderr, "%s already exists, overwrite? [y/N] ", path)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	switch line {
	case "y\n", "Y\n", "yes\n":
		return true
	default:
		return false
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "dawgc:", err)
	os.Exit(1)
}

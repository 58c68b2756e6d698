package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	runedecode "github.com/chronos-tachyon/go-runedecode"
)

func main() {
	var (
		modeName     = flag.String("mode", "utf-8", "Decoding mode (utf-8 or ascii)")
		strategyName = flag.String("strategy", "incremental", "Source strategy (incremental or buffered)")
		count        = flag.Bool("count", false, "Print the number of runes per input and exit")
		verbose      = flag.Bool("v", false, "Verbose (debug) logging")
		interactive  = flag.Bool("i", false, "Interactive mode with TUI")
		repl         = flag.Bool("repl", false, "Decode lines typed at a prompt")
	)
	flag.Parse()

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	runedecode.SetLogger(log.Named("runedecode"))

	opts, err := parseOptions(*modeName, *strategyName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: runedump [-mode utf-8|ascii] [-strategy incremental|buffered] [-count] [file...]")
		fmt.Fprintln(os.Stderr, "       runedump -i     (interactive mode)")
		fmt.Fprintln(os.Stderr, "       runedump -repl  (line prompt)")
		os.Exit(2)
	}

	switch {
	case *interactive:
		err = runInteractive(opts)
	case *repl:
		err = runREPL(opts)
	default:
		err = run(log, opts, *count, flag.Args())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.Encoding = "console"
	return cfg.Build()
}

func parseOptions(modeName, strategyName string) (runedecode.Options, error) {
	mode, err := runedecode.ParseMode(modeName)
	if err != nil {
		return runedecode.Options{}, err
	}
	strategy, err := runedecode.ParseStrategy(strategyName)
	if err != nil {
		return runedecode.Options{}, err
	}
	return runedecode.Options{Mode: mode, Strategy: strategy}, nil
}

func run(log *zap.Logger, opts runedecode.Options, countOnly bool, files []string) error {
	if len(files) == 0 {
		files = []string{"-"}
	}

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	failed := 0
	for _, name := range files {
		if err := runFile(opts, countOnly, styled, name); err != nil {
			log.Error("decode failed", zap.String("input", name), zap.Error(err))
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d input(s) failed", failed, len(files))
	}
	return nil
}

func runFile(opts runedecode.Options, countOnly, styled bool, name string) error {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("open: %w", err)
		}
		defer f.Close()
		r = f
	}

	if countOnly {
		n, err := runedecode.Count(r, opts)
		fmt.Printf("%s\t%d\n", name, n)
		return err
	}

	d := runedecode.New(r, opts)
	return dump(os.Stdout, d, styled)
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"

	runedecode "github.com/chronos-tachyon/go-runedecode"
)

const (
	historyFile = ".runedump_history"
	prompt      = "runedump> "
)

func runREPL(opts runedecode.Options) error {
	fmt.Printf("runedump %s/%s. Type :quit to exit.\n", opts.Mode, opts.Strategy)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(line) {
		case "":
			continue
		case ":quit", ":q":
			return nil
		}
		ln.AppendHistory(line)

		// dump already printed the error; the prompt carries on.
		_ = dump(os.Stdout, runedecode.New(strings.NewReader(line), opts), styled)
	}
}

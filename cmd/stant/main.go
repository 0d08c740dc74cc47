// SPDX-License-Identifier: Apache-2.0
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"stant/grammar"
	"stant/internal/batch"
	"stant/internal/errors"
	"stant/internal/lexer"
)

func main() {
	debug := flag.Bool("debug", false, "dump every token to the debug log")
	parse := flag.Bool("parse", false, "parse each file as a list of expressions and print them")
	workers := flag.Int("workers", 0, "number of files lexed concurrently (0 = GOMAXPROCS)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: stant [-debug] [-parse] [-workers N] <file.swift>...")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	verbosity := 0
	if *debug {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)

	startTime := time.Now()

	results, err := batch.TokenizeFiles(context.Background(), flag.Args(), *workers, lexer.WithDebug(*debug))
	if err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}

	hasErrors := false
	for _, r := range results {
		if r.Err != nil {
			color.Red("error[%s]: %s", errors.ErrorUnreadableSource, r.Err)
			hasErrors = true
			continue
		}

		reporter := errors.NewErrorReporter(r.Name, r.Text)
		for _, se := range r.Errors {
			fmt.Print(reporter.FormatError(errors.FromScanError(r.Text, se)))
			hasErrors = true
		}

		if len(results) > 1 {
			color.New(color.Bold).Printf("%s:\n", r.Name)
		}
		for _, tok := range r.Tokens {
			fmt.Printf("%s: %s\n", tok.Kind, tok.Text(r.Text))
		}

		if *parse && len(r.Errors) == 0 {
			program, err := grammar.ParseFile(r.Name)
			if err != nil {
				hasErrors = true
				continue
			}
			fmt.Print(program.String())
		}
	}

	formattedDuration := formatDuration(time.Since(startTime))
	if hasErrors {
		color.Red("Lexing failed after %s", formattedDuration)
		os.Exit(1)
	}
	color.Green("Successfully processed %d file(s) in %s", len(results), formattedDuration)
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}

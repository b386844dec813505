package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/KimNorgaard/go-ssml"
	ssmlerrors "github.com/KimNorgaard/go-ssml/errors"
)

// runCheck implements the check subcommand.
// It parses every file and reports each syntax error as path:line:col.
func runCheck(args []string, stdout, stderr io.Writer) error {
	var verbose bool
	var paths []string
	for _, arg := range args {
		switch arg {
		case "-v", "--verbose":
			verbose = true
		default:
			paths = append(paths, arg)
		}
	}
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := collectFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found", extension)
	}

	log := newLogger(verbose, stderr)
	defer func() { _ = log.Sync() }()

	var errorCount int
	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "%s: reading file: %v\n", path, err)
			errorCount++
			continue
		}

		doc, err := ssml.Parse(src)
		if err == nil {
			log.Debug("ok", zap.String("file", path), zap.Int("elements", len(doc.Elements)))
			if verbose {
				fmt.Fprintf(stdout, "%s: ok\n", path)
			}
			continue
		}

		errorCount++
		var parseErrs ssmlerrors.ParseErrors
		if !errors.As(err, &parseErrs) {
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
			continue
		}
		for _, pe := range parseErrs {
			fmt.Fprintf(stderr, "%s:%d:%d: %s\n", path, pe.Span.Start.Line, pe.Span.Start.Column, pe.Message)
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	return nil
}

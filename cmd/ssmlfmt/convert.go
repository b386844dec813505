package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/KimNorgaard/go-ssml"
	"github.com/KimNorgaard/go-ssml/ast"
)

type encodeFunc func(*ast.Document) ([]byte, error)

var (
	formatJSON encodeFunc = ssml.MarshalJSON
	formatYAML encodeFunc = ssml.MarshalYAML
)

// runConvert implements the json and yaml subcommands. Each file is parsed
// and its element tree written to stdout with encode.
func runConvert(args []string, stdout, stderr io.Writer, encode encodeFunc) error {
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
		return fmt.Errorf("no input files")
	}

	files, err := collectFiles(paths)
	if err != nil {
		return err
	}

	log := newLogger(verbose, stderr)
	defer func() { _ = log.Sync() }()

	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		doc, err := ssml.Parse(src)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		out, err := encode(doc)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		log.Debug("converted", zap.String("file", path), zap.Int("bytes", len(out)))
		if _, err := stdout.Write(out); err != nil {
			return err
		}
		if len(out) > 0 && out[len(out)-1] != '\n' {
			fmt.Fprintln(stdout)
		}
	}
	return nil
}

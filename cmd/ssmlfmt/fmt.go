package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KimNorgaard/go-ssml"
)

const defaultIndent = 2

type fmtConfig struct {
	check         bool // report unformatted files, exit 1
	stdout        bool // print instead of rewriting
	indent        int
	declaration   bool
	canonicalLang bool
	verbose       bool
	paths         []string
}

func parseFmtArgs(args []string) (*fmtConfig, error) {
	cfg := &fmtConfig{indent: defaultIndent}
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--stdout", "-stdout":
			cfg.stdout = true
		case "--check", "-check":
			cfg.check = true
		case "--decl", "-decl":
			cfg.declaration = true
		case "--canonical-lang", "-canonical-lang":
			cfg.canonicalLang = true
		case "-v", "--verbose":
			cfg.verbose = true
		case "--indent", "-indent":
			i++
			if i == len(args) {
				return nil, fmt.Errorf("%s requires a value", arg)
			}
			n, err := strconv.Atoi(args[i])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid indent %q", args[i])
			}
			cfg.indent = n
		default:
			cfg.paths = append(cfg.paths, arg)
		}
	}
	if len(cfg.paths) == 0 {
		cfg.paths = []string{"."}
	}
	return cfg, nil
}

func (c *fmtConfig) options() []ssml.Option {
	opts := []ssml.Option{ssml.Indent(c.indent)}
	if c.declaration {
		opts = append(opts, ssml.Declaration())
	}
	return opts
}

// formatSource parses src and renders it with the configured options. It
// reports whether the result differs from src.
func (c *fmtConfig) formatSource(src []byte) ([]byte, bool, error) {
	doc, err := ssml.Parse(src)
	if err != nil {
		return nil, false, err
	}
	if c.canonicalLang {
		ssml.CanonicalizeLanguages(doc)
	}
	out, err := ssml.Marshal(doc, c.options()...)
	if err != nil {
		return nil, false, err
	}
	out = append(out, '\n')
	return out, !bytes.Equal(out, src), nil
}

// runFmt implements the fmt subcommand.
// It formats .ssml files in place, prints them, or checks their formatting.
func runFmt(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFmtArgs(args)
	if err != nil {
		return err
	}

	files, err := collectFiles(cfg.paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found", extension)
	}

	log := newLogger(cfg.verbose, stderr)
	defer func() { _ = log.Sync() }()

	type result struct {
		out     []byte
		changed bool
		err     error
	}
	results := make([]result, len(files))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := os.ReadFile(path)
			if err != nil {
				results[i].err = fmt.Errorf("reading file: %w", err)
				return nil
			}
			out, changed, err := cfg.formatSource(src)
			if err != nil {
				results[i].err = err
				return nil
			}
			if changed && !cfg.check && !cfg.stdout {
				if err := os.WriteFile(path, out, 0o644); err != nil {
					results[i].err = fmt.Errorf("writing file: %w", err)
					return nil
				}
			}
			log.Debug("formatted", zap.String("file", path), zap.Bool("changed", changed))
			results[i] = result{out: out, changed: changed}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var errorCount, notFormattedCount int
	for i, res := range results {
		path := files[i]
		switch {
		case res.err != nil:
			log.Warn("cannot format file", zap.String("file", path), zap.Error(res.err))
			fmt.Fprintf(stderr, "%s: %v\n", path, res.err)
			errorCount++
		case cfg.check:
			if res.changed {
				fmt.Fprintf(stderr, "ERROR: %s is not formatted\n", path)
				notFormattedCount++
			}
		case cfg.stdout:
			if len(files) > 1 {
				fmt.Fprintf(stderr, "==> %s <==\n", path)
			}
			_, _ = stdout.Write(res.out)
		case res.changed:
			fmt.Fprintf(stdout, "Formatted: %s\n", path)
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	if notFormattedCount > 0 {
		return fmt.Errorf("%d file(s) not formatted", notFormattedCount)
	}
	return nil
}

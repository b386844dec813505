// Package main provides ssmlfmt, a formatter and checker for SSML documents.
//
// Usage:
//
//	ssmlfmt fmt [path...]     Format .ssml files in place
//	ssmlfmt check [path...]   Check .ssml files for syntax errors
//	ssmlfmt json [path...]    Print the element tree of each file as JSON
//	ssmlfmt yaml [path...]    Print the element tree of each file as YAML
//	ssmlfmt help              Show help
package main

import (
	"fmt"
	"io"
	"os"
)

const version = "0.1.0"

const usage = `ssmlfmt - formatter and checker for SSML documents

Usage:
  ssmlfmt <command> [options] [path...]

Commands:
  fmt         Format .ssml files
  check       Check .ssml files without modifying them
  json        Print the element tree of each file as JSON
  yaml        Print the element tree of each file as YAML
  version     Print version information
  help        Show this help message

Options:
  -v                 Verbose output
  --check            fmt: report unformatted files instead of rewriting them
  --stdout           fmt: print formatted output to stdout
  --indent N         fmt: indent nested elements by N spaces (default 2, 0 is compact)
  --decl             fmt: start the output with an XML declaration
  --canonical-lang   fmt: rewrite xml:lang values to canonical BCP 47 form

Paths may be files, directories, or dir/... to recurse. The default is the
current directory.

Examples:
  ssmlfmt fmt ./...                  Format all .ssml files recursively
  ssmlfmt fmt --check prompts        Check formatting without modifying
  ssmlfmt fmt --stdout --indent 0 a.ssml
  ssmlfmt check -v greeting.ssml
  ssmlfmt json greeting.ssml
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprint(stderr, usage)
		return 1
	}

	command := args[0]
	args = args[1:]

	var err error
	switch command {
	case "fmt":
		err = runFmt(args, stdout, stderr)
	case "check":
		err = runCheck(args, stdout, stderr)
	case "json":
		err = runConvert(args, stdout, stderr, formatJSON)
	case "yaml":
		err = runConvert(args, stdout, stderr, formatYAML)
	case "version":
		fmt.Fprintf(stdout, "ssmlfmt version %s\n", version)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n\n", command)
		fmt.Fprint(stderr, usage)
		return 1
	}

	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// Command jsonish is a thin CLI wrapper around the jsonish package: it
// decodes JSON(-ish) text from stdin and re-encodes it to stdout, useful
// for checking how a document is read under either grammar mode and for
// piping through a canonicalizing re-encode.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chjson/jsonish"
)

func main() {
	os.Exit(doMain(os.Stdout, os.Stderr, os.Stdin, os.Args[1:]))
}

// doMain is separated out for the purpose of unit testing.
func doMain(stdOut, stdErr io.Writer, stdIn io.Reader, args []string) int {
	flag.CommandLine.SetOutput(stdErr)

	var help bool
	flag.BoolVar(&help, "h", false, "Prints usage.")
	flag.CommandLine.Parse(args)

	if help || flag.NArg() == 0 {
		printUsage(stdErr)
		return 0
	}

	switch flag.Arg(0) {
	case "decode":
		return doDecode(flag.Args()[1:], stdOut, stdErr, stdIn)
	case "encode":
		return doEncode(flag.Args()[1:], stdOut, stdErr, stdIn)
	default:
		fmt.Fprintln(stdErr, "invalid command")
		printUsage(stdErr)
		return 1
	}
}

func doDecode(args []string, stdOut, stdErr io.Writer, stdIn io.Reader) int {
	flags := flag.NewFlagSet("decode", flag.ContinueOnError)
	flags.SetOutput(stdErr)

	var strict bool
	flags.BoolVar(&strict, "strict", false, "Accept only RFC 8259 JSON; reject the loose extensions.")
	var ensureASCII bool
	flags.BoolVar(&ensureASCII, "ensure-ascii", false, "Re-encode non-ASCII codepoints as \\uXXXX.")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	input, err := io.ReadAll(stdIn)
	if err != nil {
		fmt.Fprintf(stdErr, "error reading stdin: %v\n", err)
		return 1
	}

	cfg := jsonish.NewDecodeConfig().WithStrict(strict)
	val, err := cfg.Decode(input)
	if err != nil {
		fmt.Fprintf(stdErr, "error: %v\n", err)
		return 1
	}

	out, err := jsonish.NewEncodeConfig().WithEnsureASCII(ensureASCII).Marshal(val)
	if err != nil {
		fmt.Fprintf(stdErr, "error re-encoding: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdOut, out)
	return 0
}

func doEncode(args []string, stdOut, stdErr io.Writer, stdIn io.Reader) int {
	flags := flag.NewFlagSet("encode", flag.ContinueOnError)
	flags.SetOutput(stdErr)

	var ensureASCII bool
	flags.BoolVar(&ensureASCII, "ensure-ascii", false, "Escape non-ASCII codepoints as \\uXXXX.")
	var plainSolidus bool
	flags.BoolVar(&plainSolidus, "plain-solidus", false, "Emit '/' unescaped instead of \\/.")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	// The encode subcommand takes loose-grammar input (so users can hand
	// it the same documents the decoder accepts) and canonicalizes it.
	input, err := io.ReadAll(stdIn)
	if err != nil {
		fmt.Fprintf(stdErr, "error reading stdin: %v\n", err)
		return 1
	}

	val, err := jsonish.Decode(input)
	if err != nil {
		fmt.Fprintf(stdErr, "error: %v\n", err)
		return 1
	}

	cfg := jsonish.NewEncodeConfig().WithEnsureASCII(ensureASCII).WithEscapeSolidus(!plainSolidus)
	out, err := cfg.Marshal(val)
	if err != nil {
		fmt.Fprintf(stdErr, "error encoding: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdOut, out)
	return 0
}

func printUsage(stdErr io.Writer) {
	fmt.Fprintln(stdErr, "jsonish CLI")
	fmt.Fprintln(stdErr)
	fmt.Fprintln(stdErr, "Usage:\n  jsonish <command> [options]")
	fmt.Fprintln(stdErr)
	fmt.Fprintln(stdErr, "Commands:")
	fmt.Fprintln(stdErr, "  decode\tReads a JSON(-ish) document from stdin, prints its canonical re-encoding")
	fmt.Fprintln(stdErr, "  encode\tReads a loose-grammar document from stdin, prints strict JSON text")
}

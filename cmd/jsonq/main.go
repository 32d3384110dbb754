// Package main parses JSON documents with the comb JSON grammar and pretty
// prints the resulting Go value.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/alecthomas/kingpin/v2"

	"github.com/combparse/comb/json"
)

var (
	traceFlag = kingpin.Flag("trace", "Trace rule attempts to stderr.").Bool()
	fileArg   = kingpin.Arg("file", "JSON file to parse (defaults to stdin).").File()
)

func main() {
	kingpin.CommandLine.Help = `Parse a JSON document with the comb combinator grammar and print the parsed value.`
	kingpin.Parse()

	var r io.Reader = os.Stdin
	if *fileArg != nil {
		defer (*fileArg).Close()
		r = *fileArg
	}
	data, err := io.ReadAll(r)
	kingpin.FatalIfError(err, "")

	var value any
	if *traceFlag {
		value, err = json.ParseTrace(string(data), os.Stderr)
	} else {
		value, err = json.Parse(string(data))
	}
	kingpin.FatalIfError(err, "")

	repr.Println(value)
}

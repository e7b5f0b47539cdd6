// Package cmd implements the CLI application driving the clearing engine.
package cmd

import (
	"io"
	"os"

	"github.com/google/subcommands"
)

// Commands lists every subcommand the binary registers.
// A main package ranges over Commands and registers each one.
var Commands = []subcommands.Command{
	subcommands.HelpCommand(),
	subcommands.FlagsCommand(),
	subcommands.CommandsCommand(),
	&processCmd{},
	&generateCmd{},
	&reportCmd{},
	&topicCmd{},
}

// openInput opens the record file for reading, or stdin for "-".
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// openOutput opens the file for writing, or stdout for "-".
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

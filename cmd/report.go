package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/google/subcommands"
	"github.com/tealfin/clearing"
	"github.com/tealfin/clearing/renderer"
)

type reportCmd struct {
	file     string
	workers  int
	currency string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "processes a record file and renders a markdown summary" }
func (*reportCmd) Usage() string {
	return `clr report [-f <file>] [-currency CUR]

  Same processing as 'clr process', but renders the final accounts as a
  human-readable markdown table with currency formatting instead of CSV.

Usage Examples:
# Summarize in euros.
$ clr report -f transactions.csv -currency EUR

`
}

func (r *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.file, "f", "-", "record file to process, - for stdin")
	f.IntVar(&r.workers, "workers", runtime.NumCPU(), "number of shard workers")
	f.StringVar(&r.currency, "currency", "USD", "ISO currency code used for display")
}

func (r *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := openInput(r.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open %q: %v\n", r.file, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	sharded := &clearing.ShardedRunner{Workers: r.workers}
	rows, err := sharded.Run(clearing.DecodeRecords(in))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: processing failed: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Print(renderer.RenderSummary(renderer.NewSummary(rows, r.currency)))
	return subcommands.ExitSuccess
}

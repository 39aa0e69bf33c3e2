// Command swtile scores two sequences with tiled wavefront-parallel Smith-Waterman.
//
//	swtile <sequence_length> [flags]
//	swtile fasta <a.fa> <b.fa> [flags]
//	swtile config [flags]
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/swtile/internal/cli"
)

func main() {
	c := cli.New(os.Stderr, cli.LogInfo)
	if err := c.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
